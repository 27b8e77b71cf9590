package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/config"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	db        *gorm.DB
	cfg       *config.Config
	cost      int
	dummyHash []byte
}

func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	cost := cfg.BcryptCost
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &AdminService{db: db, cfg: cfg, cost: cost, dummyHash: dummy}
}

func (s *AdminService) Signup(ctx context.Context, req *dto.AdminSignupRequest) error {
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	if req.Email == "" || req.Password == "" || req.Role == "" {
		return validationError("Email, password, and role are required.")
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	var existing models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return newError(ErrConflict, "Admin already exists.", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return storeError(err, "admins", "Failed to create admin.")
	}

	hash, err := hashPassword(req.Password, s.cost)
	if err != nil {
		return err
	}

	admin := models.Admin{Email: req.Email, Password: string(hash), Role: req.Role}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		if isDuplicateKey(err) {
			return newError(ErrConflict, "Admin already exists.", err)
		}
		return storeError(err, "admins", "Failed to create admin.")
	}
	return nil
}

func (s *AdminService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AdminLoginResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, validationError("Email and password are required.")
	}

	var admin models.Admin
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, newError(ErrInvalidCredentials, "Invalid credentials", nil)
	}
	if err != nil {
		return nil, storeError(err, "admins", "Server error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, newError(ErrInvalidCredentials, "Invalid credentials", nil)
	}

	token, err := s.generateAccessToken(&admin)
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{
		Message: "Login successful",
		Token:   token,
		Role:    admin.Role,
	}, nil
}

func (s *AdminService) List(ctx context.Context) ([]dto.AdminResponse, error) {
	var admins []models.Admin
	if err := s.db.WithContext(ctx).Select("id", "email", "role").Order("id").Find(&admins).Error; err != nil {
		return nil, storeError(err, "admins", "Failed to fetch admins.")
	}

	out := make([]dto.AdminResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, dto.AdminResponse{ID: a.ID, Email: a.Email, Role: a.Role})
	}
	return out, nil
}

func (s *AdminService) generateAccessToken(admin *models.Admin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(admin.ID), 10),
		"email": admin.Email,
		"role":  admin.Role,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
