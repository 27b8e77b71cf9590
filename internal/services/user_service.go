package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinBcryptCost is the lowest work factor used for stored passwords.
const MinBcryptCost = 10

type UserService struct {
	db        *gorm.DB
	cost      int
	dummyHash []byte
}

func NewUserService(db *gorm.DB, cost int) *UserService {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	// Compared against on unknown emails so both login failures cost the same.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	return &UserService{db: db, cost: cost, dummyHash: dummy}
}

func (s *UserService) Register(ctx context.Context, req *dto.RegisterRequest) (uint, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Occupation = strings.TrimSpace(req.Occupation)
	req.Address = strings.TrimSpace(req.Address)
	if err := validateStruct(req); err != nil {
		return 0, err
	}

	hash, err := hashPassword(req.Password, s.cost)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   string(hash),
		Occupation: req.Occupation,
		Address:    req.Address,
		Status:     models.StatusActive,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return 0, newError(ErrConflict, "Email or phone number already registered.", err)
		}
		return 0, storeError(err, "user", "Failed to register user.")
	}

	return user.ID, nil
}

// Login never tells the caller whether the email exists.
func (s *UserService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return nil, validationError("Email and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(req.Password))
		return nil, newError(ErrInvalidCredentials, "Invalid email or password", nil)
	}
	if err != nil {
		return nil, storeError(err, "user", "Login failed.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, newError(ErrInvalidCredentials, "Invalid email or password", nil)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, storeError(err, "user", "Failed to fetch users.")
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// ToggleStatus flips Active and Blocked. A user with no stored status is
// Active and becomes Blocked.
func (s *UserService) ToggleStatus(ctx context.Context, id uint) (models.AccountStatus, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.writeStatus(ctx, user.ID, user.Status.Toggled())
}

func (s *UserService) SetStatus(ctx context.Context, id uint, status models.AccountStatus) (models.AccountStatus, error) {
	if status != models.StatusActive && status != models.StatusBlocked {
		return "", validationError("status must be one of: Active, Blocked")
	}
	user, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.writeStatus(ctx, user.ID, status)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return validationError("User ID is required.")
	}
	result := s.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return storeError(result.Error, "user", "Failed to remove user")
	}
	if result.RowsAffected == 0 {
		return notFound("User not found")
	}
	return nil
}

func (s *UserService) find(ctx context.Context, id uint) (*models.User, error) {
	if id == 0 {
		return nil, validationError("User ID is required.")
	}
	var user models.User
	err := s.db.WithContext(ctx).Select("id", "status").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("User not found.")
	}
	if err != nil {
		return nil, storeError(err, "user", "Failed to update user status.")
	}
	return &user, nil
}

func (s *UserService) writeStatus(ctx context.Context, id uint, status models.AccountStatus) (models.AccountStatus, error) {
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return "", storeError(err, "user", "Failed to update user status.")
	}
	return status, nil
}

func hashPassword(password string, cost int) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, validationError("password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func toUserResponse(u models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Occupation: u.Occupation,
		Address:    u.Address,
		Status:     u.Status,
	}
}
