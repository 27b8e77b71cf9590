package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/cache"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/normalize"
	"gorm.io/gorm"
)

const (
	keyPropertiesAll      = "properties:all"
	keyPropertiesOverview = "properties:overview"
	keyPropertiesMobile   = "properties:mobile"
)

type PropertyService struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewPropertyService(db *gorm.DB, c cache.Cache) *PropertyService {
	if c == nil {
		c = cache.Noop{}
	}
	return &PropertyService{db: db, cache: c}
}

func (s *PropertyService) Create(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.Property, error) {
	req.Type = strings.TrimSpace(req.Type)
	req.Name = strings.TrimSpace(req.Name)
	req.BHK = strings.TrimSpace(req.BHK)
	if req.Location != nil {
		req.Location.Address = strings.TrimSpace(req.Location.Address)
		req.Location.City = strings.TrimSpace(req.Location.City)
		req.Location.State = strings.TrimSpace(req.Location.State)
	}
	for i := range req.PropertiesImage {
		req.PropertiesImage[i] = strings.TrimSpace(req.PropertiesImage[i])
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	location, err := normalize.EncodeLocation(models.Location{
		Address: req.Location.Address,
		City:    req.Location.City,
		State:   req.Location.State,
	})
	if err != nil {
		return nil, validationError("location must be an object with address, city and state")
	}
	images, err := normalize.EncodeStringList(req.PropertiesImage)
	if err != nil {
		return nil, validationError("properties_image must be a list of URLs")
	}

	property := models.Property{
		Type:            req.Type,
		Name:            req.Name,
		BHK:             req.BHK,
		Location:        location,
		PropertiesImage: images,
	}
	if err := s.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, storeError(err, "properties", "Failed to create property.")
	}

	s.invalidate(ctx)
	out := normalize.Property(property)
	return &out, nil
}

// List returns every property in insertion order.
func (s *PropertyService) List(ctx context.Context) ([]dto.Property, error) {
	return s.cached(ctx, keyPropertiesAll, func() ([]dto.Property, error) {
		return s.load(ctx, "id ASC", true)
	})
}

// ListOverview returns every property with created_at, newest first.
func (s *PropertyService) ListOverview(ctx context.Context) ([]dto.Property, error) {
	return s.cached(ctx, keyPropertiesOverview, func() ([]dto.Property, error) {
		return s.load(ctx, "created_at DESC, id DESC", true)
	})
}

// ListMobile is ListOverview without created_at.
func (s *PropertyService) ListMobile(ctx context.Context) ([]dto.Property, error) {
	return s.cached(ctx, keyPropertiesMobile, func() ([]dto.Property, error) {
		return s.load(ctx, "created_at DESC, id DESC", false)
	})
}

func (s *PropertyService) Get(ctx context.Context, id uint) (*dto.Property, error) {
	if id == 0 {
		return nil, validationError("Valid property ID is required.")
	}
	var property models.Property
	err := s.db.WithContext(ctx).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("Property not found.")
	}
	if err != nil {
		return nil, storeError(err, "properties", "Failed to fetch property.")
	}
	out := normalize.Property(property)
	return &out, nil
}

func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return validationError("Valid property ID is required.")
	}
	result := s.db.WithContext(ctx).Delete(&models.Property{}, id)
	if result.Error != nil {
		return storeError(result.Error, "properties", "Failed to delete property.")
	}
	if result.RowsAffected == 0 {
		return notFound("Property not found.")
	}
	s.invalidate(ctx)
	return nil
}

func (s *PropertyService) load(ctx context.Context, order string, withCreatedAt bool) ([]dto.Property, error) {
	var rows []models.Property
	if err := s.db.WithContext(ctx).Order(order).Find(&rows).Error; err != nil {
		return nil, storeError(err, "properties", "Failed to fetch properties.")
	}

	out := make([]dto.Property, 0, len(rows))
	for _, row := range rows {
		p := normalize.Property(row)
		if !withCreatedAt {
			p.CreatedAt = nil
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PropertyService) cached(ctx context.Context, key string, fetch func() ([]dto.Property, error)) ([]dto.Property, error) {
	var hit []dto.Property
	ok, err := s.cache.Get(ctx, key, &hit)
	if err != nil {
		slog.Warn("property cache read failed", "key", key, "error", err)
	}
	if ok && hit != nil {
		return hit, nil
	}

	list, err := fetch()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, list); err != nil {
		slog.Warn("property cache write failed", "key", key, "error", err)
	}
	return list, nil
}

func (s *PropertyService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, keyPropertiesAll, keyPropertiesOverview, keyPropertiesMobile); err != nil {
		slog.Warn("property cache invalidation failed", "error", err)
	}
}
