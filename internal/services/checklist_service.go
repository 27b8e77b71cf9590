package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/cache"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/normalize"
	"gorm.io/gorm"
)

const keyChecklistAll = "checklist:all"

type ChecklistService struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewChecklistService(db *gorm.DB, c cache.Cache) *ChecklistService {
	if c == nil {
		c = cache.Noop{}
	}
	return &ChecklistService{db: db, cache: c}
}

// Create stores one room. Type and BHKType are taken as given; the parent
// property is not looked up.
func (s *ChecklistService) Create(ctx context.Context, req *dto.CreateChecklistRequest) (*dto.ChecklistItem, error) {
	req.Type = strings.TrimSpace(req.Type)
	req.BHKType = strings.TrimSpace(req.BHKType)
	req.RoomName = strings.TrimSpace(req.RoomName)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	components, err := normalize.StringListInput(req.Components)
	if err != nil {
		return nil, validationError("components must be a list of strings")
	}
	if len(components) == 0 {
		return nil, validationError("components must contain at least one item")
	}
	encoded, err := normalize.EncodeStringList(components)
	if err != nil {
		return nil, validationError("components must be a list of strings")
	}

	item := models.ChecklistItem{
		PropertyID: req.PropertyID,
		Type:       req.Type,
		BHKType:    req.BHKType,
		RoomName:   req.RoomName,
		Components: encoded,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, storeError(err, "checklist", "Failed to insert checklist.")
	}

	if err := s.cache.Delete(ctx, keyChecklistAll); err != nil {
		slog.Warn("checklist cache invalidation failed", "error", err)
	}

	return &dto.ChecklistItem{
		ID:         item.ID,
		PropertyID: item.PropertyID,
		Type:       item.Type,
		BHKType:    item.BHKType,
		RoomName:   item.RoomName,
		Components: components,
	}, nil
}

// List returns all rooms, or only those of propertyID when it is non-zero.
// Only the unfiltered listing is cached.
func (s *ChecklistService) List(ctx context.Context, propertyID uint) ([]dto.ChecklistItem, error) {
	if propertyID == 0 {
		var hit []dto.ChecklistItem
		ok, err := s.cache.Get(ctx, keyChecklistAll, &hit)
		if err != nil {
			slog.Warn("checklist cache read failed", "error", err)
		}
		if ok && hit != nil {
			return hit, nil
		}
	}

	query := s.db.WithContext(ctx).Order("id")
	if propertyID != 0 {
		query = query.Where("property_id = ?", propertyID)
	}
	var rows []models.ChecklistItem
	if err := query.Find(&rows).Error; err != nil {
		return nil, storeError(err, "checklist", "Failed to fetch checklist.")
	}

	out := make([]dto.ChecklistItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalize.ChecklistItem(row))
	}

	if propertyID == 0 {
		if err := s.cache.Set(ctx, keyChecklistAll, out); err != nil {
			slog.Warn("checklist cache write failed", "key", keyChecklistAll, "error", err)
		}
	}
	return out, nil
}
