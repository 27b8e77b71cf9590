package dto

import (
	"encoding/json"
	"time"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
)

type LocationRequest struct {
	Address string `json:"address" validate:"required,min=5,max=255"`
	City    string `json:"city" validate:"required,min=2,max=100"`
	State   string `json:"state" validate:"required,min=2,max=100"`
}

type CreatePropertyRequest struct {
	Type            string           `json:"type" validate:"required,oneof=Residential Commercial Land Other House Villa Flat Bungalow"`
	Name            string           `json:"name" validate:"required,min=3,max=255"`
	BHK             string           `json:"bhk" validate:"required,oneof=1BHK 2BHK 2.5BHK 3BHK 4BHK Studio Other"`
	Location        *LocationRequest `json:"location" validate:"required"`
	PropertiesImage []string         `json:"properties_image" validate:"required,min=1,dive,required,url"`
}

// Property is the normalized, client-facing form of models.Property.
// CreatedAt is nil for the mobile listing.
type Property struct {
	ID              uint            `json:"id"`
	Type            string          `json:"type"`
	Name            string          `json:"name"`
	BHK             string          `json:"bhk"`
	Location        models.Location `json:"location"`
	PropertiesImage []string        `json:"properties_image"`
	CreatedAt       *time.Time      `json:"created_at,omitempty"`
}

// CreateChecklistRequest keeps Components raw: the admin UI sends a
// JSON-encoded string, other clients send an array.
type CreateChecklistRequest struct {
	Type       string          `json:"type" validate:"required,max=50"`
	PropertyID uint            `json:"property_id" validate:"required"`
	BHKType    string          `json:"bhk_type" validate:"required,max=20"`
	RoomName   string          `json:"room_name" validate:"required,max=100"`
	Components json.RawMessage `json:"components"`
}

type ChecklistItem struct {
	ID         uint     `json:"id"`
	PropertyID uint     `json:"property_id"`
	Type       string   `json:"type"`
	BHKType    string   `json:"bhk_type"`
	RoomName   string   `json:"room_name"`
	Components []string `json:"components"`
}
