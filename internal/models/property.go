package models

import "time"

// Location is the structured form of the properties.location column.
type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
}

// Property stores location and properties_image as JSON text. Use the
// normalize package to read or write those columns.
type Property struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Type            string    `gorm:"size:50;not null" json:"type"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	BHK             string    `gorm:"column:bhk;size:20;not null" json:"bhk"`
	Location        string    `gorm:"type:text" json:"-"`
	PropertiesImage string    `gorm:"column:properties_image;type:text" json:"-"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
}

func (Property) TableName() string {
	return "properties"
}
