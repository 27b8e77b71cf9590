package models

// ChecklistItem is one room of a property and its expected components.
// Type and BHKType are copied from the property when the room is added.
type ChecklistItem struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	Type       string `gorm:"size:50;not null" json:"type"`
	BHKType    string `gorm:"column:bhk_type;size:20;not null" json:"bhk_type"`
	RoomName   string `gorm:"size:100;not null" json:"room_name"`
	Components string `gorm:"type:text" json:"-"`
}

func (ChecklistItem) TableName() string {
	return "checklist"
}
