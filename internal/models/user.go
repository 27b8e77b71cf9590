package models

import "gorm.io/gorm"

// User is a mobile-app account managed from the admin panel.
type User struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Name       string        `gorm:"size:255;not null" json:"name"`
	Email      string        `gorm:"size:255;not null;uniqueIndex:idx_user_email" json:"email"`
	Phone      string        `gorm:"size:32;not null;uniqueIndex:idx_user_phone" json:"phone"`
	Password   string        `gorm:"size:255;not null" json:"-"`
	Occupation string        `gorm:"size:255" json:"occupation"`
	Address    string        `gorm:"type:text" json:"address"`
	Status     AccountStatus `gorm:"type:varchar(20)" json:"status"`
}

func (User) TableName() string {
	return "user"
}

// AfterFind applies the Active default. GORM leaves NULL columns at the
// zero value without calling Scan.
func (u *User) AfterFind(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}
