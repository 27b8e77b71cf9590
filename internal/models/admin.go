package models

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:255;not null;uniqueIndex:idx_admins_email" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:50;not null" json:"role"`
}

func (Admin) TableName() string {
	return "admins"
}
