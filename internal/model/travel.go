package model

import "time"

// Travel is a user's planned trip to a province. Reads always embed the
// destination Province.
type Travel struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"index;not null" json:"user_id"`
	ProvinceID int64     `gorm:"not null" json:"province_id"`
	StartDate  Date      `gorm:"type:date;not null" json:"start_date"`
	EndDate    Date      `gorm:"type:date;not null" json:"end_date"`
	Notes      *string   `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Province Province `gorm:"foreignKey:ProvinceID" json:"province"`
}
