package db_models

import "time"

// Review is append-only; there is no update or delete path.
type Review struct {
	ID       string `gorm:"primaryKey;size:64"`
	PlanID   string `gorm:"size:64;index;not null"`
	UserName string `gorm:"not null"`
	Rating   int    `gorm:"check:rating >= 1 AND rating <= 5"`
	Comment  string `gorm:"type:text"`
	Date     string `gorm:"size:32"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
