package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// ProfileID is the primary key of the single profile row. The store is
// process-local and single-user, so exactly one row exists after seeding.
const ProfileID uint = 1

// Profile holds the contributor profile. Points and Contributions only ever
// grow; the level tier is derived from Points at read time, never stored.
type Profile struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Points        int
	Contributions int
	Badges        datatypes.JSONSlice[string]

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
