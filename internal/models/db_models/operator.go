package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type Operator struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"not null"`
	CountryID    string `gorm:"size:8;index;not null"`
	Technologies datatypes.JSONSlice[string]
	Website      string
	Coverage     string

	Plans []Plan `gorm:"foreignKey:OperatorID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
