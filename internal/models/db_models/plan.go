package db_models

import (
	"time"

	"gorm.io/datatypes"
)

type SimType string

const (
	SimTypePhysical SimType = "Physical"
	SimTypeESIM     SimType = "eSIM"
	SimTypeHybrid   SimType = "Hybrid"
)

func (s SimType) Valid() bool {
	switch s {
	case SimTypePhysical, SimTypeESIM, SimTypeHybrid:
		return true
	}
	return false
}

type Plan struct {
	ID           string        `gorm:"primaryKey;size:64"`
	OperatorID   string        `gorm:"size:64;index;not null"`
	Name         string        `gorm:"not null"`
	DataGB       DataAllowance // -1 for unlimited
	Price        float64
	Currency     string `gorm:"size:3"`
	ValidityDays int
	SimType      SimType `gorm:"size:16"`
	Speed5G      bool
	Features     datatypes.JSONSlice[string]

	Reviews []Review `gorm:"foreignKey:PlanID"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
