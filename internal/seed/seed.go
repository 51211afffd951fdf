package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"simconnect/internal/models/db_models"
)

// MinCountries guards against a stale or truncated countries seed: a table
// with fewer rows than this is topped back up from the reference dataset.
const MinCountries = 10

// EnsureSeeded migrates the schema and writes the reference dataset where it
// is missing. It is idempotent: existing rows are never overwritten and no
// collection ever shrinks.
func EnsureSeeded(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.Country{},
		&db_models.Operator{},
		&db_models.Plan{},
		&db_models.Review{},
		&db_models.Profile{},
	); err != nil {
		return fmt.Errorf("migrate catalog schema: %w", err)
	}

	var countryCount int64
	if err := db.Model(&db_models.Country{}).Count(&countryCount).Error; err != nil {
		return fmt.Errorf("count countries: %w", err)
	}
	if countryCount < MinCountries {
		countries := seedCountries()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&countries).Error; err != nil {
			return fmt.Errorf("seed countries: %w", err)
		}
		log.Printf("Seeded countries (had %d, minimum %d)", countryCount, MinCountries)
	}

	var operatorCount int64
	if err := db.Model(&db_models.Operator{}).Count(&operatorCount).Error; err != nil {
		return fmt.Errorf("count operators: %w", err)
	}
	if operatorCount == 0 {
		operators := seedOperators()
		if err := db.Create(&operators).Error; err != nil {
			return fmt.Errorf("seed operators: %w", err)
		}
	}

	var planCount int64
	if err := db.Model(&db_models.Plan{}).Count(&planCount).Error; err != nil {
		return fmt.Errorf("count plans: %w", err)
	}
	if planCount == 0 {
		plans := seedPlans()
		if err := db.Create(&plans).Error; err != nil {
			return fmt.Errorf("seed plans: %w", err)
		}
	}

	var profileCount int64
	if err := db.Model(&db_models.Profile{}).Count(&profileCount).Error; err != nil {
		return fmt.Errorf("count profiles: %w", err)
	}
	if profileCount == 0 {
		profile := seedProfile()
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
	}

	return nil
}
