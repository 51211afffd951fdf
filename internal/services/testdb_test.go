package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"simconnect/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&db_models.Country{},
		&db_models.Operator{},
		&db_models.Plan{},
		&db_models.Review{},
		&db_models.Profile{},
	))
	require.NoError(t, db.Create(&db_models.Profile{ID: db_models.ProfileID, Name: "Traveler"}).Error)
	return db
}

func createCountry(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&db_models.Country{ID: id, NameEN: id, NameES: id, Continent: "Asia", Currency: "USD"}).Error)
}

func createOperator(t *testing.T, db *gorm.DB, id, countryID string) {
	t.Helper()
	require.NoError(t, db.Create(&db_models.Operator{ID: id, Name: id, CountryID: countryID}).Error)
}

func createPlan(t *testing.T, db *gorm.DB, id, operatorID string, data db_models.DataAllowance, price float64, validityDays int) {
	t.Helper()
	require.NoError(t, db.Create(&db_models.Plan{
		ID:           id,
		OperatorID:   operatorID,
		Name:         id,
		DataGB:       data,
		Price:        price,
		Currency:     "USD",
		ValidityDays: validityDays,
		SimType:      db_models.SimTypePhysical,
	}).Error)
}
