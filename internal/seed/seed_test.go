package seed

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
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestEnsureSeededPopulatesAllCollections(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSeeded(db))

	require.GreaterOrEqual(t, countRows(t, db, &db_models.Country{}), int64(MinCountries))
	require.Greater(t, countRows(t, db, &db_models.Operator{}), int64(0))
	require.Greater(t, countRows(t, db, &db_models.Plan{}), int64(0))
	require.EqualValues(t, 0, countRows(t, db, &db_models.Review{}))
	require.EqualValues(t, 1, countRows(t, db, &db_models.Profile{}))
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSeeded(db))

	countries := countRows(t, db, &db_models.Country{})
	operators := countRows(t, db, &db_models.Operator{})
	plans := countRows(t, db, &db_models.Plan{})

	require.NoError(t, EnsureSeeded(db))

	require.Equal(t, countries, countRows(t, db, &db_models.Country{}))
	require.Equal(t, operators, countRows(t, db, &db_models.Operator{}))
	require.Equal(t, plans, countRows(t, db, &db_models.Plan{}))
	require.EqualValues(t, 1, countRows(t, db, &db_models.Profile{}))
}

func TestEnsureSeededDoesNotOverwriteContributions(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSeeded(db))

	contributed := db_models.Operator{ID: "op-custom", Name: "Custom Telecom", CountryID: "jp"}
	require.NoError(t, db.Create(&contributed).Error)
	operators := countRows(t, db, &db_models.Operator{})

	require.NoError(t, EnsureSeeded(db))

	require.Equal(t, operators, countRows(t, db, &db_models.Operator{}))
	var got db_models.Operator
	require.NoError(t, db.First(&got, "id = ?", "op-custom").Error)
	require.Equal(t, "Custom Telecom", got.Name)
}

func TestEnsureSeededTopsUpTruncatedCountries(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSeeded(db))

	// Drop below the minimum viable size and re-run.
	require.NoError(t, db.Exec("DELETE FROM countries WHERE id NOT IN ('jp', 'es')").Error)
	require.NoError(t, EnsureSeeded(db))

	require.GreaterOrEqual(t, countRows(t, db, &db_models.Country{}), int64(MinCountries))
}

func TestEnsureSeededProfileStartsAtZero(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, EnsureSeeded(db))

	var profile db_models.Profile
	require.NoError(t, db.First(&profile, "id = ?", db_models.ProfileID).Error)
	require.Equal(t, 0, profile.Points)
	require.Equal(t, 0, profile.Contributions)
}
