package repositories

import (
	"context"
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

func fixtureCountry(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&db_models.Country{ID: id, NameEN: id, NameES: id, Continent: "Asia", Currency: "USD"}).Error)
}

func profileOf(t *testing.T, db *gorm.DB) db_models.Profile {
	t.Helper()
	var profile db_models.Profile
	require.NoError(t, db.First(&profile, "id = ?", db_models.ProfileID).Error)
	return profile
}

func TestCreateOperatorAwardsTenPointsAndOneContribution(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()
	fixtureCountry(t, db, "jp")

	before := profileOf(t, db)
	operator := db_models.Operator{ID: "op-1", Name: "Testcom", CountryID: "jp"}
	require.NoError(t, repo.CreateOperator(ctx, &operator))

	after := profileOf(t, db)
	require.Equal(t, before.Points+10, after.Points)
	require.Equal(t, before.Contributions+1, after.Contributions)
}

func TestCreatePlanAwardsFivePointsAndOneContribution(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()
	fixtureCountry(t, db, "jp")
	require.NoError(t, repo.CreateOperator(ctx, &db_models.Operator{ID: "op-1", Name: "Testcom", CountryID: "jp"}))

	before := profileOf(t, db)
	plan := db_models.Plan{ID: "plan-1", OperatorID: "op-1", Name: "Basic", DataGB: 5, Price: 10, ValidityDays: 30, SimType: db_models.SimTypePhysical}
	require.NoError(t, repo.CreatePlan(ctx, &plan))

	after := profileOf(t, db)
	require.Equal(t, before.Points+5, after.Points)
	require.Equal(t, before.Contributions+1, after.Contributions)
}

func TestCreateReviewAwardsTwoPointsWithoutContribution(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()
	fixtureCountry(t, db, "jp")
	require.NoError(t, repo.CreateOperator(ctx, &db_models.Operator{ID: "op-1", Name: "Testcom", CountryID: "jp"}))
	require.NoError(t, repo.CreatePlan(ctx, &db_models.Plan{ID: "plan-1", OperatorID: "op-1", Name: "Basic", DataGB: 5, Price: 10, ValidityDays: 30, SimType: db_models.SimTypePhysical}))

	before := profileOf(t, db)
	review := db_models.Review{ID: "rev-1", PlanID: "plan-1", UserName: "Traveler", Rating: 5, Comment: "Great"}
	require.NoError(t, repo.CreateReview(ctx, &review))

	after := profileOf(t, db)
	require.Equal(t, before.Points+2, after.Points)
	require.Equal(t, before.Contributions, after.Contributions)
}

func TestAppendedEntitiesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()
	fixtureCountry(t, db, "jp")

	operator := db_models.Operator{
		ID:           "op-1",
		Name:         "Testcom",
		CountryID:    "jp",
		Technologies: []string{"4G", "5G"},
		Website:      "https://testcom.example",
		Coverage:     "Nationwide",
	}
	require.NoError(t, repo.CreateOperator(ctx, &operator))

	plan := db_models.Plan{
		ID:           "plan-1",
		OperatorID:   "op-1",
		Name:         "Traveler 10GB",
		DataGB:       10,
		Price:        19.9,
		Currency:     "USD",
		ValidityDays: 14,
		SimType:      db_models.SimTypeESIM,
		Speed5G:      true,
		Features:     []string{"Hotspot"},
	}
	require.NoError(t, repo.CreatePlan(ctx, &plan))

	operators, err := repo.ListOperators(ctx, "jp")
	require.NoError(t, err)
	require.Len(t, operators, 1)
	require.Equal(t, operator.Name, operators[0].Name)
	require.Equal(t, []string{"4G", "5G"}, []string(operators[0].Technologies))

	plans, err := repo.ListPlans(ctx, "op-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Equal(t, plan.Name, plans[0].Name)
	require.Equal(t, db_models.DataAllowance(10), plans[0].DataGB)
	require.Equal(t, plan.Price, plans[0].Price)
	require.True(t, plans[0].Speed5G)
}

func TestListFiltersByUnknownForeignKeyReturnEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	operators, err := repo.ListOperators(ctx, "nowhere")
	require.NoError(t, err)
	require.Empty(t, operators)

	plans, err := repo.ListPlans(ctx, "no-operator")
	require.NoError(t, err)
	require.Empty(t, plans)

	reviews, err := repo.ListReviews(ctx, "no-plan")
	require.NoError(t, err)
	require.Empty(t, reviews)
}

func TestGetLookupsReturnNilOnMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	country, err := repo.GetCountry(ctx, "zz")
	require.NoError(t, err)
	require.Nil(t, country)

	operator, err := repo.GetOperator(ctx, "op-zz")
	require.NoError(t, err)
	require.Nil(t, operator)

	plan, err := repo.GetPlan(ctx, "plan-zz")
	require.NoError(t, err)
	require.Nil(t, plan)
}

func TestProfileRepositoryFailsClosed(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Exec("DELETE FROM profiles").Error)

	repo := NewProfileRepository(db)
	profile, err := repo.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, db_models.ProfileID, profile.ID)
	require.Zero(t, profile.Points)
	require.Zero(t, profile.Contributions)
}

func TestAppendBadgeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.AppendBadge(ctx, "First Steps"))
	require.NoError(t, repo.AppendBadge(ctx, "First Steps"))

	profile, err := repo.GetProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"First Steps"}, []string(profile.Badges))
}
