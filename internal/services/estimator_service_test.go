package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"simconnect/internal/models/db_models"
	"simconnect/internal/models/request_models"
	"simconnect/internal/repositories"
	"simconnect/pkg/utils"
)

func TestEstimateTotalVolumeRoundsUp(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "jp")

	// dailyGB = 1*1.0 + 1*0.06 + 2*0.15 + 2*0.05 = 1.46; 1.46*7 = 10.22 -> 11
	resp, err := svc.Estimate(context.Background(), request_models.EstimateRequest{
		CountryID:     "jp",
		DurationDays:  7,
		VideoHours:    1,
		MapsHours:     1,
		SocialHours:   2,
		BrowsingHours: 2,
	})
	require.NoError(t, err)
	require.EqualValues(t, 11, resp.TotalGBNeeded)
	require.InDelta(t, 1.46, resp.DailyGB, 1e-9)
	require.Nil(t, resp.BestPlan)
}

func TestEstimatePrefersCheapestSuitablePlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "jp")
	createOperator(t, db, "op-1", "jp")
	// 5 GB is too small for an 11 GB trip; the unlimited plan qualifies even
	// with a shorter validity, as long as it outlasts the trip.
	createPlan(t, db, "plan-finite", "op-1", 5, 20, 30)
	createPlan(t, db, "plan-unlimited", "op-1", db_models.Unlimited, 15, 10)

	resp, err := svc.Estimate(context.Background(), request_models.EstimateRequest{
		CountryID:     "jp",
		DurationDays:  7,
		VideoHours:    1,
		MapsHours:     1,
		SocialHours:   2,
		BrowsingHours: 2,
	})
	require.NoError(t, err)
	require.EqualValues(t, 11, resp.TotalGBNeeded)
	require.NotNil(t, resp.BestPlan)
	require.Equal(t, "plan-unlimited", resp.BestPlan.ID)
	require.Equal(t, 15.0, resp.BestPlan.Price)
}

func TestEstimateExcludesPlansExpiringMidTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "jp")
	createOperator(t, db, "op-1", "jp")
	createPlan(t, db, "plan-short", "op-1", 50, 5, 5)
	createPlan(t, db, "plan-long", "op-1", 50, 25, 30)

	resp, err := svc.Estimate(context.Background(), request_models.EstimateRequest{
		CountryID:    "jp",
		DurationDays: 10,
		VideoHours:   1,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.BestPlan)
	require.Equal(t, "plan-long", resp.BestPlan.ID)
}

func TestEstimateZeroUsageQualifiesEveryValidPlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "jp")
	createOperator(t, db, "op-1", "jp")
	createPlan(t, db, "plan-tiny", "op-1", 1, 3, 30)
	createPlan(t, db, "plan-big", "op-1", 50, 25, 30)

	resp, err := svc.Estimate(context.Background(), request_models.EstimateRequest{
		CountryID:    "jp",
		DurationDays: 7,
	})
	require.NoError(t, err)
	require.EqualValues(t, 0, resp.TotalGBNeeded)
	require.NotNil(t, resp.BestPlan)
	require.Equal(t, "plan-tiny", resp.BestPlan.ID)
}

func TestEstimateDestinationWithoutOperators(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "empty")

	resp, err := svc.Estimate(context.Background(), request_models.EstimateRequest{
		CountryID:    "empty",
		DurationDays: 7,
		VideoHours:   2,
	})
	require.NoError(t, err)
	require.EqualValues(t, 14, resp.TotalGBNeeded)
	require.Nil(t, resp.BestPlan)
}

func TestEstimateVolumeIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "jp")
	ctx := context.Background()

	base := request_models.EstimateRequest{
		CountryID:     "jp",
		DurationDays:  5,
		VideoHours:    1,
		MapsHours:     1,
		SocialHours:   1,
		BrowsingHours: 1,
	}
	baseResp, err := svc.Estimate(ctx, base)
	require.NoError(t, err)

	longer := base
	longer.DurationDays = 15
	longerResp, err := svc.Estimate(ctx, longer)
	require.NoError(t, err)
	require.GreaterOrEqual(t, longerResp.TotalGBNeeded, baseResp.TotalGBNeeded)

	heavier := base
	heavier.VideoHours = 4
	heavierResp, err := svc.Estimate(ctx, heavier)
	require.NoError(t, err)
	require.GreaterOrEqual(t, heavierResp.TotalGBNeeded, baseResp.TotalGBNeeded)
}

func TestEstimateRejectsBadInputs(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	ctx := context.Background()

	_, err := svc.Estimate(ctx, request_models.EstimateRequest{CountryID: "jp", DurationDays: 0})
	require.ErrorIs(t, err, utils.ErrInvalidDuration)

	_, err = svc.Estimate(ctx, request_models.EstimateRequest{CountryID: "jp", DurationDays: 91})
	require.ErrorIs(t, err, utils.ErrInvalidDuration)

	_, err = svc.Estimate(ctx, request_models.EstimateRequest{CountryID: "jp", DurationDays: 7, VideoHours: -1})
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestEstimateRejectsBlankDestination(t *testing.T) {
	db := newTestDB(t)
	svc := NewEstimatorService(repositories.NewCatalogRepository(db))
	createCountry(t, db, "jp")
	createOperator(t, db, "op-1", "jp")
	createPlan(t, db, "plan-jp", "op-1", 50, 20, 30)

	// A blank destination must never fall through to the unfiltered operator
	// listing and recommend a plan from the whole catalog.
	for _, countryID := range []string{"", "   "} {
		resp, err := svc.Estimate(context.Background(), request_models.EstimateRequest{
			CountryID:    countryID,
			DurationDays: 7,
			VideoHours:   1,
		})
		require.ErrorIs(t, err, utils.ErrInvalidInput)
		require.Nil(t, resp.BestPlan)
	}
}
