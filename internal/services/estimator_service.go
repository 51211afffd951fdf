package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"simconnect/internal/models/db_models"
	"simconnect/internal/models/request_models"
	"simconnect/internal/models/response_models"
	"simconnect/internal/repositories"
	"simconnect/pkg/utils"
)

// Per-hour consumption rates in GB, one per activity class. Policy constants
// representing empirical average bitrates; the estimator's output is defined
// by these exact values.
const (
	GBPerHourVideo    = 1.0
	GBPerHourMaps     = 0.06
	GBPerHourSocial   = 0.15
	GBPerHourBrowsing = 0.05
)

const (
	minTripDays = 1
	maxTripDays = 90
)

type EstimatorServiceInterface interface {
	Estimate(ctx context.Context, req request_models.EstimateRequest) (response_models.EstimateResponse, error)
}

type EstimatorService struct {
	catalogRepo repositories.CatalogRepository
}

func NewEstimatorService(catalogRepo repositories.CatalogRepository) EstimatorServiceInterface {
	return &EstimatorService{catalogRepo: catalogRepo}
}

// Estimate projects the trip's data volume and recommends the cheapest plan
// from the destination that covers it. A nil BestPlan means no plan survived
// filtering; that is a normal outcome.
func (s *EstimatorService) Estimate(ctx context.Context, req request_models.EstimateRequest) (response_models.EstimateResponse, error) {
	if strings.TrimSpace(req.CountryID) == "" {
		return response_models.EstimateResponse{}, utils.ErrInvalidInput
	}
	if req.DurationDays < minTripDays || req.DurationDays > maxTripDays {
		return response_models.EstimateResponse{}, utils.ErrInvalidDuration
	}
	if req.VideoHours < 0 || req.MapsHours < 0 || req.SocialHours < 0 || req.BrowsingHours < 0 {
		return response_models.EstimateResponse{}, utils.ErrInvalidInput
	}

	dailyGB := req.VideoHours*GBPerHourVideo +
		req.MapsHours*GBPerHourMaps +
		req.SocialHours*GBPerHourSocial +
		req.BrowsingHours*GBPerHourBrowsing

	// Round up: under-provisioning is the failure mode to avoid.
	totalGB := int64(math.Ceil(dailyGB * float64(req.DurationDays)))

	candidates, err := s.candidatePlans(ctx, req.CountryID)
	if err != nil {
		return response_models.EstimateResponse{}, utils.ErrDatabaseError
	}

	suitable := make([]db_models.Plan, 0, len(candidates))
	for _, plan := range candidates {
		if plan.ValidityDays < req.DurationDays {
			continue
		}
		if !plan.DataGB.Covers(totalGB) {
			continue
		}
		suitable = append(suitable, plan)
	}

	// Stable sort keeps first-seen order on exact price ties.
	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].Price < suitable[j].Price
	})

	resp := response_models.EstimateResponse{
		TotalGBNeeded: totalGB,
		DailyGB:       dailyGB,
	}
	if len(suitable) > 0 {
		best := toPlanResponse(suitable[0])
		resp.BestPlan = &best
	}
	return resp, nil
}

// candidatePlans fans out from the destination's operators to a flat set of
// their plans.
func (s *EstimatorService) candidatePlans(ctx context.Context, countryID string) ([]db_models.Plan, error) {
	operators, err := s.catalogRepo.ListOperators(ctx, countryID)
	if err != nil {
		return nil, err
	}

	var candidates []db_models.Plan
	for _, operator := range operators {
		plans, err := s.catalogRepo.ListPlans(ctx, operator.ID)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, plans...)
	}
	return candidates, nil
}
