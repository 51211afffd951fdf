package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"simconnect/internal/models/db_models"
	"simconnect/internal/models/response_models"
	"simconnect/internal/repositories"
	"simconnect/pkg/utils"
)

// Data-volume buckets for plan browsing. Unlimited plans only ever match
// "ultra".
const (
	BucketAll    = "all"
	BucketLow    = "low"    // < 10 GB
	BucketMedium = "medium" // 10-49 GB
	BucketHigh   = "high"   // 50-99 GB
	BucketUltra  = "ultra"  // unlimited or >= 100 GB
)

const (
	compareMinPlans = 2
	compareMaxPlans = 8
)

type CatalogServiceInterface interface {
	ListCountries(ctx context.Context) ([]response_models.CountryResponse, error)
	ListOperators(ctx context.Context, countryID string) ([]response_models.OperatorResponse, error)
	ListPlans(ctx context.Context, operatorID string, bucket string) ([]response_models.PlanResponse, error)
	ListReviews(ctx context.Context, planID string) ([]response_models.ReviewResponse, error)
	ComparePlans(ctx context.Context, ids []string) (response_models.ComparisonResponse, error)
	ComparePlansCSV(ctx context.Context, ids []string) (string, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) ListCountries(ctx context.Context) ([]response_models.CountryResponse, error) {
	countries, err := s.catalogRepo.ListCountries(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CountryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, toCountryResponse(country))
	}
	return responses, nil
}

func (s *CatalogService) ListOperators(ctx context.Context, countryID string) ([]response_models.OperatorResponse, error) {
	operators, err := s.catalogRepo.ListOperators(ctx, countryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OperatorResponse, 0, len(operators))
	for _, operator := range operators {
		responses = append(responses, toOperatorResponse(operator))
	}
	return responses, nil
}

func (s *CatalogService) ListPlans(ctx context.Context, operatorID string, bucket string) ([]response_models.PlanResponse, error) {
	if !validBucket(bucket) {
		return nil, utils.ErrInvalidInput
	}

	plans, err := s.catalogRepo.ListPlans(ctx, operatorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		if matchesBucket(plan.DataGB, bucket) {
			responses = append(responses, toPlanResponse(plan))
		}
	}
	return responses, nil
}

func (s *CatalogService) ListReviews(ctx context.Context, planID string) ([]response_models.ReviewResponse, error) {
	reviews, err := s.catalogRepo.ListReviews(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return responses, nil
}

func (s *CatalogService) ComparePlans(ctx context.Context, ids []string) (response_models.ComparisonResponse, error) {
	plans, err := s.comparisonSet(ctx, ids)
	if err != nil {
		return response_models.ComparisonResponse{}, err
	}

	// Unlimited plans are plotted past the largest finite allowance so they
	// stay on the chart instead of at -1.
	maxFinite := int64(10)
	for _, plan := range plans {
		if !plan.DataGB.IsUnlimited() && int64(plan.DataGB) > maxFinite {
			maxFinite = int64(plan.DataGB)
		}
	}
	unlimitedValue := int64(math.Ceil(float64(maxFinite) * 1.2))

	resp := response_models.ComparisonResponse{
		Plans:  make([]response_models.PlanResponse, 0, len(plans)),
		Points: make([]response_models.ComparisonPoint, 0, len(plans)),
	}
	for _, plan := range plans {
		x := int64(plan.DataGB)
		if plan.DataGB.IsUnlimited() {
			x = unlimitedValue
		}
		resp.Plans = append(resp.Plans, toPlanResponse(plan))
		resp.Points = append(resp.Points, response_models.ComparisonPoint{
			PlanID:    plan.ID,
			Name:      plan.Name,
			X:         x,
			Y:         plan.Price,
			Currency:  plan.Currency,
			DataLabel: plan.DataGB.String(),
		})
	}
	return resp, nil
}

func (s *CatalogService) ComparePlansCSV(ctx context.Context, ids []string) (string, error) {
	plans, err := s.comparisonSet(ctx, ids)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Name,Price,Currency,Data,Validity Days,SIM Type,5G\n")
	for _, plan := range plans {
		fiveG := "No"
		if plan.Speed5G {
			fiveG = "Yes"
		}
		fmt.Fprintf(&b, "%s,%.2f,%s,%s,%d,%s,%s\n",
			csvEscape(plan.Name), plan.Price, plan.Currency,
			plan.DataGB.String(), plan.ValidityDays, plan.SimType, fiveG)
	}
	return b.String(), nil
}

func (s *CatalogService) comparisonSet(ctx context.Context, ids []string) ([]db_models.Plan, error) {
	if len(ids) < compareMinPlans || len(ids) > compareMaxPlans {
		return nil, utils.ErrInvalidInput
	}

	plans, err := s.catalogRepo.ListPlansByIDs(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(plans) == 0 {
		return nil, utils.ErrPlanNotFound
	}
	return plans, nil
}

func validBucket(bucket string) bool {
	switch bucket {
	case "", BucketAll, BucketLow, BucketMedium, BucketHigh, BucketUltra:
		return true
	}
	return false
}

func matchesBucket(data db_models.DataAllowance, bucket string) bool {
	switch bucket {
	case BucketLow:
		return !data.IsUnlimited() && data < 10
	case BucketMedium:
		return !data.IsUnlimited() && data >= 10 && data < 50
	case BucketHigh:
		return !data.IsUnlimited() && data >= 50 && data < 100
	case BucketUltra:
		return data.IsUnlimited() || data >= 100
	}
	return true
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
