package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"simconnect/internal/models/db_models"
	"simconnect/internal/models/request_models"
	"simconnect/internal/models/response_models"
	"simconnect/internal/repositories"
	"simconnect/pkg/utils"
)

type ContributionServiceInterface interface {
	AddOperator(ctx context.Context, req request_models.AddOperatorRequest) (response_models.OperatorResponse, error)
	AddPlan(ctx context.Context, req request_models.AddPlanRequest) (response_models.PlanResponse, error)
	AddReview(ctx context.Context, planID string, req request_models.AddReviewRequest) (response_models.ReviewResponse, error)
}

type ContributionService struct {
	catalogRepo    repositories.CatalogRepository
	profileService ProfileServiceInterface
}

func NewContributionService(
	catalogRepo repositories.CatalogRepository,
	profileService ProfileServiceInterface,
) ContributionServiceInterface {
	return &ContributionService{
		catalogRepo:    catalogRepo,
		profileService: profileService,
	}
}

// Validation rejects before any store mutation; a contribution is never
// partially applied.

func (s *ContributionService) AddOperator(ctx context.Context, req request_models.AddOperatorRequest) (response_models.OperatorResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.CountryID) == "" {
		return response_models.OperatorResponse{}, utils.ErrInvalidInput
	}

	country, err := s.catalogRepo.GetCountry(ctx, req.CountryID)
	if err != nil {
		return response_models.OperatorResponse{}, utils.ErrDatabaseError
	}
	if country == nil {
		return response_models.OperatorResponse{}, utils.ErrCountryNotFound
	}

	operator := db_models.Operator{
		ID:           "op-" + uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		CountryID:    req.CountryID,
		Technologies: datatypes.NewJSONSlice(req.Technologies),
		Website:      strings.TrimSpace(req.Website),
		Coverage:     strings.TrimSpace(req.Coverage),
	}

	if err := s.catalogRepo.CreateOperator(ctx, &operator); err != nil {
		return response_models.OperatorResponse{}, fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}

	s.profileService.RecordActivity(ctx, ActivityOperator)
	return toOperatorResponse(operator), nil
}

func (s *ContributionService) AddPlan(ctx context.Context, req request_models.AddPlanRequest) (response_models.PlanResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.OperatorID) == "" {
		return response_models.PlanResponse{}, utils.ErrInvalidInput
	}
	allowance := db_models.DataAllowance(req.DataGB)
	if !allowance.IsUnlimited() && req.DataGB < 0 {
		return response_models.PlanResponse{}, utils.ErrInvalidInput
	}
	if req.Price < 0 || req.ValidityDays < 1 {
		return response_models.PlanResponse{}, utils.ErrInvalidInput
	}
	simType := db_models.SimType(req.SimType)
	if simType == "" {
		simType = db_models.SimTypePhysical
	}
	if !simType.Valid() {
		return response_models.PlanResponse{}, utils.ErrInvalidInput
	}

	operator, err := s.catalogRepo.GetOperator(ctx, req.OperatorID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if operator == nil {
		return response_models.PlanResponse{}, utils.ErrOperatorNotFound
	}

	plan := db_models.Plan{
		ID:           "plan-" + uuid.New().String(),
		OperatorID:   req.OperatorID,
		Name:         strings.TrimSpace(req.Name),
		DataGB:       allowance,
		Price:        req.Price,
		Currency:     strings.ToUpper(strings.TrimSpace(req.Currency)),
		ValidityDays: req.ValidityDays,
		SimType:      simType,
		Speed5G:      req.Speed5G,
		Features:     datatypes.NewJSONSlice(req.Features),
	}

	if err := s.catalogRepo.CreatePlan(ctx, &plan); err != nil {
		return response_models.PlanResponse{}, fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}

	s.profileService.RecordActivity(ctx, ActivityPlan)
	return toPlanResponse(plan), nil
}

func (s *ContributionService) AddReview(ctx context.Context, planID string, req request_models.AddReviewRequest) (response_models.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return response_models.ReviewResponse{}, utils.ErrInvalidInput
	}

	plan, err := s.catalogRepo.GetPlan(ctx, planID)
	if err != nil {
		return response_models.ReviewResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.ReviewResponse{}, utils.ErrPlanNotFound
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		profile, err := s.profileService.GetProfile(ctx)
		if err != nil {
			return response_models.ReviewResponse{}, err
		}
		userName = profile.Name
	}

	review := db_models.Review{
		ID:       "rev-" + uuid.New().String(),
		PlanID:   planID,
		UserName: userName,
		Rating:   req.Rating,
		Comment:  strings.TrimSpace(req.Comment),
		Date:     time.Now().Format("2006-01-02"),
	}

	if err := s.catalogRepo.CreateReview(ctx, &review); err != nil {
		return response_models.ReviewResponse{}, fmt.Errorf("%w: %v", utils.ErrStorageFailure, err)
	}

	s.profileService.RecordActivity(ctx, ActivityReview)
	return toReviewResponse(review), nil
}
