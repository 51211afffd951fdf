package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"simconnect/internal/models/db_models"
)

// Point tariffs per contribution kind. These are policy constants: a review
// is cheap to write, a new operator needs the most domain knowledge.
const (
	PointsPerReview   = 2
	PointsPerPlan     = 5
	PointsPerOperator = 10
)

type CatalogRepository interface {
	ListCountries(ctx context.Context) ([]db_models.Country, error)
	GetCountry(ctx context.Context, id string) (*db_models.Country, error)

	ListOperators(ctx context.Context, countryID string) ([]db_models.Operator, error)
	GetOperator(ctx context.Context, id string) (*db_models.Operator, error)

	ListPlans(ctx context.Context, operatorID string) ([]db_models.Plan, error)
	GetPlan(ctx context.Context, id string) (*db_models.Plan, error)
	ListPlansByIDs(ctx context.Context, ids []string) ([]db_models.Plan, error)

	ListReviews(ctx context.Context, planID string) ([]db_models.Review, error)

	CreateOperator(ctx context.Context, operator *db_models.Operator) error
	CreatePlan(ctx context.Context, plan *db_models.Plan) error
	CreateReview(ctx context.Context, review *db_models.Review) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListCountries(ctx context.Context) ([]db_models.Country, error) {
	var countries []db_models.Country
	if err := r.db.WithContext(ctx).Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// Lookups return a nil record and nil error when no row matches.

func (r *catalogRepository) GetCountry(ctx context.Context, id string) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *catalogRepository) ListOperators(ctx context.Context, countryID string) ([]db_models.Operator, error) {
	var operators []db_models.Operator
	q := r.db.WithContext(ctx)
	if countryID != "" {
		q = q.Where("country_id = ?", countryID)
	}
	if err := q.Find(&operators).Error; err != nil {
		return nil, err
	}
	return operators, nil
}

func (r *catalogRepository) GetOperator(ctx context.Context, id string) (*db_models.Operator, error) {
	var operator db_models.Operator
	err := r.db.WithContext(ctx).First(&operator, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &operator, nil
}

func (r *catalogRepository) ListPlans(ctx context.Context, operatorID string) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	q := r.db.WithContext(ctx)
	if operatorID != "" {
		q = q.Where("operator_id = ?", operatorID)
	}
	if err := q.Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *catalogRepository) GetPlan(ctx context.Context, id string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *catalogRepository) ListPlansByIDs(ctx context.Context, ids []string) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	if len(ids) == 0 {
		return plans, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *catalogRepository) ListReviews(ctx context.Context, planID string) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// The append operations run the insert and the point award in one
// transaction: either the contribution lands and the profile is credited, or
// neither happens.

func (r *catalogRepository) CreateOperator(ctx context.Context, operator *db_models.Operator) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(operator).Error; err != nil {
			return err
		}
		return creditProfile(tx, PointsPerOperator, 1)
	})
}

func (r *catalogRepository) CreatePlan(ctx context.Context, plan *db_models.Plan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		return creditProfile(tx, PointsPerPlan, 1)
	})
}

func (r *catalogRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return creditProfile(tx, PointsPerReview, 0)
	})
}

func creditProfile(tx *gorm.DB, points, contributions int) error {
	updates := map[string]interface{}{
		"points": gorm.Expr("points + ?", points),
	}
	if contributions > 0 {
		updates["contributions"] = gorm.Expr("contributions + ?", contributions)
	}
	return tx.Model(&db_models.Profile{}).
		Where("id = ?", db_models.ProfileID).
		Updates(updates).Error
}
