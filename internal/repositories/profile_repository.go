package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"simconnect/internal/models/db_models"
)

type ProfileRepository interface {
	GetProfile(ctx context.Context) (db_models.Profile, error)
	AppendBadge(ctx context.Context, badge string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetProfile fails closed: a missing row yields a zero-valued profile, not an
// error. After seeding the row always exists.
func (r *profileRepository) GetProfile(ctx context.Context) (db_models.Profile, error) {
	var profile db_models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", db_models.ProfileID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db_models.Profile{ID: db_models.ProfileID}, nil
		}
		return db_models.Profile{}, err
	}
	return profile, nil
}

// AppendBadge adds a badge once; re-awarding is a no-op.
func (r *profileRepository) AppendBadge(ctx context.Context, badge string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile db_models.Profile
		if err := tx.First(&profile, "id = ?", db_models.ProfileID).Error; err != nil {
			return err
		}
		for _, b := range profile.Badges {
			if b == badge {
				return nil
			}
		}
		profile.Badges = append(profile.Badges, badge)
		return tx.Model(&db_models.Profile{}).
			Where("id = ?", db_models.ProfileID).
			Update("badges", profile.Badges).Error
	})
}
