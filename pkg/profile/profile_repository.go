package profile

import (
	"BulkBlitz-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProfileRepository interface {
		GetProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error)
		CreateProfile(ctx context.Context, profile *entities.Profile) error
		UpdateProfile(ctx context.Context, profile *entities.Profile) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// UpdateProfile writes every column, zero values included, so targets can be
// reset to 0.
func (r *profileRepository) UpdateProfile(ctx context.Context, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Model(profile).Select("*").Omit("id", "created_at").Updates(profile).Error
}
