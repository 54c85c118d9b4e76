package profile

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/entities"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		// GetProfile returns a zero-target profile when none has been saved.
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpsertProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error)
		GetTargets(ctx context.Context, userID string) (domain.MacroTargets, error)
	}

	profileService struct {
		profileRepository ProfileRepository
	}
)

func NewProfileService(profileRepository ProfileRepository) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return toProfileResponse(&entities.Profile{ID: userUUID}), nil
		}
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) UpsertProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	if req.TargetCalories < 0 || req.TargetProtein < 0 || req.TargetCarbs < 0 || req.TargetFats < 0 {
		return domain.ProfileResponse{}, domain.ErrNegativeMacro
	}

	existing, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProfileResponse{}, err
	}

	profile := existing
	if profile == nil {
		profile = &entities.Profile{ID: userUUID}
	}

	profile.Name = strings.TrimSpace(req.Name)
	profile.Age = req.Age
	profile.Weight = req.Weight
	profile.Height = req.Height
	profile.Goal = optional(req.Goal)
	profile.ActivityLevel = optional(req.ActivityLevel)
	profile.TargetCalories = req.TargetCalories
	profile.TargetProtein = req.TargetProtein
	profile.TargetCarbs = req.TargetCarbs
	profile.TargetFats = req.TargetFats

	if existing == nil {
		err = s.profileRepository.CreateProfile(ctx, profile)
	} else {
		err = s.profileRepository.UpdateProfile(ctx, profile)
	}
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) GetTargets(ctx context.Context, userID string) (domain.MacroTargets, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return domain.MacroTargets{}, err
	}
	return profile.DailyTargets, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toProfileResponse(p *entities.Profile) domain.ProfileResponse {
	daily := domain.MacroTargets{
		Calories: p.TargetCalories,
		Protein:  p.TargetProtein,
		Carbs:    p.TargetCarbs,
		Fats:     p.TargetFats,
	}

	res := domain.ProfileResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Age:           p.Age,
		Weight:        p.Weight,
		Height:        p.Height,
		DailyTargets:  daily,
		WeeklyTargets: daily.Weekly(),
		Tokens:        p.Tokens,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.Goal != nil {
		res.Goal = *p.Goal
	}
	if p.ActivityLevel != nil {
		res.ActivityLevel = *p.ActivityLevel
	}
	return res
}
