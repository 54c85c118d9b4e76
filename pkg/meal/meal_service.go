package meal

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/entities"
	"BulkBlitz-Backend/internal/utils/dateutil"
	"BulkBlitz-Backend/internal/utils/storage"
	"BulkBlitz-Backend/pkg/analysis"
	"BulkBlitz-Backend/pkg/completion"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EarliestMealDate is the oldest date a meal may be logged for.
var EarliestMealDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

type (
	MealService interface {
		CreateMeal(ctx context.Context, req domain.CreateMealRequest, userID string) (domain.CreateMealResponse, error)
		GetMeals(ctx context.Context, userID string, status string, from string, to string) ([]domain.MealResponse, error)
		GetMealByID(ctx context.Context, id string, userID string) (domain.MealResponse, error)
		ArchiveMeal(ctx context.Context, id string, userID string) error
	}

	mealService struct {
		mealRepository MealRepository
		s3             storage.AwsS3
		loc            *time.Location
		now            func() time.Time
	}
)

// NewMealService accepts a nil s3 when photo storage is not configured.
func NewMealService(mealRepository MealRepository, s3 storage.AwsS3, loc *time.Location) MealService {
	if loc == nil {
		loc = time.UTC
	}
	return &mealService{
		mealRepository: mealRepository,
		s3:             s3,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *mealService) CreateMeal(ctx context.Context, req domain.CreateMealRequest, userID string) (domain.CreateMealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CreateMealResponse{}, domain.ErrParseUUID
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return domain.CreateMealResponse{}, domain.ErrInvalidMealDate
	}
	today := dateutil.CalendarDate(s.now().In(s.loc))
	if date.After(today) || date.Before(EarliestMealDate) {
		return domain.CreateMealResponse{}, domain.ErrInvalidMealDate
	}

	if req.Calories < 0 || req.Protein < 0 || req.Carbs < 0 || req.Fats < 0 {
		return domain.CreateMealResponse{}, domain.ErrNegativeMacro
	}

	meal := &entities.Meal{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Date:        datatypes.Date(date),
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fats:        req.Fats,
		Analysis:    req.Analysis,
		Active:      true,
	}

	if req.Image != "" {
		image, err := analysis.DecodeImage(req.Image)
		if err != nil {
			return domain.CreateMealResponse{}, err
		}
		s.uploadPhoto(ctx, meal, image)
	}

	if err := s.mealRepository.CreateMeal(ctx, meal); err != nil {
		s.discardPhoto(ctx, meal)
		return domain.CreateMealResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	return domain.CreateMealResponse{ID: meal.ID.String()}, nil
}

// uploadPhoto sets meal.ImageURL on success. Failures leave the meal without a
// photo.
func (s *mealService) uploadPhoto(ctx context.Context, meal *entities.Meal, image completion.Image) {
	if s.s3 == nil {
		return
	}

	fileName := fmt.Sprintf("meal-%s", meal.ID.String())
	objectKey, err := s.s3.UploadFile(ctx, fileName, image.Data, image.MIMEType, "meals", storage.AllowImage...)
	if err != nil {
		log.Errorf("meal photo upload failed for %s: %v", meal.ID, err)
		return
	}
	meal.ImageURL = s.s3.GetPublicLinkKey(objectKey)
}

// discardPhoto removes the object uploaded for a meal that was never stored.
func (s *mealService) discardPhoto(ctx context.Context, meal *entities.Meal) {
	if s.s3 == nil || meal.ImageURL == "" {
		return
	}

	objectKey := s.s3.GetObjectKeyFromLink(meal.ImageURL)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Errorf("failed to remove orphaned photo %s: %v", objectKey, err)
	}
}

func (s *mealService) GetMeals(ctx context.Context, userID string, status string, from string, to string) ([]domain.MealResponse, error) {
	filter := domain.ListMealsFilter{}

	switch status {
	case "", domain.MealStatusActive:
		filter.ActiveOnly = true
	case domain.MealStatusAll:
	default:
		return nil, domain.ErrInvalidStatus
	}

	if from != "" {
		f, err := dateutil.ParseDate(from)
		if err != nil {
			return nil, domain.ErrInvalidDateRange
		}
		filter.From = &f
	}
	if to != "" {
		t, err := dateutil.ParseDate(to)
		if err != nil {
			return nil, domain.ErrInvalidDateRange
		}
		filter.To = &t
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, domain.ErrInvalidDateRange
	}

	meals, err := s.mealRepository.GetMeals(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	response := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		response = append(response, ToMealResponse(m))
	}

	return response, nil
}

func (s *mealService) GetMealByID(ctx context.Context, id string, userID string) (domain.MealResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MealResponse{}, domain.ErrMealNotFound
	}

	meal, err := s.mealRepository.GetMealByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealResponse{}, domain.ErrMealNotFound
		}
		return domain.MealResponse{}, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}

	return ToMealResponse(meal), nil
}

func (s *mealService) ArchiveMeal(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMealNotFound
	}

	if err := s.mealRepository.ArchiveMeal(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	return nil
}

func ToMealResponse(m *entities.Meal) domain.MealResponse {
	return domain.MealResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		Date:        dateutil.Format(time.Time(m.Date)),
		Calories:    m.Calories,
		Protein:     m.Protein,
		Carbs:       m.Carbs,
		Fats:        m.Fats,
		Analysis:    m.Analysis,
		ImageURL:    m.ImageURL,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
