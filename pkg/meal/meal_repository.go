package meal

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/entities"
	"BulkBlitz-Backend/internal/utils/dateutil"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	MealRepository interface {
		CreateMeal(ctx context.Context, meal *entities.Meal) error
		GetMeals(ctx context.Context, userID string, filter domain.ListMealsFilter) ([]*entities.Meal, error)
		GetMealByID(ctx context.Context, id string, userID string) (*entities.Meal, error)
		ArchiveMeal(ctx context.Context, id string, userID string) error
	}

	mealRepository struct {
		db *gorm.DB
	}
)

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) CreateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

// GetMeals returns the user's meals, newest date first and newest insert first
// within a day.
func (r *mealRepository) GetMeals(ctx context.Context, userID string, filter domain.ListMealsFilter) ([]*entities.Meal, error) {
	var meals []*entities.Meal

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", dateutil.CalendarDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", dateutil.CalendarDate(*filter.To))
	}

	if err := query.Order("date desc").Order("created_at desc").Find(&meals).Error; err != nil {
		return nil, err
	}

	return meals, nil
}

func (r *mealRepository) GetMealByID(ctx context.Context, id string, userID string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// ArchiveMeal flips active off. A meal owned by someone else is reported as
// not found.
func (r *mealRepository) ArchiveMeal(ctx context.Context, id string, userID string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}
