// Package dashboard composes stored meals and profile targets into weekly and
// summary views.
package dashboard

import (
	"BulkBlitz-Backend/domain"
	"BulkBlitz-Backend/entities"
	"BulkBlitz-Backend/internal/utils/dateutil"
	"BulkBlitz-Backend/pkg/meal"
	"BulkBlitz-Backend/pkg/nutrition"
	"BulkBlitz-Backend/pkg/profile"
	"context"
	"fmt"
	"time"
)

// SummaryWindowDays is the length of the rolling window used by Summary.
const SummaryWindowDays = 7

type (
	DashboardService interface {
		WeeklyOverview(ctx context.Context, userID string) (domain.WeeklyOverviewResponse, error)
		WeeklyProgress(ctx context.Context, userID string) (domain.WeeklyProgressResponse, error)
		Summary(ctx context.Context, userID string) (domain.SummaryResponse, error)
	}

	dashboardService struct {
		mealRepository meal.MealRepository
		profileService profile.ProfileService
		loc            *time.Location
		now            func() time.Time
	}
)

func NewDashboardService(mealRepository meal.MealRepository, profileService profile.ProfileService, loc *time.Location) DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &dashboardService{
		mealRepository: mealRepository,
		profileService: profileService,
		loc:            loc,
		now:            time.Now,
	}
}

func (s *dashboardService) today() time.Time {
	return dateutil.DateOnly(s.now().In(s.loc))
}

func (s *dashboardService) activeMeals(ctx context.Context, userID string, from, to time.Time) ([]*entities.Meal, error) {
	meals, err := s.mealRepository.GetMeals(ctx, userID, domain.ListMealsFilter{
		ActiveOnly: true,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	return meals, nil
}

func (s *dashboardService) WeeklyOverview(ctx context.Context, userID string) (domain.WeeklyOverviewResponse, error) {
	targets, err := s.profileService.GetTargets(ctx, userID)
	if err != nil {
		return domain.WeeklyOverviewResponse{}, err
	}

	today := s.today()
	start, end := dateutil.WeekRange(today)

	meals, err := s.activeMeals(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklyOverviewResponse{}, err
	}

	days := dateutil.WeekDays(today)
	res := domain.WeeklyOverviewResponse{
		WeekStart:    dateutil.Format(start),
		WeekEnd:      dateutil.Format(end),
		DailyTargets: targets,
		Days:         make([]domain.DayOverview, 0, len(days)),
	}

	for _, day := range nutrition.DailyTotals(meals, days) {
		overview := domain.DayOverview{
			Date:     dateutil.Format(day.Date),
			Weekday:  day.Date.Weekday().String(),
			IsToday:  dateutil.SameDay(day.Date, today),
			Totals:   toTotalsResponse(day.Totals),
			Progress: dailyProgress(day.Totals, targets),
		}
		if overview.IsToday {
			res.Today = overview.Totals
			res.TodayProgress = overview.Progress
		}
		res.Days = append(res.Days, overview)
	}

	return res, nil
}

func (s *dashboardService) WeeklyProgress(ctx context.Context, userID string) (domain.WeeklyProgressResponse, error) {
	targets, err := s.profileService.GetTargets(ctx, userID)
	if err != nil {
		return domain.WeeklyProgressResponse{}, err
	}
	weekly := targets.Weekly()

	today := s.today()
	days := dateutil.WeekDaysThrough(today)

	meals, err := s.activeMeals(ctx, userID, days[0], today)
	if err != nil {
		return domain.WeeklyProgressResponse{}, err
	}

	totals := nutrition.SumWhere(meals, nutrition.Between(days[0], today))

	return domain.WeeklyProgressResponse{
		WeekStart:     dateutil.Format(days[0]),
		Through:       dateutil.Format(today),
		DaysElapsed:   len(days),
		WeeklyTargets: weekly,
		Totals:        toTotalsResponse(totals),
		Progress:      weeklyProgress(totals, weekly),
	}, nil
}

func (s *dashboardService) Summary(ctx context.Context, userID string) (domain.SummaryResponse, error) {
	p, err := s.profileService.GetProfile(ctx, userID)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	to := s.today()
	from := to.AddDate(0, 0, -(SummaryWindowDays - 1))

	meals, err := s.activeMeals(ctx, userID, from, to)
	if err != nil {
		return domain.SummaryResponse{}, err
	}

	totals := nutrition.Sum(meals)

	recent := make([]domain.MealResponse, 0, len(meals))
	for _, m := range meals {
		recent = append(recent, meal.ToMealResponse(m))
	}

	return domain.SummaryResponse{
		Goal:          domain.GoalLabels[p.Goal],
		ActivityLevel: domain.ActivityLabels[p.ActivityLevel],
		DailyTargets:  p.DailyTargets,
		From:          dateutil.Format(from),
		To:            dateutil.Format(to),
		Totals:        toTotalsResponse(totals),
		DailyAverage: domain.MacroTargets{
			Calories: nutrition.Round1(totals.Calories / SummaryWindowDays),
			Protein:  nutrition.Round1(totals.Protein / SummaryWindowDays),
			Carbs:    nutrition.Round1(totals.Carbs / SummaryWindowDays),
			Fats:     nutrition.Round1(totals.Fats / SummaryWindowDays),
		},
		RecentMeals: recent,
	}, nil
}

func toTotalsResponse(t nutrition.Totals) domain.TotalsResponse {
	return domain.TotalsResponse{
		Calories:  nutrition.Round1(t.Calories),
		Protein:   nutrition.Round1(t.Protein),
		Carbs:     nutrition.Round1(t.Carbs),
		Fats:      nutrition.Round1(t.Fats),
		MealCount: t.MealCount,
	}
}

// dailyProgress reports the clamped percentage but bands on the raw ratio, so
// a day above 110% shows 100 with status overshoot.
func dailyProgress(t nutrition.Totals, targets domain.MacroTargets) domain.ProgressResponse {
	macro := func(actual, target float64) domain.MacroProgress {
		return domain.MacroProgress{
			Percent: nutrition.Round1(nutrition.Percent(actual, target)),
			Status:  string(nutrition.ClassifyBandWithOvershoot(nutrition.RawPercent(actual, target))),
		}
	}
	return domain.ProgressResponse{
		Calories: macro(t.Calories, targets.Calories),
		Protein:  macro(t.Protein, targets.Protein),
		Carbs:    macro(t.Carbs, targets.Carbs),
		Fats:     macro(t.Fats, targets.Fats),
	}
}

func weeklyProgress(t nutrition.Totals, targets domain.MacroTargets) domain.ProgressResponse {
	macro := func(actual, target float64) domain.MacroProgress {
		pct := nutrition.Percent(actual, target)
		return domain.MacroProgress{
			Percent: nutrition.Round1(pct),
			Status:  string(nutrition.ClassifyBand(pct)),
		}
	}
	return domain.ProgressResponse{
		Calories: macro(t.Calories, targets.Calories),
		Protein:  macro(t.Protein, targets.Protein),
		Carbs:    macro(t.Carbs, targets.Carbs),
		Fats:     macro(t.Fats, targets.Fats),
	}
}
