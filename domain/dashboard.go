package domain

var (
	MessageSuccessGetDashboard = "dashboard retrieved successfully"
	MessageFailedGetDashboard  = "failed to retrieve dashboard"
)

type (
	TotalsResponse struct {
		Calories  float64 `json:"calories"`
		Protein   float64 `json:"protein"`
		Carbs     float64 `json:"carbs"`
		Fats      float64 `json:"fats"`
		MealCount int     `json:"meal_count"`
	}

	MacroProgress struct {
		Percent float64 `json:"percent"`
		Status  string  `json:"status"`
	}

	ProgressResponse struct {
		Calories MacroProgress `json:"calories"`
		Protein  MacroProgress `json:"protein"`
		Carbs    MacroProgress `json:"carbs"`
		Fats     MacroProgress `json:"fats"`
	}

	DayOverview struct {
		Date     string           `json:"date"`
		Weekday  string           `json:"weekday"`
		IsToday  bool             `json:"is_today"`
		Totals   TotalsResponse   `json:"totals"`
		Progress ProgressResponse `json:"progress"`
	}

	WeeklyOverviewResponse struct {
		WeekStart     string           `json:"week_start"`
		WeekEnd       string           `json:"week_end"`
		DailyTargets  MacroTargets     `json:"daily_targets"`
		Days          []DayOverview    `json:"days"`
		Today         TotalsResponse   `json:"today"`
		TodayProgress ProgressResponse `json:"today_progress"`
	}

	WeeklyProgressResponse struct {
		WeekStart     string           `json:"week_start"`
		Through       string           `json:"through"`
		DaysElapsed   int              `json:"days_elapsed"`
		WeeklyTargets MacroTargets     `json:"weekly_targets"`
		Totals        TotalsResponse   `json:"totals"`
		Progress      ProgressResponse `json:"progress"`
	}

	SummaryResponse struct {
		Goal          string         `json:"goal,omitempty"`
		ActivityLevel string         `json:"activity_level,omitempty"`
		DailyTargets  MacroTargets   `json:"daily_targets"`
		From          string         `json:"from"`
		To            string         `json:"to"`
		Totals        TotalsResponse `json:"totals"`
		DailyAverage  MacroTargets   `json:"daily_average"`
		RecentMeals   []MealResponse `json:"recent_meals"`
	}
)
