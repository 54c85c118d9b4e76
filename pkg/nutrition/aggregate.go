// Package nutrition folds meal records into macro totals and evaluates
// progress against targets.
package nutrition

import (
	"BulkBlitz-Backend/entities"
	"BulkBlitz-Backend/internal/utils/dateutil"
	"time"
)

type Totals struct {
	Calories  float64
	Protein   float64
	Carbs     float64
	Fats      float64
	MealCount int
}

type DayTotals struct {
	Date   time.Time
	Totals Totals
}

func (t Totals) Add(m *entities.Meal) Totals {
	return Totals{
		Calories:  t.Calories + m.Calories,
		Protein:   t.Protein + m.Protein,
		Carbs:     t.Carbs + m.Carbs,
		Fats:      t.Fats + m.Fats,
		MealCount: t.MealCount + 1,
	}
}

func MealDate(m *entities.Meal) time.Time {
	return time.Time(m.Date)
}

// SumWhere folds every meal accepted by keep. A nil keep accepts all.
func SumWhere(meals []*entities.Meal, keep func(*entities.Meal) bool) Totals {
	var t Totals
	for _, m := range meals {
		if m == nil {
			continue
		}
		if keep != nil && !keep(m) {
			continue
		}
		t = t.Add(m)
	}
	return t
}

func Sum(meals []*entities.Meal) Totals {
	return SumWhere(meals, nil)
}

// OnDay reports whether a meal's calendar date is the same day as day.
func OnDay(day time.Time) func(*entities.Meal) bool {
	return func(m *entities.Meal) bool {
		return dateutil.SameDay(MealDate(m), day)
	}
}

// Between accepts meals dated within [from, to] by calendar day.
func Between(from, to time.Time) func(*entities.Meal) bool {
	lo := dateutil.CalendarDate(from)
	hi := dateutil.CalendarDate(to)
	return func(m *entities.Meal) bool {
		d := dateutil.CalendarDate(MealDate(m))
		return !d.Before(lo) && !d.After(hi)
	}
}

// DailyTotals returns one entry per day, in the order days were given.
func DailyTotals(meals []*entities.Meal, days []time.Time) []DayTotals {
	out := make([]DayTotals, 0, len(days))
	for _, day := range days {
		out = append(out, DayTotals{
			Date:   day,
			Totals: SumWhere(meals, OnDay(day)),
		})
	}
	return out
}
