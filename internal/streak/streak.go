// Package streak counts consecutive active days or weeks over pluggable
// activity predicates.
//
// One walker implements the counting rule for every streak flavour: the
// streak survives into an anchor day whose entries simply have not been
// logged yet (yesterday active, today silent), without crediting the silent
// day. Iteration caps are a defensive bound against corrupted data, not a
// business rule; hitting one silently truncates the count.
package streak

import (
	"time"

	"example.com/insights/internal/domain"
)

// Predicate reports whether a calendar day counts as active.
type Predicate func(day string) bool

// Safety caps per streak flavour.
const (
	GeneralCap  = 3650
	TrainingCap = 1000
	WeeklyCap   = 520
)

// Count walks backward from the anchor day while the predicate holds.
//
// When the anchor itself is inactive but the previous day is active, the walk
// starts at the previous day, so yesterday's streak is reported unchanged
// rather than reset to zero.
func Count(anchor time.Time, active Predicate, limit int) int {
	anchorActive := active(domain.FormatDay(anchor))
	prev := anchor.AddDate(0, 0, -1)
	if !anchorActive && !active(domain.FormatDay(prev)) {
		return 0
	}
	cursor := anchor
	if !anchorActive {
		cursor = prev
	}
	count := 0
	for i := 0; i < limit; i++ {
		if !active(domain.FormatDay(cursor)) {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

// General counts consecutive days with any tracked activity: a meal, an
// exercise entry, a weight measurement, or vitals with any positive field.
func General(
	meals []domain.MealEntry,
	exercises []domain.ExerciseEntry,
	weights []domain.WeightEntry,
	vitals map[string]domain.DailyVitals,
	anchor time.Time,
) int {
	days := make(map[string]bool)
	for _, m := range meals {
		days[domain.DayOf(m.Date)] = true
	}
	for _, e := range exercises {
		days[domain.DayOf(e.Date)] = true
	}
	for _, w := range weights {
		days[domain.DayOf(w.Date)] = true
	}
	for day, v := range vitals {
		if v.Active() {
			days[domain.DayOf(day)] = true
		}
	}
	return Count(anchor, func(day string) bool { return days[day] }, GeneralCap)
}

// TrainingFilter narrows the training streak to an activity category.
type TrainingFilter string

const (
	// FilterAny counts any exercise entry.
	FilterAny TrainingFilter = ""
	// FilterStrength counts strength sessions only.
	FilterStrength TrainingFilter = "strength"
	// FilterRunning is named after its most common member but covers the
	// whole cardio bucket; downstream callers rely on the union.
	FilterRunning TrainingFilter = "running"
)

var cardioBucket = map[domain.ActivityType]bool{
	domain.ActivityRunning:  true,
	domain.ActivityCycling:  true,
	domain.ActivityWalking:  true,
	domain.ActivitySwimming: true,
}

func matchesFilter(t domain.ActivityType, filter TrainingFilter) bool {
	switch filter {
	case FilterAny:
		return true
	case FilterRunning:
		return cardioBucket[t]
	default:
		return t == domain.ActivityType(filter)
	}
}

// Training counts consecutive days with at least one exercise entry passing
// the filter.
func Training(exercises []domain.ExerciseEntry, filter TrainingFilter, anchor time.Time) int {
	days := make(map[string]bool)
	for _, e := range exercises {
		if matchesFilter(e.Type, filter) {
			days[domain.DayOf(e.Date)] = true
		}
	}
	return Count(anchor, func(day string) bool { return days[day] }, TrainingCap)
}

// WeeklyTraining counts consecutive ISO weeks (Monday start) containing at
// least one exercise entry. When the anchor week is still empty the count
// starts from the previous week, mirroring the daily walker's grace rule; an
// empty previous week means no streak.
func WeeklyTraining(exercises []domain.ExerciseEntry, anchor time.Time) int {
	weeks := make(map[string]bool)
	for _, e := range exercises {
		day, err := domain.ParseDay(e.Date)
		if err != nil {
			// User-authored garbage is no signal, not a failure.
			continue
		}
		weeks[domain.FormatDay(domain.WeekStart(day))] = true
	}

	week := domain.WeekStart(anchor)
	if !weeks[domain.FormatDay(week)] {
		week = week.AddDate(0, 0, -7)
		if !weeks[domain.FormatDay(week)] {
			return 0
		}
	}
	count := 0
	for i := 0; i < WeeklyCap; i++ {
		if !weeks[domain.FormatDay(week)] {
			break
		}
		count++
		week = week.AddDate(0, 0, -7)
	}
	return count
}

// CalorieGoal counts consecutive days on which the nutrition source reports
// intake above zero and at or below the daily goal from settings.
func CalorieGoal(nutrition domain.NutritionFunc, settings *domain.AppSettings, anchor time.Time) int {
	goal := settings.CalorieGoal()
	met := func(day string) bool {
		n := nutrition(day)
		return n.Calories > 0 && n.Calories <= goal
	}
	return Count(anchor, met, GeneralCap)
}
