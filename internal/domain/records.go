// Package domain defines the record types the insights engine consumes.
//
// Records arrive already fetched by the caller (storage and transport live
// outside this module) and are treated as read-only snapshots: no function in
// this module mutates its inputs, and every date is carried as an ISO
// `YYYY-MM-DD` string compared lexicographically, never through a timezone.
package domain

import "time"

// ActivityType is the closed set of exercise categories.
type ActivityType string

const (
	ActivityRunning  ActivityType = "running"
	ActivityCycling  ActivityType = "cycling"
	ActivityStrength ActivityType = "strength"
	ActivityWalking  ActivityType = "walking"
	ActivitySwimming ActivityType = "swimming"
	ActivityYoga     ActivityType = "yoga"
	ActivityOther    ActivityType = "other"
)

// ExerciseEntry is a single logged workout session.
//
// Date may carry a time suffix ("2024-05-01T06:30"); matching against a
// calendar day is always a prefix comparison on the date-only string.
type ExerciseEntry struct {
	ID               string       `json:"id" yaml:"id"`
	Date             string       `json:"date" yaml:"date"`
	Type             ActivityType `json:"type" yaml:"type"`
	DurationMinutes  float64      `json:"duration_minutes" yaml:"duration_minutes"`
	CaloriesBurned   float64      `json:"calories_burned,omitempty" yaml:"calories_burned,omitempty"`
	AverageWatts     float64      `json:"average_watts,omitempty" yaml:"average_watts,omitempty"`
	Title            string       `json:"title,omitempty" yaml:"title,omitempty"`
	Notes            string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	ExcludeFromStats bool         `json:"exclude_from_stats,omitempty" yaml:"exclude_from_stats,omitempty"`
}

// OnDay reports whether the entry belongs to the given calendar day.
func (e ExerciseEntry) OnDay(day string) bool {
	return SameDay(e.Date, day)
}

// StrengthSet is one set inside a strength exercise. Time can arrive either
// as raw seconds or as a user-entered "mm:ss"/"hh:mm:ss" string; calories and
// distance are optional.
type StrengthSet struct {
	SetNumber    int     `json:"set_number" yaml:"set_number"`
	TimeSeconds  float64 `json:"time_seconds,omitempty" yaml:"time_seconds,omitempty"`
	Time         string  `json:"time,omitempty" yaml:"time,omitempty"`
	Distance     float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	DistanceUnit string  `json:"distance_unit,omitempty" yaml:"distance_unit,omitempty"`
	Calories     float64 `json:"calories,omitempty" yaml:"calories,omitempty"`
}

// Seconds resolves the set duration, preferring the numeric field over the
// user-entered string. Returns 0 when neither is usable.
func (s StrengthSet) Seconds() float64 {
	if s.TimeSeconds > 0 {
		return s.TimeSeconds
	}
	if secs, ok := ParseClock(s.Time); ok {
		return secs
	}
	return 0
}

// Meters resolves the set distance to meters. Unrecognised units are treated
// as meters, which is what erg consoles report.
func (s StrengthSet) Meters() float64 {
	if s.Distance <= 0 {
		return 0
	}
	switch s.DistanceUnit {
	case "km", "kilometers":
		return s.Distance * 1000
	case "mi", "miles":
		return s.Distance * 1609.34
	default:
		return s.Distance
	}
}

// StrengthExercise is an ordered group of sets under one movement name.
type StrengthExercise struct {
	Name string        `json:"name" yaml:"name"`
	Sets []StrengthSet `json:"sets" yaml:"sets"`
}

// StrengthWorkout is a logged strength session.
type StrengthWorkout struct {
	ID        string             `json:"id" yaml:"id"`
	Date      string             `json:"date" yaml:"date"`
	Name      string             `json:"name" yaml:"name"`
	Exercises []StrengthExercise `json:"exercises" yaml:"exercises"`
}

// MealEntry is used only as an activity-presence signal.
type MealEntry struct {
	ID       string  `json:"id" yaml:"id"`
	Date     string  `json:"date" yaml:"date"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Calories float64 `json:"calories,omitempty" yaml:"calories,omitempty"`
}

// WeightEntry is a dated body-weight measurement in kilograms.
type WeightEntry struct {
	ID       string  `json:"id" yaml:"id"`
	Date     string  `json:"date" yaml:"date"`
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
}

// DailyVitals is the per-day wellbeing record. Presence of any positive
// field marks the day as active.
type DailyVitals struct {
	Water    float64 `json:"water,omitempty" yaml:"water,omitempty"`
	Caffeine float64 `json:"caffeine,omitempty" yaml:"caffeine,omitempty"`
	Alcohol  float64 `json:"alcohol,omitempty" yaml:"alcohol,omitempty"`
	Sleep    float64 `json:"sleep,omitempty" yaml:"sleep,omitempty"`
}

// Active reports whether the vitals record counts as activity for the day.
func (v DailyVitals) Active() bool {
	return v.Water > 0 || v.Caffeine > 0 || v.Alcohol > 0 || v.Sleep > 0
}

// Gender values recognised by the calorie and power models.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Defaults applied when individual settings fields are absent.
const (
	DefaultHeightCm    = 175.0
	DefaultAge         = 30
	DefaultCalorieGoal = 2500.0
)

// AppSettings holds the user profile fields the engine reads. Any field may
// be zero-valued; accessors apply the documented defaults.
type AppSettings struct {
	HeightCm         float64 `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	BirthYear        int     `json:"birth_year,omitempty" yaml:"birth_year,omitempty"`
	Gender           Gender  `json:"gender,omitempty" yaml:"gender,omitempty"`
	DailyCalorieGoal float64 `json:"daily_calorie_goal,omitempty" yaml:"daily_calorie_goal,omitempty"`
}

// Height returns the configured height or the default.
func (s *AppSettings) Height() float64 {
	if s == nil || s.HeightCm <= 0 {
		return DefaultHeightCm
	}
	return s.HeightCm
}

// Age derives age at year granularity from the birth year. The original
// product computed age this way on purpose; do not sharpen it to birthdays.
func (s *AppSettings) Age(now time.Time) int {
	if s == nil || s.BirthYear <= 0 {
		return DefaultAge
	}
	return now.Year() - s.BirthYear
}

// CalorieGoal returns the daily calorie goal or the default.
func (s *AppSettings) CalorieGoal() float64 {
	if s == nil || s.DailyCalorieGoal <= 0 {
		return DefaultCalorieGoal
	}
	return s.DailyCalorieGoal
}

// DailyNutrition is the aggregate a nutrition source reports for one day.
type DailyNutrition struct {
	Calories float64 `json:"calories" yaml:"calories"`
}

// NutritionFunc supplies the per-day nutrition aggregate for the
// calorie-goal streak. Days without intake report zero calories.
type NutritionFunc func(day string) DailyNutrition
