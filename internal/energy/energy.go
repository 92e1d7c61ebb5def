// Package energy implements the calorie model: resting expenditure via a
// Mifflin-St Jeor variant and exercise expenditure via a static MET matrix.
package energy

import (
	"math"
	"time"

	"example.com/insights/internal/domain"
)

// Intensity grades an exercise session for MET lookup.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityUltra    Intensity = "ultra"
)

// DefaultBMR is returned when no settings are available at all.
const DefaultBMR = 2000

// genderOffsets are the Mifflin-St Jeor constants; "other" averages the two
// sexed constants.
var genderOffsets = map[domain.Gender]float64{
	domain.GenderMale:   5,
	domain.GenderFemale: -161,
	domain.GenderOther:  -78,
}

// metRow carries the four intensity multipliers for one activity type.
type metRow struct {
	Type                       domain.ActivityType
	Low, Moderate, High, Ultra float64
}

// metTable is static configuration, one row per activity type. Values follow
// the compendium of physical activities.
var metTable = []metRow{
	{domain.ActivityRunning, 6.0, 8.0, 11.0, 14.0},
	{domain.ActivityCycling, 4.0, 6.8, 10.0, 14.0},
	{domain.ActivityStrength, 3.0, 5.0, 6.0, 8.0},
	{domain.ActivityWalking, 2.5, 3.5, 4.5, 5.0},
	{domain.ActivitySwimming, 4.5, 6.0, 8.0, 10.0},
	{domain.ActivityYoga, 2.0, 3.0, 4.0, 5.0},
	{domain.ActivityOther, 3.0, 5.0, 7.0, 9.0},
}

// MET resolves the multiplier for an activity type and intensity. Unknown
// types fall back to the "other" row, unknown intensities to moderate.
func MET(activity domain.ActivityType, intensity Intensity) float64 {
	row := metTable[len(metTable)-1]
	for _, r := range metTable {
		if r.Type == activity {
			row = r
			break
		}
	}
	switch intensity {
	case IntensityLow:
		return row.Low
	case IntensityHigh:
		return row.High
	case IntensityUltra:
		return row.Ultra
	default:
		return row.Moderate
	}
}

// CalculateBMR computes basal metabolic rate in kcal/day from body weight and
// profile settings. Age is taken at year granularity, a documented
// imprecision carried over from the product. Missing settings yield the
// default BMR.
func CalculateBMR(weightKg float64, settings *domain.AppSettings, now time.Time) int {
	if settings == nil || weightKg <= 0 {
		return DefaultBMR
	}
	offset, ok := genderOffsets[settings.Gender]
	if !ok {
		offset = genderOffsets[domain.GenderOther]
	}
	bmr := 10*weightKg + 6.25*settings.Height() - 5*float64(settings.Age(now)) + offset
	return int(math.Round(bmr))
}

// CalculateExerciseCalories estimates energy expenditure for a session as
// MET x weight x hours, rounded to the nearest kcal.
func CalculateExerciseCalories(activity domain.ActivityType, durationMinutes float64, intensity Intensity, weightKg float64) int {
	if durationMinutes <= 0 || weightKg <= 0 {
		return 0
	}
	kcal := MET(activity, intensity) * weightKg * (durationMinutes / 60)
	return int(math.Round(kcal))
}
