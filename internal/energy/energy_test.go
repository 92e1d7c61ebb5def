package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/insights/internal/domain"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestCalculateBMRMale(t *testing.T) {
	settings := &domain.AppSettings{
		HeightCm:  180,
		BirthYear: testNow.Year() - 30,
		Gender:    domain.GenderMale,
	}
	// 10*80 + 6.25*180 - 5*30 + 5
	require.Equal(t, 1780, CalculateBMR(80, settings, testNow))
}

func TestCalculateBMRGenderOffsets(t *testing.T) {
	base := &domain.AppSettings{HeightCm: 180, BirthYear: testNow.Year() - 30}

	female := *base
	female.Gender = domain.GenderFemale
	require.Equal(t, 1780-5-161, CalculateBMR(80, &female, testNow))

	other := *base
	other.Gender = domain.GenderOther
	require.Equal(t, 1780-5-78, CalculateBMR(80, &other, testNow))

	// Unrecognised gender behaves like "other".
	odd := *base
	odd.Gender = "unspecified"
	require.Equal(t, 1780-5-78, CalculateBMR(80, &odd, testNow))
}

func TestCalculateBMRDefaults(t *testing.T) {
	require.Equal(t, DefaultBMR, CalculateBMR(80, nil, testNow))
	require.Equal(t, DefaultBMR, CalculateBMR(0, &domain.AppSettings{}, testNow))

	// Empty settings fall back to 175 cm / age 30 / other offset:
	// 800 + 1093.75 - 150 - 78 = 1665.75.
	require.Equal(t, 1666, CalculateBMR(80, &domain.AppSettings{}, testNow))
}

func TestCalculateExerciseCalories(t *testing.T) {
	// MET 8 * 80 kg * 1 h.
	require.Equal(t, 640, CalculateExerciseCalories(domain.ActivityRunning, 60, IntensityModerate, 80))
	// Half hour halves it.
	require.Equal(t, 320, CalculateExerciseCalories(domain.ActivityRunning, 30, IntensityModerate, 80))
	// Zero inputs yield zero, never an error.
	require.Equal(t, 0, CalculateExerciseCalories(domain.ActivityRunning, 0, IntensityModerate, 80))
	require.Equal(t, 0, CalculateExerciseCalories(domain.ActivityRunning, 60, IntensityModerate, 0))
}

func TestMETFallbacks(t *testing.T) {
	require.Equal(t, 8.0, MET(domain.ActivityRunning, IntensityModerate))
	// Unknown type uses the "other" row.
	require.Equal(t, MET(domain.ActivityOther, IntensityHigh), MET("rowing", IntensityHigh))
	// Unknown intensity uses moderate.
	require.Equal(t, MET(domain.ActivityCycling, IntensityModerate), MET(domain.ActivityCycling, "extreme"))
}
