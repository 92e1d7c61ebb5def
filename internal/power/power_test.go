package power

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/insights/internal/domain"
)

func TestWattsPerKg(t *testing.T) {
	require.Equal(t, 3.13, WattsPerKg(250, 80))
	require.Equal(t, 0.0, WattsPerKg(250, 0))
	require.Equal(t, 0.0, WattsPerKg(250, -70))
	require.Equal(t, 4.0, WattsPerKg(300, 75))
}

func TestEstimateFTP(t *testing.T) {
	require.Equal(t, 285, EstimateFTP(300))
	require.Equal(t, 238, EstimateFTP(250)) // 237.5 rounds up
	require.Equal(t, 0, EstimateFTP(0))
}

func TestCyclingLevelFirstMatchWins(t *testing.T) {
	require.Equal(t, "World Class", CyclingLevel(domain.GenderMale, ClassFTP, 6.5))
	require.Equal(t, "Good", CyclingLevel(domain.GenderMale, ClassFTP, 3.6))
	require.Equal(t, "Fair", CyclingLevel(domain.GenderMale, ClassFTP, 2.5))
	require.Equal(t, UntrainedLevel, CyclingLevel(domain.GenderMale, ClassFTP, 1.0))
}

func TestCyclingLevelGenderTables(t *testing.T) {
	// 4.0 W/kg FTP: Good for men, Very Good for women.
	require.Equal(t, "Good", CyclingLevel(domain.GenderMale, ClassFTP, 4.0))
	require.Equal(t, "Very Good", CyclingLevel(domain.GenderFemale, ClassFTP, 4.0))
	// Unspecified gender uses the male table.
	require.Equal(t, "Good", CyclingLevel(domain.GenderOther, ClassFTP, 4.0))
}

func TestCyclingLevelMonotonic(t *testing.T) {
	classes := []DurationClass{ClassFiveSec, ClassOneMin, ClassFiveMin, ClassFTP}
	for _, class := range classes {
		rank := func(name string) int {
			for i, l := range cyclingLevelsMale {
				if l.Name == name {
					return len(cyclingLevelsMale) - i
				}
			}
			return 0 // sentinel ranks lowest
		}
		prev := -1
		for v := 0.0; v <= 25.0; v += 0.1 {
			r := rank(CyclingLevel(domain.GenderMale, class, v))
			require.GreaterOrEqual(t, r, prev, "class %s value %.1f", class, v)
			prev = r
		}
	}
}

func TestErgLevel(t *testing.T) {
	require.Equal(t, "Elite", ErgLevel(domain.GenderMale, ErgOneMin, 620))
	require.Equal(t, "Intermediate", ErgLevel(domain.GenderMale, ErgTwentyMin, 200))
	require.Equal(t, BeginnerLevel, ErgLevel(domain.GenderMale, ErgTenMin, 100))
	require.Equal(t, "Advanced", ErgLevel(domain.GenderFemale, ErgTenMin, 215))
}

func TestExtractFTPExplicit(t *testing.T) {
	entries := []domain.ExerciseEntry{
		{ID: "a", Type: domain.ActivityCycling, Title: "Ramp test. FTP: 265", DurationMinutes: 60},
		{ID: "b", Type: domain.ActivityCycling, Notes: "new ftp 250 after block", DurationMinutes: 45},
	}
	got := ExtractFTPFromHistory(entries)
	require.Equal(t, FTPResult{Watts: 265, Source: FTPExplicit}, got)
}

func TestExtractFTPEstimatedFromWatts(t *testing.T) {
	entries := []domain.ExerciseEntry{
		{ID: "a", Type: domain.ActivityCycling, DurationMinutes: 25, AverageWatts: 280},
		// Too short to count as a threshold effort.
		{ID: "b", Type: domain.ActivityCycling, DurationMinutes: 10, AverageWatts: 400},
		// Platform keyword qualifies a non-cycling type.
		{ID: "c", Type: domain.ActivityOther, Title: "Zwift sweet spot", DurationMinutes: 40, AverageWatts: 240},
	}
	got := ExtractFTPFromHistory(entries)
	require.Equal(t, FTPResult{Watts: 266, Source: FTPEstimated}, got)
}

func TestExtractFTPExplicitWinsWithinMargin(t *testing.T) {
	entries := []domain.ExerciseEntry{
		{ID: "a", Title: "FTP: 260"},
		// Estimate 0.95*278 = 264 (rounded): within 5 W of explicit.
		{ID: "b", Type: domain.ActivityCycling, DurationMinutes: 30, AverageWatts: 278},
	}
	require.Equal(t, FTPResult{Watts: 260, Source: FTPExplicit}, ExtractFTPFromHistory(entries))

	// Estimate 0.95*290 = 276: beats explicit by more than the margin.
	entries[1].AverageWatts = 290
	require.Equal(t, FTPResult{Watts: 276, Source: FTPEstimated}, ExtractFTPFromHistory(entries))
}

func TestExtractFTPSkipsExcluded(t *testing.T) {
	entries := []domain.ExerciseEntry{
		{ID: "a", Title: "FTP: 300", ExcludeFromStats: true},
		{ID: "b", Type: domain.ActivityCycling, DurationMinutes: 30, AverageWatts: 280, ExcludeFromStats: true},
	}
	require.Equal(t, FTPResult{}, ExtractFTPFromHistory(entries))
}

func TestExtractFTPNoCandidates(t *testing.T) {
	entries := []domain.ExerciseEntry{
		{ID: "a", Type: domain.ActivityRunning, Title: "easy jog", DurationMinutes: 40},
	}
	require.Equal(t, FTPResult{}, ExtractFTPFromHistory(entries))
}

func TestCalorieRateRoundTrip(t *testing.T) {
	require.InDelta(t, 18.0, CaloriesPerMinute(300), 1e-9)
	require.InDelta(t, 300.0, WattsFromCalorieRate(CaloriesPerMinute(300)), 1e-9)
	require.Equal(t, 0.0, CaloriesPerMinute(0))
	require.Equal(t, 0.0, WattsFromCalorieRate(-1))
}

func TestLinearAndPhysicalModelsDisagree(t *testing.T) {
	// The two conversions are known to differ; the linear one is binding.
	require.NotEqual(t, CaloriesPerMinute(300), caloriesPerMinutePhysical(300))
}
