// Package report composes every analyzer into the summary a dashboard or
// handler would serve.
package report

import (
	"sort"
	"time"

	"example.com/insights/internal/domain"
	"example.com/insights/internal/energy"
	"example.com/insights/internal/erg"
	"example.com/insights/internal/power"
	"example.com/insights/internal/series"
	"example.com/insights/internal/snapshot"
	"example.com/insights/internal/streak"
)

// weightWindow smooths daily weigh-ins over a week.
const weightWindow = 7

// Streaks groups the four streak counters.
type Streaks struct {
	General     int `json:"general"`
	Training    int `json:"training"`
	Strength    int `json:"strength"`
	Cardio      int `json:"cardio"`
	WeeklyTrain int `json:"weekly_training"`
	CalorieGoal int `json:"calorie_goal"`
}

// Summary is the full analytics payload for one snapshot.
type Summary struct {
	AnchorDay       string                 `json:"anchor_day"`
	Streaks         Streaks                `json:"streaks"`
	BMR             int                    `json:"bmr"`
	LatestWeightKg  float64                `json:"latest_weight_kg,omitempty"`
	SmoothedWeights []float64              `json:"smoothed_weights,omitempty"`
	WeightTrend     series.Trend           `json:"weight_trend"`
	FTP             power.FTPResult        `json:"ftp"`
	WattsPerKg      float64                `json:"watts_per_kg,omitempty"`
	CyclingLevel    string                 `json:"cycling_level,omitempty"`
	IntervalRecords map[string]*erg.Record `json:"interval_records"`
}

// Build runs every analyzer over the snapshot. Streaks anchor on the given
// day; now supplies the year for age derivation. Build never mutates the
// snapshot.
func Build(snap *snapshot.Snapshot, anchor, now time.Time) Summary {
	gender := domain.GenderOther
	if snap.Settings != nil && snap.Settings.Gender != "" {
		gender = snap.Settings.Gender
	}

	weights := sortedWeights(snap.Weights)
	latest := 0.0
	if len(weights) > 0 {
		latest = weights[len(weights)-1]
	}
	smoothed := series.RollingAverage(weights, weightWindow)

	summary := Summary{
		AnchorDay: domain.FormatDay(anchor),
		Streaks: Streaks{
			General:     streak.General(snap.Meals, snap.Exercises, snap.Weights, snap.Vitals, anchor),
			Training:    streak.Training(snap.Exercises, streak.FilterAny, anchor),
			Strength:    streak.Training(snap.Exercises, streak.FilterStrength, anchor),
			Cardio:      streak.Training(snap.Exercises, streak.FilterRunning, anchor),
			WeeklyTrain: streak.WeeklyTraining(snap.Exercises, anchor),
			CalorieGoal: streak.CalorieGoal(snap.Nutrition(), snap.Settings, anchor),
		},
		BMR:             energy.CalculateBMR(latest, snap.Settings, now),
		LatestWeightKg:  latest,
		SmoothedWeights: smoothed,
		WeightTrend:     series.Classify(smoothed, series.DefaultTrendThreshold),
		FTP:             power.ExtractFTPFromHistory(snap.Exercises),
		IntervalRecords: erg.ScanRecords(snap.Exercises, snap.Workouts, gender),
	}

	if summary.FTP.Watts > 0 && latest > 0 {
		summary.WattsPerKg = power.WattsPerKg(float64(summary.FTP.Watts), latest)
		summary.CyclingLevel = power.CyclingLevel(gender, power.ClassFTP, summary.WattsPerKg)
	}
	return summary
}

// sortedWeights orders weigh-ins by day; ISO day strings sort
// lexicographically.
func sortedWeights(entries []domain.WeightEntry) []float64 {
	ordered := make([]domain.WeightEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return domain.DayOf(ordered[i].Date) < domain.DayOf(ordered[j].Date)
	})
	values := make([]float64, len(ordered))
	for i, w := range ordered {
		values[i] = w.WeightKg
	}
	return values
}
