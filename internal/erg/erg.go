// Package erg scans workout history for air-bike personal records against a
// fixed catalog of named intervals.
//
// Two record sources feed the scan and carry different detail. Cardio
// entries are whole-session summaries (duration and total calories, no
// splits), so they can only answer time-based intervals. Strength sets are
// structured and may carry time, distance and calories, so they answer both
// interval kinds. The cardio pass runs before the strength pass and all
// comparisons are strict, so ties resolve to the first candidate examined
// and output is deterministic for identical input.
package erg

import (
	"fmt"
	"math"
	"strings"

	"example.com/insights/internal/domain"
	"example.com/insights/internal/power"
)

// IntervalKind discriminates time and distance intervals.
type IntervalKind string

const (
	KindTime     IntervalKind = "time"
	KindDistance IntervalKind = "distance"
)

// Interval is one catalog entry: a named target duration or distance.
type Interval struct {
	Key           string
	Kind          IntervalKind
	TargetSeconds float64
	TargetMeters  float64
}

// Catalog is the fixed set of intervals personal records are kept for. It is
// configuration, not user data.
var Catalog = []Interval{
	{Key: "10s", Kind: KindTime, TargetSeconds: 10},
	{Key: "30s", Kind: KindTime, TargetSeconds: 30},
	{Key: "1m", Kind: KindTime, TargetSeconds: 60},
	{Key: "90s", Kind: KindTime, TargetSeconds: 90},
	{Key: "10m", Kind: KindTime, TargetSeconds: 600},
	{Key: "20m", Kind: KindTime, TargetSeconds: 1200},
	{Key: "500m", Kind: KindDistance, TargetMeters: 500},
	{Key: "1km", Kind: KindDistance, TargetMeters: 1000},
	{Key: "2km", Kind: KindDistance, TargetMeters: 2000},
	{Key: "3km", Kind: KindDistance, TargetMeters: 3000},
}

// SourceType tags which record source produced a personal record.
type SourceType string

const (
	SourceCardio   SourceType = "cardio"
	SourceStrength SourceType = "strength"
)

// Record is the best effort found for one interval, with provenance.
type Record struct {
	Interval    string     `json:"interval"`
	SourceType  SourceType `json:"source_type"`
	SourceID    string     `json:"source_id"`
	Description string     `json:"description"`
	Seconds     float64    `json:"seconds"`
	Meters      float64    `json:"meters,omitempty"`
	Calories    float64    `json:"calories,omitempty"`
	Level       string     `json:"level,omitempty"`
	IsEstimate  bool       `json:"is_estimate,omitempty"`
}

// Matching tolerances. Whole-session durations are user-rounded, so they get
// the looser bound; structured sets are machine-timed.
const (
	sessionToleranceFloor = 5.0
	setToleranceFloor     = 2.0
	tolerancePercent      = 0.05
	distanceTolerance     = 10.0
)

// equipmentKeywords identify the air bike in user-authored titles, notes and
// exercise names. Substring match, case-insensitive.
var equipmentKeywords = []string{"assault bike", "assaultbike", "assault", "air bike", "airbike", "airdyne", "echo bike"}

func matchesEquipment(texts ...string) bool {
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, kw := range equipmentKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

func withinTolerance(seconds, target, floor float64) bool {
	tol := math.Max(floor, tolerancePercent*target)
	return math.Abs(seconds-target) <= tol
}

// ergClass maps an interval to the leveling-table column closest to its
// target duration.
func ergClass(targetSeconds float64) power.DurationClass {
	switch {
	case targetSeconds >= 1200:
		return power.ErgTwentyMin
	case targetSeconds >= 600:
		return power.ErgTenMin
	default:
		return power.ErgOneMin
	}
}

// levelFor grades a time-based effort by converting its calorie rate back to
// average watts and looking that up in the air-bike table.
func levelFor(gender domain.Gender, interval Interval, seconds, calories float64) string {
	if seconds <= 0 || calories <= 0 {
		return power.BeginnerLevel
	}
	watts := power.WattsFromCalorieRate(calories / (seconds / 60))
	return power.ErgLevel(gender, ergClass(interval.TargetSeconds), watts)
}

func clock(seconds float64) string {
	total := int(math.Round(seconds))
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ScanRecords searches both sources for the best effort per catalog interval.
// The returned map always contains every catalog key; intervals with no
// qualifying effort map to nil, which callers must treat as "no record".
func ScanRecords(entries []domain.ExerciseEntry, workouts []domain.StrengthWorkout, gender domain.Gender) map[string]*Record {
	best := make(map[string]*Record, len(Catalog))
	for _, interval := range Catalog {
		best[interval.Key] = nil
	}

	scanSessions(best, entries, gender)
	scanSets(best, workouts, gender)
	return best
}

// scanSessions tests whole-session cardio summaries against time intervals,
// ranking by total calories.
func scanSessions(best map[string]*Record, entries []domain.ExerciseEntry, gender domain.Gender) {
	for _, e := range entries {
		if e.ExcludeFromStats || e.DurationMinutes <= 0 {
			continue
		}
		if !matchesEquipment(e.Title, e.Notes) {
			continue
		}
		seconds := e.DurationMinutes * 60
		for _, interval := range Catalog {
			if interval.Kind != KindTime {
				continue
			}
			if !withinTolerance(seconds, interval.TargetSeconds, sessionToleranceFloor) {
				continue
			}
			current := best[interval.Key]
			if current != nil && e.CaloriesBurned <= current.Calories {
				continue
			}
			title := e.Title
			if title == "" {
				title = "Air bike session"
			}
			best[interval.Key] = &Record{
				Interval:    interval.Key,
				SourceType:  SourceCardio,
				SourceID:    e.ID,
				Description: fmt.Sprintf("%s - %s @ %.0f kcal", title, clock(seconds), e.CaloriesBurned),
				Seconds:     seconds,
				Calories:    e.CaloriesBurned,
				Level:       levelFor(gender, interval, seconds, e.CaloriesBurned),
			}
		}
	}
}

// scanSets tests structured strength sets against both interval kinds. Time
// efforts rank by set calories; sets without calories cannot be ranked and
// are skipped. Distance efforts rank by elapsed time ascending and are
// flagged as estimates when the set carries no calorie reading.
func scanSets(best map[string]*Record, workouts []domain.StrengthWorkout, gender domain.Gender) {
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if !matchesEquipment(ex.Name) {
				continue
			}
			for _, set := range ex.Sets {
				seconds := set.Seconds()
				if seconds <= 0 {
					continue
				}
				meters := set.Meters()
				for _, interval := range Catalog {
					switch interval.Kind {
					case KindTime:
						matchTimeSet(best, interval, w, set, seconds, gender)
					case KindDistance:
						matchDistanceSet(best, interval, w, set, seconds, meters)
					}
				}
			}
		}
	}
}

func matchTimeSet(best map[string]*Record, interval Interval, w domain.StrengthWorkout, set domain.StrengthSet, seconds float64, gender domain.Gender) {
	if set.Calories <= 0 {
		return
	}
	if !withinTolerance(seconds, interval.TargetSeconds, setToleranceFloor) {
		return
	}
	current := best[interval.Key]
	if current != nil && set.Calories <= current.Calories {
		return
	}
	best[interval.Key] = &Record{
		Interval:    interval.Key,
		SourceType:  SourceStrength,
		SourceID:    w.ID,
		Description: fmt.Sprintf("%s (Set %d) - %s @ %.0f kcal", w.Name, set.SetNumber, clock(seconds), set.Calories),
		Seconds:     seconds,
		Calories:    set.Calories,
		Level:       levelFor(gender, interval, seconds, set.Calories),
	}
}

func matchDistanceSet(best map[string]*Record, interval Interval, w domain.StrengthWorkout, set domain.StrengthSet, seconds, meters float64) {
	if meters <= 0 || math.Abs(meters-interval.TargetMeters) >= distanceTolerance {
		return
	}
	current := best[interval.Key]
	if current != nil && seconds >= current.Seconds {
		return
	}
	best[interval.Key] = &Record{
		Interval:    interval.Key,
		SourceType:  SourceStrength,
		SourceID:    w.ID,
		Description: fmt.Sprintf("%s (Set %d) - %.0fm @ %s", w.Name, set.SetNumber, meters, clock(seconds)),
		Seconds:     seconds,
		Meters:      meters,
		Calories:    set.Calories,
		IsEstimate:  set.Calories <= 0,
	}
}
