// Package snapshot loads a records export file into the in-memory
// collections the analyzers consume. This is the only place in the module
// that touches the filesystem; everything downstream is pure.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"example.com/insights/internal/domain"
)

// ErrUnknownFormat is returned for file extensions other than json/yaml.
var ErrUnknownFormat = errors.New("unknown snapshot format")

// Snapshot bundles every record collection a tracker export carries.
type Snapshot struct {
	Settings  *domain.AppSettings           `json:"settings,omitempty" yaml:"settings,omitempty"`
	Exercises []domain.ExerciseEntry        `json:"exercises,omitempty" yaml:"exercises,omitempty"`
	Workouts  []domain.StrengthWorkout      `json:"workouts,omitempty" yaml:"workouts,omitempty"`
	Meals     []domain.MealEntry            `json:"meals,omitempty" yaml:"meals,omitempty"`
	Weights   []domain.WeightEntry          `json:"weights,omitempty" yaml:"weights,omitempty"`
	Vitals    map[string]domain.DailyVitals `json:"vitals,omitempty" yaml:"vitals,omitempty"`
}

// Load reads and decodes a snapshot file, picking the codec from the file
// extension. Records missing an ID get one backfilled so downstream
// provenance is never empty.
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &snap); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	snap.backfillIDs()
	return &snap, nil
}

func (s *Snapshot) backfillIDs() {
	for i := range s.Exercises {
		if strings.TrimSpace(s.Exercises[i].ID) == "" {
			s.Exercises[i].ID = uuid.NewString()
		}
	}
	for i := range s.Workouts {
		if strings.TrimSpace(s.Workouts[i].ID) == "" {
			s.Workouts[i].ID = uuid.NewString()
		}
	}
	for i := range s.Meals {
		if strings.TrimSpace(s.Meals[i].ID) == "" {
			s.Meals[i].ID = uuid.NewString()
		}
	}
	for i := range s.Weights {
		if strings.TrimSpace(s.Weights[i].ID) == "" {
			s.Weights[i].ID = uuid.NewString()
		}
	}
}

// Nutrition returns the per-day calorie aggregator the calorie-goal streak
// consumes, summing meal calories by calendar day.
func (s *Snapshot) Nutrition() domain.NutritionFunc {
	byDay := make(map[string]float64, len(s.Meals))
	for _, m := range s.Meals {
		byDay[domain.DayOf(m.Date)] += m.Calories
	}
	return func(day string) domain.DailyNutrition {
		return domain.DailyNutrition{Calories: byDay[domain.DayOf(day)]}
	}
}
