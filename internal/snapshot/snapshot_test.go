package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/insights/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const yamlSnapshot = `
settings:
  height_cm: 180
  birth_year: 1990
  gender: male
  daily_calorie_goal: 2400
exercises:
  - id: e1
    date: "2024-05-01T06:30"
    type: cycling
    duration_minutes: 45
    average_watts: 210
  - date: "2024-05-02"
    type: strength
    duration_minutes: 30
workouts:
  - date: "2024-05-02"
    name: Conditioning
    exercises:
      - name: Assault Bike
        sets:
          - set_number: 1
            time: "1:00"
            calories: 20
meals:
  - date: "2024-05-01"
    name: Lunch
    calories: 700
  - date: "2024-05-01"
    name: Dinner
    calories: 900
weights:
  - date: "2024-05-01"
    weight_kg: 80.5
vitals:
  "2024-05-01":
    water: 2
    sleep: 7.5
`

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "export.yaml", yamlSnapshot)
	snap, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 180.0, snap.Settings.HeightCm)
	require.Equal(t, domain.GenderMale, snap.Settings.Gender)
	require.Len(t, snap.Exercises, 2)
	require.Equal(t, "e1", snap.Exercises[0].ID)
	require.Equal(t, domain.ActivityCycling, snap.Exercises[0].Type)
	require.Len(t, snap.Workouts, 1)
	require.Equal(t, 60.0, snap.Workouts[0].Exercises[0].Sets[0].Seconds())
	require.True(t, snap.Vitals["2024-05-01"].Active())
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "export.json", `{
		"settings": {"gender": "female"},
		"exercises": [{"id": "e1", "date": "2024-05-01", "type": "running", "duration_minutes": 30}],
		"weights": [{"id": "w1", "date": "2024-05-01", "weight_kg": 64}]
	}`)
	snap, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, domain.GenderFemale, snap.Settings.Gender)
	require.Len(t, snap.Exercises, 1)
	require.Equal(t, 64.0, snap.Weights[0].WeightKg)
}

func TestLoadBackfillsMissingIDs(t *testing.T) {
	path := writeFile(t, "export.yaml", yamlSnapshot)
	snap, err := Load(path)
	require.NoError(t, err)

	require.NotEmpty(t, snap.Exercises[1].ID)
	require.NotEqual(t, snap.Exercises[0].ID, snap.Exercises[1].ID)
	require.NotEmpty(t, snap.Workouts[0].ID)
	require.NotEmpty(t, snap.Meals[0].ID)
	require.NotEmpty(t, snap.Weights[0].ID)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeFile(t, "export.csv", "a,b,c")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNutritionSumsMealsByDay(t *testing.T) {
	path := writeFile(t, "export.yaml", yamlSnapshot)
	snap, err := Load(path)
	require.NoError(t, err)

	nutrition := snap.Nutrition()
	require.Equal(t, 1600.0, nutrition("2024-05-01").Calories)
	require.Equal(t, 0.0, nutrition("2024-05-09").Calories)
}
