// Package power analyzes cycling and air-bike power output: watts per
// kilogram, FTP estimation and reconciliation, and threshold-table leveling.
package power

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"example.com/insights/internal/domain"
)

// WattsPerKg normalizes power by body mass, rounded to two decimals. A zero
// or negative weight yields 0 rather than an error.
func WattsPerKg(watts, weightKg float64) float64 {
	if weightKg <= 0 {
		return 0
	}
	return math.Round(watts/weightKg*100) / 100
}

// EstimateFTP derives functional threshold power from best 20-minute power
// using the conventional 95% rule.
func EstimateFTP(twentyMinWatts float64) int {
	return int(math.Round(0.95 * twentyMinWatts))
}

// DurationClass selects a column in a leveling table.
type DurationClass string

// Cycling table columns (W/kg).
const (
	ClassFiveSec DurationClass = "5s"
	ClassOneMin  DurationClass = "1m"
	ClassFiveMin DurationClass = "5m"
	ClassFTP     DurationClass = "ftp"
)

// Air-bike table columns (average watts).
const (
	ErgOneMin    DurationClass = "1m"
	ErgTenMin    DurationClass = "10m"
	ErgTwentyMin DurationClass = "20m"
)

// cyclingLevel is one rank row of the W/kg leveling table.
type cyclingLevel struct {
	Name    string
	FiveSec float64
	OneMin  float64
	FiveMin float64
	FTP     float64
}

// UntrainedLevel is the sentinel returned when no cycling threshold is met.
const UntrainedLevel = "Untrained"

// Rows are scanned top-down; the first threshold met wins, so order is rank
// descending and must stay sorted.
var cyclingLevelsMale = []cyclingLevel{
	{"World Class", 23.1, 11.5, 7.6, 6.3},
	{"Exceptional", 21.4, 10.6, 7.0, 5.7},
	{"Excellent", 19.4, 9.7, 6.3, 5.0},
	{"Very Good", 17.2, 8.6, 5.6, 4.3},
	{"Good", 15.6, 7.7, 4.9, 3.6},
	{"Moderate", 13.9, 6.8, 4.2, 2.9},
	{"Fair", 12.3, 5.9, 3.5, 2.2},
}

var cyclingLevelsFemale = []cyclingLevel{
	{"World Class", 19.4, 9.3, 6.6, 5.7},
	{"Exceptional", 18.0, 8.6, 6.1, 5.2},
	{"Excellent", 16.4, 7.9, 5.5, 4.6},
	{"Very Good", 14.8, 7.1, 4.9, 4.0},
	{"Good", 13.2, 6.4, 4.3, 3.4},
	{"Moderate", 11.6, 5.7, 3.7, 2.8},
	{"Fair", 10.0, 4.9, 3.1, 2.2},
}

func (l cyclingLevel) threshold(class DurationClass) float64 {
	switch class {
	case ClassFiveSec:
		return l.FiveSec
	case ClassOneMin:
		return l.OneMin
	case ClassFiveMin:
		return l.FiveMin
	default:
		return l.FTP
	}
}

// CyclingLevel returns the highest rank whose W/kg threshold the value meets
// for the given duration class, or the Untrained sentinel.
func CyclingLevel(gender domain.Gender, class DurationClass, wattsPerKg float64) string {
	levels := cyclingLevelsMale
	if gender == domain.GenderFemale {
		levels = cyclingLevelsFemale
	}
	for _, l := range levels {
		if wattsPerKg >= l.threshold(class) {
			return l.Name
		}
	}
	return UntrainedLevel
}

// ergLevel is one rank row of the air-bike table, thresholds in average
// watts held for the column duration.
type ergLevel struct {
	Name      string
	OneMin    float64
	TenMin    float64
	TwentyMin float64
}

// BeginnerLevel is the sentinel returned when no air-bike threshold is met.
const BeginnerLevel = "Beginner"

var ergLevelsMale = []ergLevel{
	{"Elite", 600, 350, 300},
	{"Advanced", 450, 280, 240},
	{"Intermediate", 350, 220, 190},
	{"Novice", 250, 160, 140},
}

var ergLevelsFemale = []ergLevel{
	{"Elite", 450, 260, 220},
	{"Advanced", 350, 210, 180},
	{"Intermediate", 260, 160, 140},
	{"Novice", 180, 120, 100},
}

func (l ergLevel) threshold(class DurationClass) float64 {
	switch class {
	case ErgTenMin:
		return l.TenMin
	case ErgTwentyMin:
		return l.TwentyMin
	default:
		return l.OneMin
	}
}

// ErgLevel returns the highest air-bike rank whose watt threshold the value
// meets for the given duration class, or the Beginner sentinel.
func ErgLevel(gender domain.Gender, class DurationClass, watts float64) string {
	levels := ergLevelsMale
	if gender == domain.GenderFemale {
		levels = ergLevelsFemale
	}
	for _, l := range levels {
		if watts >= l.threshold(class) {
			return l.Name
		}
	}
	return BeginnerLevel
}

// FTPSource tags where a reconciled FTP value came from.
type FTPSource string

const (
	FTPExplicit  FTPSource = "explicit"
	FTPEstimated FTPSource = "estimated"
)

// FTPResult is the outcome of scanning history for an FTP value. A zero
// Watts means nothing usable was found.
type FTPResult struct {
	Watts  int       `json:"watts"`
	Source FTPSource `json:"source,omitempty"`
}

// ftpOverrideMargin: an estimate only displaces an explicit test result when
// it is materially higher.
const ftpOverrideMargin = 5

// ftpPattern matches user-noted values like "FTP: 265" or "ftp 250".
var ftpPattern = regexp.MustCompile(`(?i)\bftp[:\s]+(\d+)`)

// platformKeywords identify indoor-cycling sessions logged under a platform
// name instead of the cycling type.
var platformKeywords = []string{"zwift", "trainerroad", "rouvy", "peloton", "wahoo"}

func titleHasPlatform(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range platformKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ExtractFTPFromHistory reconciles an FTP value from exercise history.
//
// Pass one scans free-text titles and notes for an explicit "FTP: <n>" and
// keeps the maximum. Pass two estimates from average watts of cycling-typed
// or platform-keyword sessions of at least 20 minutes. Explicit values are
// trusted unless an estimate beats them by more than the override margin.
// Entries flagged excludeFromStats never contribute.
func ExtractFTPFromHistory(entries []domain.ExerciseEntry) FTPResult {
	explicit := 0
	for _, e := range entries {
		if e.ExcludeFromStats {
			continue
		}
		for _, text := range [2]string{e.Title, e.Notes} {
			m := ftpPattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if v, err := strconv.Atoi(m[1]); err == nil && v > explicit {
				explicit = v
			}
		}
	}

	estimated := 0
	for _, e := range entries {
		if e.ExcludeFromStats {
			continue
		}
		if e.DurationMinutes < 20 || e.AverageWatts <= 0 {
			continue
		}
		if e.Type != domain.ActivityCycling && !titleHasPlatform(e.Title) {
			continue
		}
		if est := EstimateFTP(e.AverageWatts); est > estimated {
			estimated = est
		}
	}

	switch {
	case explicit > 0 && estimated > explicit+ftpOverrideMargin:
		return FTPResult{Watts: estimated, Source: FTPEstimated}
	case explicit > 0:
		return FTPResult{Watts: explicit, Source: FTPExplicit}
	case estimated > 0:
		return FTPResult{Watts: estimated, Source: FTPEstimated}
	default:
		return FTPResult{}
	}
}
