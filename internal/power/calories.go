package power

const (
	kcalPerJoule    = 1.0 / 4184
	grossEfficiency = 0.22

	// linearKcalPerWattMinute is the simplified factor the dashboards have
	// always used. It disagrees with the efficiency-derived conversion below
	// by a few percent; the discrepancy is unresolved on the product side,
	// so the linear form stays binding.
	linearKcalPerWattMinute = 0.06
)

// CaloriesPerMinute converts an average power output to kcal burned per
// minute using the simplified linear model.
func CaloriesPerMinute(watts float64) float64 {
	if watts <= 0 {
		return 0
	}
	return watts * linearKcalPerWattMinute
}

// caloriesPerMinutePhysical is the efficiency-derived conversion. Kept for
// comparison; see linearKcalPerWattMinute.
func caloriesPerMinutePhysical(watts float64) float64 {
	return watts * 60 * kcalPerJoule / grossEfficiency
}

// WattsFromCalorieRate inverts the linear model, recovering average watts
// from a kcal/min rate.
func WattsFromCalorieRate(kcalPerMinute float64) float64 {
	if kcalPerMinute <= 0 {
		return 0
	}
	return kcalPerMinute / linearKcalPerWattMinute
}
