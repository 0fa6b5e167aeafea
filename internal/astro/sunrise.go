// Package astro derives solar sunrise/sunset step indices from a real
// latitude, longitude, and calendar date, as an alternative to hand-picking
// sunrise_idx/sunset_idx in a scenario config.
package astro

import (
	"fmt"
	"time"

	"github.com/sixdouglas/suncalc"
)

// SunriseSunsetIndices returns the indices (0..stepsPerDay) of the
// timesteps that contain astronomical sunrise and sunset at (lat, lon) on
// date, for a day divided into stepsPerDay equal steps.
func SunriseSunsetIndices(date time.Time, lat, lon float64, stepsPerDay int) (sunriseIdx, sunsetIdx int, err error) {
	if stepsPerDay <= 0 {
		return 0, 0, fmt.Errorf("astro: steps_per_day must be > 0, got %d", stepsPerDay)
	}

	times := suncalc.GetTimes(date, lat, lon)
	sunrise, ok := times["sunrise"]
	if !ok {
		return 0, 0, fmt.Errorf("astro: suncalc did not return a sunrise time for lat=%f lon=%f", lat, lon)
	}
	sunset, ok := times["sunset"]
	if !ok {
		return 0, 0, fmt.Errorf("astro: suncalc did not return a sunset time for lat=%f lon=%f", lat, lon)
	}

	stepHours := 24.0 / float64(stepsPerDay)
	sunriseIdx = stepIndexOf(sunrise.Value, stepHours, stepsPerDay)
	sunsetIdx = stepIndexOf(sunset.Value, stepHours, stepsPerDay)
	if sunsetIdx <= sunriseIdx {
		sunsetIdx = sunriseIdx + 1
	}
	return sunriseIdx, sunsetIdx, nil
}

func stepIndexOf(t time.Time, stepHours float64, stepsPerDay int) int {
	hourOfDay := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	idx := int(hourOfDay / stepHours)
	if idx < 0 {
		idx = 0
	}
	if idx > stepsPerDay {
		idx = stepsPerDay
	}
	return idx
}
