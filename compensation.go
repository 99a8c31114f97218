package mppcps

import (
	"errors"

	"github.com/mdouchement/mppcps/c11204"
)

var ErrInvalidRange = errors.New("invalid temperature range")

// CompensationCurve samples the compensated output voltage from `from` to `to` °C, both included.
func CompensationCurve(tc c11204.TemperatureCorrection, from, to, step float64) ([]Point, error) {
	if from >= to || step <= 0 {
		return nil, ErrInvalidRange
	}

	n := int((to-from)/step) + 1
	points := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		t := from + float64(i)*step
		points = append(points, Point{Temperature: t, Voltage: tc.OutputVoltage(t)})
	}

	if last := points[len(points)-1].Temperature; last < to {
		points = append(points, Point{Temperature: to, Voltage: tc.OutputVoltage(to)})
	}

	return points, nil
}
