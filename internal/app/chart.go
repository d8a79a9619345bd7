package app

import (
	"math"

	"weightlog/internal/domain"
)

// WindowDays is the fixed width of the trailing chart window.
const WindowDays = 7

// ChartWindow is the series and axis bounds handed to a chart renderer.
// Values holds one point per day, oldest first; a nil point is absent and
// must not be drawn as zero.
type ChartWindow struct {
	Labels   []string   `json:"labels"`
	Values   []*float64 `json:"values"`
	YMin     float64    `json:"yMin"`
	YMax     float64    `json:"yMax"`
	TickStep float64    `json:"tickStep"`
}

// BuildChartWindow builds the trailing 7-day series ending at selected,
// forward-filling gaps with the last known value. Days before the first
// recorded value in the window stay absent.
//
// The axis deliberately spans three times the data range with headroom
// above the peak, so the plotted line sits in roughly the top third of the
// chart and small day-to-day changes stay legible. This is intentional, not
// a min-max fit.
func BuildChartWindow(journal *Journal, selected domain.Date) ChartWindow {
	w := ChartWindow{
		Labels: make([]string, 0, WindowDays),
		Values: make([]*float64, 0, WindowDays),
	}

	var last *float64
	dataMin, dataMax := math.Inf(1), math.Inf(-1)

	for i := WindowDays - 1; i >= 0; i-- {
		day := selected.Shift(-i)
		w.Labels = append(w.Labels, day.Label())

		if e, ok := journal.Find(day); ok {
			v := e.Weight
			last = &v
			if v < dataMin {
				dataMin = v
			}
			if v > dataMax {
				dataMax = v
			}
		}
		w.Values = append(w.Values, last)
	}

	if last == nil {
		dataMin, dataMax = 0, 1
	}

	rng := dataMax - dataMin
	if rng < 1 {
		rng = 1
	}
	w.YMax = dataMax + 0.2*rng
	w.YMin = w.YMax - 3*rng
	w.TickStep = math.Max(1, math.Round(rng/2))
	return w
}
