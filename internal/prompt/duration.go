package prompt

import (
	"math"
	"strconv"
)

// durationBand formats values below limit (in unit) with prec decimals.
type durationBand struct {
	divisor float64 // milliseconds per unit
	limit   float64
	prec    int
	suffix  string
}

var durationBands = []durationBand{
	{divisor: 1000, limit: 10, prec: 2, suffix: "s"},
	{divisor: 1000, limit: 60, prec: 1, suffix: "s"},
	{divisor: 60000, limit: 10, prec: 2, suffix: "m"},
	{divisor: 60000, limit: 100, prec: 1, suffix: "m"},
	{divisor: 60000, limit: math.Inf(1), prec: 0, suffix: "m"},
}

// FormatDuration renders elapsed milliseconds as "0.00s", "10.0s", "1.00m",
// "10.0m" or "100m" depending on magnitude. A value that would round up to
// a band's limit is shown in the next band, so 9999ms is "10.0s" rather
// than "10.00s".
func FormatDuration(millis float64) string {
	if millis < 0 || math.IsNaN(millis) {
		millis = 0
	}
	var text string
	for _, band := range durationBands {
		text = strconv.FormatFloat(millis/band.divisor, 'f', band.prec, 64) + band.suffix
		shown, err := strconv.ParseFloat(text[:len(text)-len(band.suffix)], 64)
		if err == nil && shown < band.limit {
			break
		}
	}
	return text
}
