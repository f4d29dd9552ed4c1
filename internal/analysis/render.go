package analysis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pricekit/closestpair"
	"github.com/katalvlaran/pricekit/series"
)

// WriteText prints r in the plain console layout.
func (r *Report) WriteText(w io.Writer) error {
	p := &printer{w: w}

	p.line("Stock Market Price Analyzer.")
	p.line("Prices at the end of each trading day: %s", joinValues(r.Values))
	p.line("")
	p.line("Prices in ascending order: %s", joinValues(r.Sorted))
	p.line("")
	p.line("Maximum subarray sum is: %s", num(r.MaxRange.Sum))
	p.line("Period with max profit is from day %d to day %d.", r.MaxRange.Start, r.MaxRange.End)
	if r.MaxGain != nil {
		p.line("Largest gain: buy on day %d, sell on day %d, gain %s.", r.MaxGain.Buy, r.MaxGain.Sell, num(r.MaxGain.Gain))
	}
	p.line("")
	p.line("Average: %s", num(r.Average))
	p.line("Anomalies (%s): %s", bandLabel(r.Threshold), joinAnomalies(r.Anomalies))
	p.line("")
	p.line("Sorted by X: %s", joinPoints(r.PointsByX))
	p.line("Sorted by Y: %s", joinPoints(r.PointsByY))
	p.line("")
	if r.ClosestPair != nil {
		cp := r.ClosestPair
		p.line("The smallest distance between points is: %s, between %s and %s",
			num(cp.Distance), point(cp.A), point(cp.B))
	} else {
		p.line("The smallest distance between points is undefined (fewer than two points).")
	}

	return p.err
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func point(pt closestpair.Point) string {
	return "(" + num(pt.X) + ", " + num(pt.Y) + ")"
}

func joinValues(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = num(v)
	}

	return strings.Join(parts, " ")
}

func joinPoints(pts []closestpair.Point) string {
	parts := make([]string, len(pts))
	for i, pt := range pts {
		parts[i] = point(pt)
	}

	return strings.Join(parts, " ")
}

func joinAnomalies(as []series.Anomaly) string {
	if len(as) == 0 {
		return "none"
	}
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = fmt.Sprintf("day %d = %s", a.Index, num(a.Value))
	}

	return strings.Join(parts, ", ")
}

func bandLabel(th series.Threshold) string {
	if th.Mode == series.Relative {
		return fmt.Sprintf("±%s%% of average", num(th.Band*100))
	}

	return fmt.Sprintf("±%s around average", num(th.Band))
}
