package series_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/pricekit/closestpair"
	"github.com/katalvlaran/pricekit/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demo = []float64{38, 27, 43, 3, 9, 82, 10}

// TestPoints numbers days from the given origin.
func TestPoints(t *testing.T) {
	got := series.Points([]float64{5, 7.5, 6}, 1)
	assert.Equal(t, []closestpair.Point{{X: 1, Y: 5}, {X: 2, Y: 7.5}, {X: 3, Y: 6}}, got)

	assert.Empty(t, series.Points(nil, 0))
	assert.Equal(t, 0.0, series.Points([]float64{1}, 0)[0].X)
}

// TestChanges covers differences and the short-series error.
func TestChanges(t *testing.T) {
	got, err := series.Changes(demo)
	require.NoError(t, err)
	assert.Equal(t, []float64{-11, 16, -40, 6, 73, -72}, got)

	_, err = series.Changes([]float64{1})
	assert.ErrorIs(t, err, series.ErrTooShort)
}

// TestAverage uses the demo series.
func TestAverage(t *testing.T) {
	got, err := series.Average(demo)
	require.NoError(t, err)
	assert.InDelta(t, 212.0/7, got, 1e-12)

	_, err = series.Average(nil)
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

// TestAnomalies_Modes compares absolute and relative bands.
func TestAnomalies_Modes(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		th        series.Threshold
		wantIndex []int
	}{
		{
			name:      "absolute ten points",
			values:    demo,
			th:        series.DefaultThreshold(),
			wantIndex: []int{2, 3, 4, 5, 6},
		},
		{
			name:      "relative thirty percent",
			values:    demo,
			th:        series.Threshold{Mode: series.Relative, Band: 0.3},
			wantIndex: []int{2, 3, 4, 5, 6},
		},
		{
			name:      "wide band finds nothing",
			values:    demo,
			th:        series.Threshold{Mode: series.Absolute, Band: 100},
			wantIndex: nil,
		},
		{
			name:      "band edge is not an anomaly",
			values:    []float64{0, 10, 20},
			th:        series.Threshold{Mode: series.Absolute, Band: 10},
			wantIndex: nil,
		},
		{
			name:      "relative band on negative average",
			values:    []float64{-100, -100, -100, -40},
			th:        series.Threshold{Mode: series.Relative, Band: 0.3},
			wantIndex: []int{3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := series.Anomalies(tt.values, tt.th)
			require.NoError(t, err)

			var idx []int
			for _, a := range got {
				idx = append(idx, a.Index)
				assert.Equal(t, tt.values[a.Index], a.Value)
			}
			assert.Equal(t, tt.wantIndex, idx)
		})
	}
}

// TestAnomalies_Deviation reports value minus average.
// Average is 3, so band 3 keeps [0, 6] and only the 9 falls outside.
func TestAnomalies_Deviation(t *testing.T) {
	got, err := series.Anomalies([]float64{1, 1, 1, 9}, series.Threshold{Mode: series.Absolute, Band: 3})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Index)
	assert.InDelta(t, 6.0, got[0].Deviation, 1e-12)
}

// TestAnomalies_Errors covers invalid thresholds and empty input.
func TestAnomalies_Errors(t *testing.T) {
	_, err := series.Anomalies(demo, series.Threshold{Mode: series.Absolute, Band: -1})
	assert.ErrorIs(t, err, series.ErrBadThreshold)

	_, err = series.Anomalies(demo, series.Threshold{Mode: series.Relative, Band: math.NaN()})
	assert.ErrorIs(t, err, series.ErrBadThreshold)

	_, err = series.Anomalies(demo, series.Threshold{Mode: 7, Band: 1})
	assert.ErrorIs(t, err, series.ErrBadThreshold)

	_, err = series.Anomalies(nil, series.DefaultThreshold())
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

// TestParseThresholdMode round-trips the mode names.
func TestParseThresholdMode(t *testing.T) {
	for _, m := range []series.ThresholdMode{series.Absolute, series.Relative} {
		got, err := series.ParseThresholdMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := series.ParseThresholdMode("  Relative ")
	require.NoError(t, err)
	assert.Equal(t, series.Relative, got)

	_, err = series.ParseThresholdMode("percent")
	assert.ErrorIs(t, err, series.ErrBadThreshold)
}

// TestThreshold_JSON encodes the mode by name.
func TestThreshold_JSON(t *testing.T) {
	data, err := json.Marshal(series.Threshold{Mode: series.Relative, Band: 0.3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"relative","band":0.3}`, string(data))

	var th series.Threshold
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"Absolute","band":10}`), &th))
	assert.Equal(t, series.DefaultThreshold(), th)

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"percent","band":1}`), &th))
	_, err = json.Marshal(series.Threshold{Mode: series.ThresholdMode(9)})
	assert.ErrorIs(t, err, series.ErrBadThreshold)
}
