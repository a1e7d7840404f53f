package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, dataset.Mean([]float64{1, 2, 3, 4}), 1e-9)
	assert.Equal(t, 0.0, dataset.Mean(nil))
}

func TestStdDev(t *testing.T) {
	sd, ok := dataset.StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.True(t, ok)
	assert.InDelta(t, 2.138, sd, 0.001)

	_, ok = dataset.StdDev([]float64{42})
	assert.False(t, ok, "a single value has no sample deviation")
}

func TestQuantile(t *testing.T) {
	xs := []float64{4, 1, 3, 2} // unsorted on purpose

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, dataset.Quantile(xs, tt.q), 1e-9, "q=%v", tt.q)
	}

	assert.Equal(t, 0.0, dataset.Quantile(nil, 0.5))
	assert.Equal(t, 7.0, dataset.Quantile([]float64{7}, 0.5))
}
