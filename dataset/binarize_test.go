package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"avbdata/tensor"
)

func TestBinarizeThreshold(t *testing.T) {
	in := tensor.NewWithData([]float64{0, 0.3, 0.5, 0.51, 1})

	out, err := Binarize(in, ModeThreshold, DefaultThreshold, nil)
	require.NoError(t, err)

	// Strictly-greater comparison: 0.5 itself maps to 0.
	assert.Equal(t, []float64{0, 0, 0, 1, 1}, out.Data)
}

func TestBinarizeThresholdIdempotent(t *testing.T) {
	in := tensor.NewWithData([]float64{0, 0.2, 0.4, 0.6, 0.8, 1})

	once, err := Binarize(in, ModeThreshold, DefaultThreshold, nil)
	require.NoError(t, err)
	twice, err := Binarize(once, ModeThreshold, DefaultThreshold, nil)
	require.NoError(t, err)

	assert.Equal(t, once.Data, twice.Data)
}

func TestBinarizeSamplingDeterministic(t *testing.T) {
	in := tensor.NewWithData([]float64{0.1, 0.5, 0.9, 0.3, 0.7, 0.2})

	a, err := Binarize(in, ModeSampling, DefaultThreshold, rand.NewSource(7))
	require.NoError(t, err)
	b, err := Binarize(in, ModeSampling, DefaultThreshold, rand.NewSource(7))
	require.NoError(t, err)

	assert.Equal(t, a.Data, b.Data)
	for _, v := range a.Data {
		assert.Contains(t, []float64{0, 1}, v)
	}
}

func TestBinarizeSamplingDegenerateProbabilities(t *testing.T) {
	in := tensor.NewWithData([]float64{0, 0, 1, 1})

	out, err := Binarize(in, ModeSampling, DefaultThreshold, rand.NewSource(1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, out.Data)
}

func TestBinarizeSamplingNeedsSource(t *testing.T) {
	_, err := Binarize(tensor.New(1), ModeSampling, DefaultThreshold, nil)
	require.Error(t, err)
}

func TestBinarizeUnknownMode(t *testing.T) {
	_, err := Binarize(tensor.New(1), BinarizeMode("ceil"), DefaultThreshold, nil)
	require.Error(t, err)
}

func TestOneHotRoundTrip(t *testing.T) {
	labels := tensor.NewWithData([]float64{2, 0, 1, 2, 1})

	oh, err := OneHot(labels)
	require.NoError(t, err)

	require.Equal(t, []int{5, 3}, oh.Shape)
	for i := 0; i < oh.Rows(); i++ {
		row := oh.Row(i)
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.Equal(t, 1.0, sum, "row %d should sum to 1", i)
		assert.Equal(t, int(labels.Data[i]), tensor.ArgMax(row), "row %d argmax", i)
	}
}

func TestOneHotSparseLabels(t *testing.T) {
	// Distinct labels {2,5,9} remap to indices {0,1,2}.
	labels := tensor.NewWithData([]float64{5, 2, 9, 5})

	oh, err := OneHot(labels)
	require.NoError(t, err)

	require.Equal(t, []int{4, 3}, oh.Shape)
	assert.Equal(t, 1, tensor.ArgMax(oh.Row(0)))
	assert.Equal(t, 0, tensor.ArgMax(oh.Row(1)))
	assert.Equal(t, 2, tensor.ArgMax(oh.Row(2)))
	assert.Equal(t, 1, tensor.ArgMax(oh.Row(3)))
}

func TestOneHotRejects2D(t *testing.T) {
	_, err := OneHot(tensor.New(2, 2))
	require.Error(t, err)
}
