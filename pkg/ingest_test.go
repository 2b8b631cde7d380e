package coincidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSinglesPicoseconds(t *testing.T) {
	cols := SinglesColumns{
		X:      []float64{1, -1},
		Y:      []float64{0, 0},
		Z:      []float64{0, 0},
		Energy: []float64{511, 511},
		Time:   []float64{1e12, 2e12},
	}
	events, scale, err := NormalizeSingles(cols, 18)
	require.NoError(t, err)
	assert.Equal(t, 1e12, scale)
	require.Len(t, events, 2)
	assert.InDelta(t, 1.0, events[0].Time, 1e-12)
	assert.InDelta(t, 2.0, events[1].Time, 1e-12)
}

func TestNormalizeSinglesNanoseconds(t *testing.T) {
	cols := SinglesColumns{
		X:      []float64{1},
		Y:      []float64{0},
		Z:      []float64{0},
		Energy: []float64{511},
		Time:   []float64{2e9},
	}
	events, scale, err := NormalizeSingles(cols, 18)
	require.NoError(t, err)
	assert.Equal(t, 1e9, scale)
	assert.InDelta(t, 2.0, events[0].Time, 1e-12)
}

func TestNormalizeSinglesSecondsPassthrough(t *testing.T) {
	cols := SinglesColumns{
		X:      []float64{0},
		Y:      []float64{1},
		Z:      []float64{2},
		Energy: []float64{511},
		Time:   []float64{1.5},
	}
	events, scale, err := NormalizeSingles(cols, 18)
	require.NoError(t, err)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 1.5, events[0].Time)
	assert.Equal(t, 2.0, events[0].Z)
}

func TestNormalizeSinglesDerivedFields(t *testing.T) {
	cols := SinglesColumns{
		X:      []float64{1},
		Y:      []float64{0},
		Z:      []float64{0},
		Energy: []float64{511},
		Time:   []float64{0},
	}
	events, _, err := NormalizeSingles(cols, 18)
	require.NoError(t, err)
	assert.Equal(t, 9, events[0].Sector)
	assert.Equal(t, 0.0, events[0].Angle)
}

func TestNormalizeSinglesEmpty(t *testing.T) {
	events, scale, err := NormalizeSingles(SinglesColumns{}, 18)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 1.0, scale)
}

func TestNormalizeSinglesLengthMismatch(t *testing.T) {
	cols := SinglesColumns{
		X:      []float64{1, 2},
		Y:      []float64{1, 2},
		Z:      []float64{1, 2},
		Energy: []float64{511, 511},
		Time:   []float64{0},
	}
	_, _, err := NormalizeSingles(cols, 18)
	require.Error(t, err)

	var mismatch *ErrColumnMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "GlobalTime", mismatch.Column)
	assert.Equal(t, 1, mismatch.Got)
	assert.Equal(t, 2, mismatch.Want)
}
