package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesArithmetic(t *testing.T) {
	t.Parallel()

	lines, err := Lines(50_000, 70_000, 20, Arithmetic)
	require.NoError(t, err)
	require.Len(t, lines, 21)

	assert.Equal(t, 50_000.0, lines[0])
	assert.Equal(t, 70_000.0, lines[20])

	step := (70_000.0 - 50_000.0) / 20
	for i := 1; i < len(lines); i++ {
		assert.Greater(t, lines[i], lines[i-1])
		assert.InDelta(t, step, lines[i]-lines[i-1], 1e-9)
	}
}

func TestLinesGeometric(t *testing.T) {
	t.Parallel()

	lines, err := Lines(50_000, 70_000, 20, Geometric)
	require.NoError(t, err)
	require.Len(t, lines, 21)

	assert.Equal(t, 50_000.0, lines[0])
	assert.Equal(t, 70_000.0, lines[20])

	// Constant ratio between consecutive lines.
	ratio := lines[1] / lines[0]
	for i := 1; i < len(lines); i++ {
		assert.Greater(t, lines[i], lines[i-1])
		assert.InDelta(t, ratio, lines[i]/lines[i-1], 1e-9)
	}
}

func TestLinesTopPinnedToUpper(t *testing.T) {
	t.Parallel()

	// 1/3 steps accumulate float drift; the top line must still be exact.
	lines, err := Lines(1, 2, 3, Arithmetic)
	require.NoError(t, err)
	assert.Equal(t, 2.0, lines[3])

	lines, err = Lines(1, 2, 7, Geometric)
	require.NoError(t, err)
	assert.Equal(t, 2.0, lines[7])
}

func TestLinesValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		lower float64
		upper float64
		num   int
		mode  Mode
		param string
	}{
		{"zero lower", 0, 70_000, 20, Arithmetic, "lower_price"},
		{"negative lower", -1, 70_000, 20, Arithmetic, "lower_price"},
		{"upper below lower", 70_000, 50_000, 20, Arithmetic, "upper_price"},
		{"upper equals lower", 50_000, 50_000, 20, Arithmetic, "upper_price"},
		{"one grid", 50_000, 70_000, 1, Arithmetic, "num_grids"},
		{"unknown mode", 50_000, 70_000, 20, Mode("fibonacci"), "grid_mode"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Lines(tc.lower, tc.upper, tc.num, tc.mode)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.param, verr.Param)
		})
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	m, err := ParseMode("arithmetic")
	require.NoError(t, err)
	assert.Equal(t, Arithmetic, m)

	m, err = ParseMode("geometric")
	require.NoError(t, err)
	assert.Equal(t, Geometric, m)

	_, err = ParseMode("linear")
	require.Error(t, err)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
