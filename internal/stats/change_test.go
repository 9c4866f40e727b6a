package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	for _, x := range []float64{0, 1, -3, 62.5, 1e6} {
		assert.Nil(t, PercentChange(x, 0), "previous 0 must not be computable")
	}

	for _, x := range []float64{1, -3, 62.5, 1e6} {
		c := PercentChange(x, x)
		require.NotNil(t, c)
		assert.Equal(t, 0.0, *c)
	}

	c := PercentChange(65, 60)
	require.NotNil(t, c)
	assert.InDelta(t, 8.333333333, *c, 1e-6)

	c = PercentChange(0, 10)
	require.NotNil(t, c)
	assert.Equal(t, -100.0, *c)

	c = PercentChange(-5, -10)
	require.NotNil(t, c)
	assert.Equal(t, -50.0, *c)
}

func TestClassify(t *testing.T) {
	up, down, flat := 12.5, -0.1, 0.0
	assert.Equal(t, TrendUp, Classify(&up))
	assert.Equal(t, TrendDown, Classify(&down))
	assert.Equal(t, TrendFlat, Classify(&flat))
	assert.Equal(t, TrendUnknown, Classify(nil))
	assert.Equal(t, "n/a", Classify(nil).String())
	assert.Equal(t, "up", TrendUp.String())
}
