package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseLoadDeterministicPatternNoNoise(t *testing.T) {
	b := NewBaseLoad(2.0, 1.0, 0, 0, 4, 1)
	// With noiseStdDev=0 the shape is pure base + amp*sin(2*pi*t/4):
	// t=0 -> 2.0, t=1 -> 3.0, t=2 -> 2.0, t=3 -> 1.0.
	assert.InDelta(t, 2.0, b.PowerKW(0), 1e-9)
	assert.InDelta(t, 3.0, b.PowerKW(1), 1e-9)
	assert.InDelta(t, 2.0, b.PowerKW(2), 1e-9)
	assert.InDelta(t, 1.0, b.PowerKW(3), 1e-9)
}

func TestBaseLoadClampsTroughToZero(t *testing.T) {
	// amp exceeds base, so the sinusoid trough goes negative and must clamp.
	b := NewBaseLoad(1.0, 5.0, 0, 0, 4, 1)
	assert.Equal(t, 0.0, b.PowerKW(3))
}

func TestBaseLoadNeverNegativeUnderNoise(t *testing.T) {
	b := NewBaseLoad(0.1, 0.1, 0, 3.0, 24, 5)
	for step := 0; step < 24; step++ {
		assert.GreaterOrEqual(t, b.PowerKW(step), 0.0)
	}
}

func TestBaseLoadSameSeedIsDeterministic(t *testing.T) {
	a := NewBaseLoad(2.0, 1.0, 0.3, 0.2, 24, 7)
	b := NewBaseLoad(2.0, 1.0, 0.3, 0.2, 24, 7)
	for step := 0; step < 24; step++ {
		assert.Equal(t, a.PowerKW(step), b.PowerKW(step))
	}
}
