package coincidence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectorID(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want int
	}{
		{"positive x axis", 1, 0, 9},
		{"positive y axis", 0, 1, 13},
		{"diagonal", 1, 1, 11},
		{"negative x axis wraps to zero", -1, 0, 0},
		{"just below pi", -1, -1e-9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectorID(tt.x, tt.y, 18))
		})
	}
}

func TestSectorIDRange(t *testing.T) {
	// Every direction lands in a valid sector.
	for i := 0; i < 360; i++ {
		angle := float64(i) * math.Pi / 180
		sector := SectorID(math.Cos(angle), math.Sin(angle), 18)
		assert.GreaterOrEqual(t, sector, 0)
		assert.Less(t, sector, 18)
	}
}

// The bucketing angle is shifted by pi, the pairwise angle is not. The same
// position must give different values through the two functions; mixing them
// up would silently rotate the ring by half a turn.
func TestAngleConventionsAreDistinct(t *testing.T) {
	assert.Equal(t, 0.0, DetectionAngle(1, 0))
	assert.Equal(t, 9, SectorID(1, 0, 18))

	assert.InDelta(t, math.Pi/2, DetectionAngle(0, 1), 1e-12)
	assert.InDelta(t, math.Pi, DetectionAngle(-1, 0), 1e-12)
}

func TestAngularSeparation(t *testing.T) {
	assert.InDelta(t, deg(170), AngularSeparation(deg(0), deg(170)), 1e-12)
	// Shortest arc: 340 degrees apart is really 20.
	assert.InDelta(t, deg(20), AngularSeparation(deg(-170), deg(170)), 1e-12)
	assert.InDelta(t, deg(180), AngularSeparation(deg(10), deg(190)), 1e-12)
	assert.InDelta(t, 0.0, AngularSeparation(deg(45), deg(45)), 1e-12)
}
