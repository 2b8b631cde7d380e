package coincidence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventInSector places an event in the middle of the given sector at time t.
func eventInSector(sector int, nModules int, t float64) SingleEvent {
	sectorWidth := 2 * math.Pi / float64(nModules)
	shifted := (float64(sector) + 0.5) * sectorWidth
	raw := shifted - math.Pi
	return SingleEvent{
		X:      math.Cos(raw),
		Y:      math.Sin(raw),
		Time:   t,
		Sector: sector,
		Angle:  raw,
	}
}

func TestActiveSectors(t *testing.T) {
	tests := []struct {
		name    string
		elapsed float64
		wantA   int
		wantB   int
	}{
		{"start", 0, 0, 9},
		{"within first sector", 0.1, 0, 9},
		{"second sector", 0.25, 1, 10},
		{"last sector of half turn", 1.9, 8, 17},
		{"half rotation wraps", 2.0, 0, 9},
		{"full rotation", 4.0, 0, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := ActiveSectors(tt.elapsed, 90.0, 18)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
		})
	}
}

func TestFilterRotatingKeepsOnlyActiveSectors(t *testing.T) {
	// One event in every sector at several times across a half rotation.
	var events []SingleEvent
	for _, tm := range []float64{0, 0.5, 1.0, 1.5} {
		for s := 0; s < 18; s++ {
			events = append(events, eventInSector(s, 18, tm))
		}
	}

	retained, stats := FilterRotating(events, 90.0, 18)

	// At any instant exactly one antipodal pair out of nine is illuminated.
	assert.Equal(t, len(events), stats.Total)
	assert.Equal(t, len(retained), stats.Retained)
	assert.Equal(t, 8, len(retained))

	tMin := events[0].Time
	for _, evt := range retained {
		a, b := ActiveSectors(evt.Time-tMin, 90.0, 18)
		assert.Contains(t, []int{a, b}, evt.Sector)
	}
}

func TestFilterRotatingAntipodalPartner(t *testing.T) {
	// Sector 0 and its antipode 9 are both active at t=0; sector 1 is not.
	events := []SingleEvent{
		eventInSector(0, 18, 0),
		eventInSector(9, 18, 0),
		eventInSector(1, 18, 0),
	}
	retained, stats := FilterRotating(events, 90.0, 18)
	require.Len(t, retained, 2)
	assert.Equal(t, 0, retained[0].Sector)
	assert.Equal(t, 9, retained[1].Sector)
	assert.InDelta(t, 66.7, stats.Percentage(), 0.1)
}

func TestFilterRotatingStats(t *testing.T) {
	events := []SingleEvent{
		eventInSector(0, 18, 10.0),
		eventInSector(5, 18, 12.5),
	}
	_, stats := FilterRotating(events, 90.0, 18)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 90.0, stats.RotationSpeed)
	assert.InDelta(t, 2.5, stats.ElapsedSec, 1e-12)
}

func TestFilterRotatingEmpty(t *testing.T) {
	retained, stats := FilterRotating(nil, 90.0, 18)
	assert.Empty(t, retained)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Retained)
	assert.Equal(t, 0.0, stats.Percentage())
}
