package coincidence

import "github.com/google/uuid"

// SingleEvent is one detected photon interaction at a scintillator crystal.
// Position is in millimeters, Time in seconds after normalization. Sector and
// Angle are derived at ingestion: Sector uses the shifted bucketing angle,
// Angle keeps the raw atan2 value used for pairwise separation.
type SingleEvent struct {
	X      float64
	Y      float64
	Z      float64
	Energy float64
	Time   float64
	Sector int
	Angle  float64
}

// CoincidencePair is a matched pair of singles attributed to one annihilation.
type CoincidencePair struct {
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
	Time1      float64
	Time2      float64
	Energy1    float64
	Energy2    float64
}

// SinglesColumns holds the parallel columns of a singles table as read from
// the input file, before normalization.
type SinglesColumns struct {
	X      []float64
	Y      []float64
	Z      []float64
	Energy []float64
	Time   []float64
}

// GateStats summarizes the effect of the rotating acceptance gate on a stream.
type GateStats struct {
	Total         int
	Retained      int
	RotationSpeed float64
	ElapsedSec    float64
}

// Percentage returns the retained fraction in percent. Zero input gives 0.
func (s GateStats) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(s.Retained) / float64(s.Total)
}

// RunSummary reports the outcome of one correlation pass.
type RunSummary struct {
	RunID         uuid.UUID
	Mode          string
	NSingles      int
	NRetained     int
	NCoincidences int
	TimeScale     float64
	Gate          *GateStats
}
