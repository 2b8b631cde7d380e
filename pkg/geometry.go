package coincidence

import "math"

// Two angle conventions live side by side and must not be mixed up:
// SectorID shifts atan2 by pi to get a [0, 2pi) bucketing angle, while
// DetectionAngle keeps the raw atan2 value in (-pi, pi] for pairwise
// separation checks in the matcher.

// SectorID maps a detection position to its azimuthal sector index in
// [0, nModules), one sector per physical module.
func SectorID(x, y float64, nModules int) int {
	angle := math.Atan2(y, x) + math.Pi
	sector := int(angle / (2 * math.Pi) * float64(nModules))
	return sector % nModules
}

// DetectionAngle returns the raw azimuth of a detection position.
func DetectionAngle(x, y float64) float64 {
	return math.Atan2(y, x)
}

// AngularSeparation returns the shortest-arc distance between two azimuths.
func AngularSeparation(a, b float64) float64 {
	diff := math.Abs(a - b)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}
