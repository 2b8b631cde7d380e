package coincidence

// Rotating acceptance gate. Simulates two antipodal modules sweeping at
// constant angular velocity, as in an EasyPET-style scanner: at any instant
// exactly one antipodal sector pair is illuminated, with a half-rotation
// period of 180/speed seconds.

// ActiveSectors returns the antipodal sector pair illuminated at elapsed
// seconds after the start of the stream.
func ActiveSectors(elapsedSec, speedDegPerSec float64, nModules int) (int, int) {
	sectorWidth := 360.0 / float64(nModules)
	rotationAngle := speedDegPerSec * elapsedSec
	active := int(rotationAngle/sectorWidth) % (nModules / 2)
	return active, active + nModules/2
}

// FilterRotating keeps only the events whose sector was illuminated at their
// own detection time. Events must already be normalized to seconds. Zero input
// yields zero stats and no error.
func FilterRotating(events []SingleEvent, speedDegPerSec float64, nModules int) ([]SingleEvent, GateStats) {
	stats := GateStats{
		Total:         len(events),
		RotationSpeed: speedDegPerSec,
	}
	if len(events) == 0 {
		return nil, stats
	}

	tMin := events[0].Time
	tMax := events[0].Time
	for _, evt := range events[1:] {
		if evt.Time < tMin {
			tMin = evt.Time
		}
		if evt.Time > tMax {
			tMax = evt.Time
		}
	}
	stats.ElapsedSec = tMax - tMin

	retained := make([]SingleEvent, 0, len(events))
	for _, evt := range events {
		activeA, activeB := ActiveSectors(evt.Time-tMin, speedDegPerSec, nModules)
		if evt.Sector == activeA || evt.Sector == activeB {
			retained = append(retained, evt)
		}
	}
	stats.Retained = len(retained)
	return retained, stats
}
