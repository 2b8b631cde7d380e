package coincidence

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// GenerateCoincidences runs one full correlation pass with the current
// configuration: read singles, normalize, optionally apply the rotating gate,
// match and write the Coincidences table. All events of the run are
// materialized in memory before matching starts. Zero singles or zero pairs
// are reported as warnings, not failures; only malformed input or I/O aborts
// the run.
func GenerateCoincidences(writer *Writer) (RunSummary, error) {
	summary := RunSummary{
		RunID: uuid.New(),
		Mode:  configuration.Mode,
	}

	if configuration.Mode != ModeFullRing && configuration.Mode != ModePartialRing {
		return summary, &ErrUnknownMode{Mode: configuration.Mode}
	}

	cols, err := ReadSingles(configuration.FileIn, configuration.InputTable)
	if err != nil {
		return summary, err
	}

	events, scale, err := NormalizeSingles(cols, configuration.NModules)
	if err != nil {
		return summary, err
	}
	summary.NSingles = len(events)
	summary.TimeScale = scale

	if len(events) > configuration.MaxEvents {
		events = events[:configuration.MaxEvents]
	}

	if configuration.Rotating {
		var stats GateStats
		events, stats = FilterRotating(events, configuration.RotationSpeed, configuration.NModules)
		summary.Gate = &stats
		logGateStats(stats)
	}
	summary.NRetained = len(events)

	writer.WriteRunInfo(int32(configuration.RunNumber))
	writer.WriteParameters(configuration)

	if len(events) == 0 {
		if logger != nil {
			logger.Info(fmt.Sprintf("Run %s: no singles to match, writing empty table", summary.RunID), "process")
		}
		return summary, nil
	}

	var pairs []CoincidencePair
	switch configuration.Mode {
	case ModeFullRing:
		// The window heuristic follows the stream that survives gating,
		// not the full ingested stream.
		windowSec := CoincidenceWindow(configuration.TimeWindowNs, maxRawTime(events, scale), scale)
		minAngleRad := configuration.MinAngleDeg * math.Pi / 180
		pairs = MatchFullRing(events, windowSec, minAngleRad)
	case ModePartialRing:
		pairs = MatchPartialRing(events)
	}
	summary.NCoincidences = len(pairs)

	if len(pairs) == 0 {
		if logger != nil {
			logger.Info(fmt.Sprintf("Run %s: no coincidences found", summary.RunID), "process")
		}
		return summary, nil
	}

	writer.WritePairs(pairs)

	if logger != nil {
		message := fmt.Sprintf("Run %s: %d singles in, %d retained, %d coincidences out",
			summary.RunID, summary.NSingles, summary.NRetained, summary.NCoincidences)
		logger.Info(message, "process")
	}
	return summary, nil
}

// maxRawTime recovers the maximum raw timestamp of a normalized stream.
func maxRawTime(events []SingleEvent, scale float64) float64 {
	maxRaw := 0.0
	for _, evt := range events {
		if evt.Time*scale > maxRaw {
			maxRaw = evt.Time * scale
		}
	}
	return maxRaw
}

func logGateStats(stats GateStats) {
	if logger == nil {
		return
	}
	logger.Info(fmt.Sprintf("Singles loaded:   %d", stats.Total), "rotation")
	logger.Info(fmt.Sprintf("Singles retained: %d (%.1f%%)", stats.Retained, stats.Percentage()), "rotation")
	logger.Info(fmt.Sprintf("Rotation speed:   %g deg/s", stats.RotationSpeed), "rotation")
	logger.Info(fmt.Sprintf("Simulation time:  %.2f s", stats.ElapsedSec), "rotation")
}
