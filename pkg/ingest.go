package coincidence

import "fmt"

// NormalizeSingles turns the parallel input columns into a stream of
// SingleEvents with time in seconds and the derived sector and angle filled
// in. The returned scale is the divisor applied to the raw timestamps.
// A length mismatch between columns is fatal; zero events is not.
func NormalizeSingles(cols SinglesColumns, nModules int) ([]SingleEvent, float64, error) {
	n := len(cols.X)
	if err := checkColumnLengths(cols, n); err != nil {
		return nil, 0, err
	}

	maxRaw := 0.0
	for _, t := range cols.Time {
		if t > maxRaw {
			maxRaw = t
		}
	}
	scale := InferTimeScale(maxRaw)
	if scale != 1 && logger != nil {
		message := fmt.Sprintf("Inferred time scale 1/%g from max timestamp %g, unit unverified", scale, maxRaw)
		logger.Info(message, "ingest")
	}

	events := make([]SingleEvent, n)
	for i := 0; i < n; i++ {
		events[i] = SingleEvent{
			X:      cols.X[i],
			Y:      cols.Y[i],
			Z:      cols.Z[i],
			Energy: cols.Energy[i],
			Time:   cols.Time[i] / scale,
			Sector: SectorID(cols.X[i], cols.Y[i], nModules),
			Angle:  DetectionAngle(cols.X[i], cols.Y[i]),
		}
	}
	return events, scale, nil
}

func checkColumnLengths(cols SinglesColumns, want int) error {
	if len(cols.Y) != want {
		return &ErrColumnMismatch{Column: "PostPosition_Y", Got: len(cols.Y), Want: want}
	}
	if len(cols.Z) != want {
		return &ErrColumnMismatch{Column: "PostPosition_Z", Got: len(cols.Z), Want: want}
	}
	if len(cols.Energy) != want {
		return &ErrColumnMismatch{Column: "TotalEnergyDeposit", Got: len(cols.Energy), Want: want}
	}
	if len(cols.Time) != want {
		return &ErrColumnMismatch{Column: "GlobalTime", Got: len(cols.Time), Want: want}
	}
	return nil
}
