package coincidence

// Time-unit handling. Upstream simulations deliver GlobalTime in picoseconds,
// nanoseconds or seconds depending on the digitizer chain, without any unit
// metadata in the file. Both functions below infer the unit from the maximum
// raw timestamp of the stream. The thresholds are a known limitation: a very
// long simulation recorded in seconds with timestamps above 1e9 would be
// misread as nanoseconds. Keep the branches exactly as they are unless the
// unit contract with the producers changes.

// InferTimeScale returns the divisor that converts raw event timestamps to
// seconds: 1e12 for picoseconds, 1e9 for nanoseconds, 1 when the stream is
// assumed to be in seconds already.
func InferTimeScale(maxRaw float64) float64 {
	switch {
	case maxRaw > 1e12:
		return 1e12
	case maxRaw > 1e9:
		return 1e9
	default:
		return 1
	}
}

// windowRawFactor converts a window given in nanoseconds into the raw time
// unit of the stream. This is a second, independent heuristic with its own
// thresholds; it does NOT mirror InferTimeScale branch for branch (raw maxima
// between 1e3 and 1e9 are treated as microseconds or nanoseconds here while
// InferTimeScale leaves the events untouched).
func windowRawFactor(maxRaw float64) float64 {
	switch {
	case maxRaw > 1e12:
		return 1e3 // ps
	case maxRaw > 1e6:
		return 1 // ns
	case maxRaw > 1e3:
		return 1e-3 // us
	default:
		return 1e-9 // s
	}
}

// CoincidenceWindow converts the configured window in nanoseconds into
// normalized seconds. maxRaw is the maximum raw timestamp of the stream
// handed to the matcher (after any gating), timeScale the divisor that was
// applied to the event times at ingestion. The two are passed separately
// because the rotating gate can drop the events that set the ingestion-time
// maximum: the window factor follows the surviving stream while the divisor
// stays the one the times were actually normalized with, so comparing
// normalized times against the returned window reproduces the raw-unit
// comparison in every inference branch, including the divergent ones.
func CoincidenceWindow(windowNs float64, maxRaw float64, timeScale float64) float64 {
	return windowNs * windowRawFactor(maxRaw) / timeScale
}
