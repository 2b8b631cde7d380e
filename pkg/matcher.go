package coincidence

import (
	"golang.org/x/exp/slices"
)

// Full-ring coincidence matching. The policy is greedy earliest-eligible
// partner: walk the time-sorted stream once, and pair each unmatched event
// with the first later unmatched event inside the time window whose angular
// separation clears the threshold. This mirrors online coincidence-sorting
// hardware, which cannot look arbitrarily far ahead or backtrack, and is not
// required to find a maximum matching.

// MatchFullRing pairs events over the whole ring. The window is in normalized
// seconds and the minimum angular separation in radians. Each event is used at
// most once per pass; output pairs are ordered by the time of their earlier
// member. Zero pairs is a valid outcome.
func MatchFullRing(events []SingleEvent, windowSec, minAngleRad float64) []CoincidencePair {
	sorted := make([]SingleEvent, len(events))
	copy(sorted, events)
	slices.SortStableFunc(sorted, func(a, b SingleEvent) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	})

	used := make([]bool, len(sorted))
	var pairs []CoincidencePair

	for i := 0; i < len(sorted); i++ {
		if used[i] {
			continue
		}
		for j := i + 1; j < len(sorted) && sorted[j].Time-sorted[i].Time < windowSec; j++ {
			if used[j] {
				continue
			}
			if AngularSeparation(sorted[i].Angle, sorted[j].Angle) > minAngleRad {
				pairs = append(pairs, newPair(sorted[i], sorted[j]))
				used[i] = true
				used[j] = true
				break
			}
		}
	}
	return pairs
}

func newPair(first, second SingleEvent) CoincidencePair {
	return CoincidencePair{
		X1: first.X, Y1: first.Y, Z1: first.Z,
		X2: second.X, Y2: second.Y, Z2: second.Z,
		Time1:   first.Time,
		Time2:   second.Time,
		Energy1: first.Energy,
		Energy2: second.Energy,
	}
}
