package coincidence

import (
	"golang.org/x/exp/slices"
)

// Partial-ring coincidence matching, for the configuration with exactly two
// static modules told apart by the sign of x. Each side is time-sorted
// independently and paired in a single forward merge: every x<0 event takes
// the x>0 event whose time is the latest one still below its own. Unlike the
// full-ring matcher there is no time window, no angular filter and no
// used-once bookkeeping; this intentional asymmetry changes the coincidence
// yield and must not be reconciled silently with the full-ring policy.

// MatchPartialRing pairs the x<0 substream against the x>0 substream.
// Events with x == 0 belong to neither module and are dropped. Matching stops
// when either side is exhausted.
func MatchPartialRing(events []SingleEvent) []CoincidencePair {
	var left, right []SingleEvent
	for _, evt := range events {
		switch {
		case evt.X < 0:
			left = append(left, evt)
		case evt.X > 0:
			right = append(right, evt)
		}
	}
	byTime := func(a, b SingleEvent) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		default:
			return 0
		}
	}
	slices.SortStableFunc(left, byTime)
	slices.SortStableFunc(right, byTime)

	var pairs []CoincidencePair
	j := 0
	for _, evt := range left {
		if j >= len(right) {
			break
		}
		for j < len(right)-1 && right[j+1].Time < evt.Time {
			j++
		}
		pairs = append(pairs, newPair(evt, right[j]))
		j++
	}
	return pairs
}
