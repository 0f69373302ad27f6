package reservation

import "github.com/0xDjole/arky-go/types"

// IsBlocked reports whether the window [from, to) cannot be booked
// against a provider's timeline: either the concurrency level already
// active at from (the last point with timestamp <= from) is at the
// limit, or some point inside the window reaches it. A timeline with
// no point at or before from counts as level 0 there.
func IsBlocked(from, to int64, timeline []types.TimelinePoint, limit int) bool {
	active := 0
	for _, pt := range timeline {
		if pt.Timestamp <= from {
			active = pt.Concurrent
			continue
		}
		if pt.Timestamp >= to {
			// Points are ordered ascending; the rest are past the window.
			break
		}
		if pt.Concurrent >= limit {
			return true
		}
	}
	return active >= limit
}
