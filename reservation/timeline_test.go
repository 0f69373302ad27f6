package reservation

import (
	"testing"

	"github.com/0xDjole/arky-go/types"
)

func TestIsBlocked_EmptyTimeline(t *testing.T) {
	if IsBlocked(1000, 2000, nil, 1) {
		t.Fatal("empty timeline must not block")
	}
}

func TestIsBlocked_FullBeforeWindowStarts(t *testing.T) {
	timeline := []types.TimelinePoint{
		{Timestamp: 500, Concurrent: 2},
	}
	if !IsBlocked(1000, 2000, timeline, 2) {
		t.Fatal("window starting while the provider is full must block")
	}
}

func TestIsBlocked_FreedBeforeWindowStarts(t *testing.T) {
	timeline := []types.TimelinePoint{
		{Timestamp: 500, Concurrent: 2},
		{Timestamp: 900, Concurrent: 0},
	}
	if IsBlocked(1000, 2000, timeline, 2) {
		t.Fatal("the level active at the window start is the last point at or before it")
	}
}

func TestIsBlocked_BecomesFullMidWindow(t *testing.T) {
	timeline := []types.TimelinePoint{
		{Timestamp: 1500, Concurrent: 1},
	}
	if !IsBlocked(1000, 2000, timeline, 1) {
		t.Fatal("hitting the limit inside the window must block")
	}
}

func TestIsBlocked_PointAtWindowEndIgnored(t *testing.T) {
	// The window is half-open: a point exactly at `to` is outside it.
	timeline := []types.TimelinePoint{
		{Timestamp: 2000, Concurrent: 5},
	}
	if IsBlocked(1000, 2000, timeline, 1) {
		t.Fatal("a point at the window end must not block")
	}
}

func TestIsBlocked_UnderLimitDoesNotBlock(t *testing.T) {
	timeline := []types.TimelinePoint{
		{Timestamp: 900, Concurrent: 1},
		{Timestamp: 1500, Concurrent: 1},
	}
	if IsBlocked(1000, 2000, timeline, 2) {
		t.Fatal("levels below the limit must not block")
	}
}

func TestIsBlocked_SupersetOfBlockedWindow(t *testing.T) {
	// Growing a blocked window in either direction keeps it blocked.
	timeline := []types.TimelinePoint{
		{Timestamp: 1500, Concurrent: 3},
		{Timestamp: 1600, Concurrent: 0},
	}
	limit := 3

	if !IsBlocked(1400, 1550, timeline, limit) {
		t.Fatal("inner window should be blocked")
	}
	if !IsBlocked(1000, 1550, timeline, limit) {
		t.Fatal("window extended earlier should stay blocked")
	}
	if !IsBlocked(1400, 3000, timeline, limit) {
		t.Fatal("window extended later should stay blocked")
	}
	if !IsBlocked(1000, 3000, timeline, limit) {
		t.Fatal("window extended both ways should stay blocked")
	}
}
