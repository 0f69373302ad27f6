package reservation

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/0xDjole/arky-go/types"
)

// defaultDuration is used when a service carries no duration phases.
const defaultDuration = 60

// Slot is a concrete bookable window. Slots are derived, never
// persisted: the generator creates them and user actions either
// discard them, select one, or move it into the cart.
type Slot struct {
	ID         string `json:"id"`
	ServiceID  string `json:"serviceId"`
	ProviderID string `json:"providerId"`
	From       int64  `json:"from"`
	To         int64  `json:"to"`
	TimeText   string `json:"timeText"`
	DateText   string `json:"dateText"`
}

// SlotRequest describes one slot-generation run.
type SlotRequest struct {
	ServiceID string
	Providers []types.Provider
	Date      time.Time
	Phases    []types.DurationPhase
	Location  *time.Location

	// Interval is the step between slot starts in minutes. Zero means
	// the total service duration, i.e. back-to-back slots.
	Interval int

	// Now anchors past-slot filtering; zero means time.Now().
	Now time.Time
}

// TotalDuration is the full provider-blocking length of a service in
// minutes, pauses included. Services without phases fall back to a
// 60-minute duration.
func TotalDuration(phases []types.DurationPhase) int {
	if len(phases) == 0 {
		return defaultDuration
	}
	total := 0
	for _, p := range phases {
		total += p.Duration
	}
	return total
}

// GenerateSlots enumerates the bookable windows for all providers on
// one calendar date, sorted ascending by start time.
//
// The date is decomposed into its civil year/month/day as observed in
// req.Location, and each working-hours minute offset is converted to an
// absolute timestamp by adding it to that date's local midnight. Using
// the zone offset at midnight keeps every slot of a DST-transition day
// on the same arithmetic.
func GenerateSlots(req SlotRequest) []Slot {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	total := TotalDuration(req.Phases)
	interval := req.Interval
	if interval <= 0 {
		interval = total
	}

	year, month, day := req.Date.In(loc).Date()
	ny, nm, nd := now.In(loc).Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)
	midnight := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if midnight.Before(today) {
		return nil
	}

	base := midnight.Unix()
	nowUnix := now.Unix()

	var slots []Slot
	for i := range req.Providers {
		p := &req.Providers[i]
		for _, wh := range ResolveWorkingHours(p.WorkingTime, req.Date, loc) {
			for m := wh.From; m+total <= wh.To; m += interval {
				from := base + int64(m)*60
				to := from + int64(total)*60
				if from < nowUnix {
					continue
				}
				if IsBlocked(from, to, p.Timeline, p.ConcurrentLimit) {
					continue
				}
				start := time.Unix(from, 0).In(loc)
				slots = append(slots, Slot{
					ID:         uuid.NewString(),
					ServiceID:  req.ServiceID,
					ProviderID: p.ID,
					From:       from,
					To:         to,
					TimeText:   start.Format("15:04"),
					DateText:   start.Format("Mon, Jan 2"),
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].From < slots[j].From
	})
	return slots
}
