package reservation

import (
	"time"

	"github.com/0xDjole/arky-go/types"
)

// CalendarDay is one cell of the month grid shown to the user. Blank
// cells pad the first week to a Monday start and the last week to a
// full row.
type CalendarDay struct {
	Date      time.Time `json:"date"`
	ISO       string    `json:"iso"`
	Day       int       `json:"day"`
	Available bool      `json:"available"`
	Selected  bool      `json:"isSelected"`
	InRange   bool      `json:"isInRange"`
	Today     bool      `json:"isToday"`
	Blank     bool      `json:"blank"`
}

// Selection carries the user's current date choices into the builder.
// Start/End describe a multi-day range; InRange is true only for days
// strictly between them.
type Selection struct {
	Date  *time.Time
	Start *time.Time
	End   *time.Time
}

// CalendarRequest describes one month-grid build.
type CalendarRequest struct {
	ServiceID string
	Providers []types.Provider
	Month     time.Time // any instant inside the target month
	Phases    []types.DurationPhase
	Selected  *types.Provider
	Selection Selection
	Location  *time.Location
	Interval  int
	Now       time.Time
}

// BuildCalendar projects slot generation across a whole month into
// day-level availability flags. A day is available when the generator
// yields at least one slot for it, restricted to the selected provider
// when one is set and the pooled provider list otherwise. The grid is
// always a multiple of seven cells.
func BuildCalendar(req CalendarRequest) []CalendarDay {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	providers := req.Providers
	if req.Selected != nil {
		providers = []types.Provider{*req.Selected}
	}

	year, month, _ := req.Month.In(loc).Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()

	days := make([]CalendarDay, 0, 42)
	for i := 0; i < mondayIndex(first.Weekday()); i++ {
		days = append(days, CalendarDay{Blank: true})
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc)
		slots := GenerateSlots(SlotRequest{
			ServiceID: req.ServiceID,
			Providers: providers,
			Date:      date,
			Phases:    req.Phases,
			Location:  loc,
			Interval:  req.Interval,
			Now:       now,
		})

		days = append(days, CalendarDay{
			Date:      date,
			ISO:       date.Format("2006-01-02"),
			Day:       d,
			Available: len(slots) > 0,
			Selected:  req.Selection.Date != nil && sameCivilDay(*req.Selection.Date, date, loc),
			InRange:   inRange(req.Selection, date, loc),
			Today:     sameCivilDay(now, date, loc),
		})
	}

	for len(days)%7 != 0 {
		days = append(days, CalendarDay{Blank: true})
	}
	return days
}

// mondayIndex maps a weekday to its column in a Monday-start grid.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func sameCivilDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// inRange is exclusive on both ends: the range endpoints themselves
// render as selected, not as in-range.
func inRange(sel Selection, date time.Time, loc *time.Location) bool {
	if sel.Start == nil || sel.End == nil {
		return false
	}
	start := civilMidnight(*sel.Start, loc)
	end := civilMidnight(*sel.End, loc)
	day := civilMidnight(date, loc)
	return day.After(start) && day.Before(end)
}

func civilMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
