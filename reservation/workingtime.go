package reservation

import (
	"strings"
	"time"

	"github.com/0xDjole/arky-go/types"
)

// ResolveWorkingHours returns the open intervals for a provider on a
// calendar date, in minutes since local midnight. Precedence is
// specific dates, then annually recurring outcast dates, then the
// weekly template; the first matching tier wins on its own, even when
// it carries no hours (an explicit closed day). Weekday and
// month/day-of-month are derived in loc, not in the runtime's zone.
func ResolveWorkingHours(wt *types.WorkingTime, date time.Time, loc *time.Location) []types.WorkingHour {
	if wt == nil {
		return nil
	}

	local := date.In(loc)
	year, month, day := local.Date()

	dayStamp := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	for _, sd := range wt.SpecificDates {
		if sd.Date == dayStamp {
			return sd.Hours
		}
	}

	for _, od := range wt.OutcastDates {
		if od.Month == int(month) && od.Day == day {
			return od.Hours
		}
	}

	weekday := strings.ToLower(local.Weekday().String())
	for _, wd := range wt.Days {
		if strings.ToLower(wd.Day) == weekday {
			return wd.Hours
		}
	}

	return nil
}
