package types

// WorkingHour is an open interval within a single day, expressed in
// minutes since local midnight (09:00-17:30 is {540, 1050}).
type WorkingHour struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WorkingDay binds working hours to a recurring weekday. Day is the
// lowercase English weekday name ("monday" .. "sunday"). A weekday may
// appear more than once for split shifts.
type WorkingDay struct {
	Day   string        `json:"day"`
	Hours []WorkingHour `json:"workingHours"`
}

// OutcastDate is an annually recurring override matched by month and
// day-of-month, ignoring the year (holiday hours and the like).
type OutcastDate struct {
	Month int           `json:"month"`
	Day   int           `json:"day"`
	Hours []WorkingHour `json:"workingHours"`
}

// SpecificDate is a one-time override for an exact calendar date.
// Date is the unix timestamp of that date's midnight UTC.
type SpecificDate struct {
	Date  int64         `json:"date"`
	Hours []WorkingHour `json:"workingHours"`
}

// WorkingTime is a provider's availability template. Resolution
// precedence is SpecificDates > OutcastDates > Days; the first matching
// tier wins exclusively, entries are never merged across tiers.
type WorkingTime struct {
	Days          []WorkingDay   `json:"workingDays"`
	OutcastDates  []OutcastDate  `json:"outcastDates,omitempty"`
	SpecificDates []SpecificDate `json:"specificDates,omitempty"`
}

// TimelinePoint is one step of a provider's booking-load step function:
// the concurrent booking count becomes Concurrent at Timestamp and holds
// until the next point. Timelines are ordered ascending and may be
// sparse; no point before a query time means the count is 0 there.
type TimelinePoint struct {
	Timestamp  int64 `json:"timestamp"`
	Concurrent int   `json:"concurrent"`
}

// Provider is a bookable resource (staff member, room, seat pool) as
// returned by the provider endpoints. Timeline is clipped to the
// queried window by the server.
type Provider struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name,omitempty"`
	ConcurrentLimit    int             `json:"concurrentLimit"`
	ReservationMethods []string        `json:"reservationMethods,omitempty"`
	WorkingTime        *WorkingTime    `json:"workingTime"`
	Timeline           []TimelinePoint `json:"timeline"`
}

// ProviderList is the unscoped provider listing response.
type ProviderList struct {
	Items  []Provider `json:"items"`
	Cursor string     `json:"cursor,omitempty"`
}

// DurationPhase is one phase of a multi-phase service. Pauses still
// occupy provider time and count toward the total duration.
type DurationPhase struct {
	Duration int  `json:"duration"`
	IsPause  bool `json:"isPause,omitempty"`
}

// Service is a bookable service definition.
type Service struct {
	ID                 string          `json:"id"`
	BusinessID         string          `json:"businessId,omitempty"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Durations          []DurationPhase `json:"durations"`
	ReservationMethods []string        `json:"reservationMethods"`
	Price              *Price          `json:"price,omitempty"`
}

// Reservation is a confirmed booking as returned by the platform.
type Reservation struct {
	ID                string `json:"id"`
	ServiceID         string `json:"serviceId"`
	ProviderID        string `json:"providerId"`
	From              int64  `json:"from"`
	To                int64  `json:"to"`
	Status            string `json:"status"`
	ReservationMethod string `json:"reservationMethod,omitempty"`
}
