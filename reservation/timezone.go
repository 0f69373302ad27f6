package reservation

import "time"

// LocationOrUTC loads an IANA timezone, falling back to UTC for empty
// or unknown names. The engine never derives offsets from the runtime
// locale; the zone is explicit everywhere.
func LocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
