package utils

import "time"

// Argentina time (ART, -03:00, no DST)
var arLoc = func() *time.Location {
	if loc, err := time.LoadLocation("America/Argentina/Buenos_Aires"); err == nil {
		return loc
	}
	return time.FixedZone("ART", -3*3600)
}()

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date ("2026-03-08") at midnight UTC. Billing
// dates are pure calendar values; keeping them in UTC avoids tz drift when
// they round-trip through the date columns.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// DateOnly truncates t to its calendar date, preserving the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// TodayAR is today's calendar date from the business's wall clock.
func TodayAR() time.Time {
	return DateOnly(time.Now().In(arLoc))
}
