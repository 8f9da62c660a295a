package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// windowDays is how many days past today the schedule window reaches (inclusive).
const windowDays = 6

// Window is an inclusive date range in DateLayout form.
type Window struct {
	Start string
	End   string
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ScheduleWindow returns today through today+6 as seen from loc (UTC when nil).
func ScheduleWindow(now time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	today := now.In(loc)
	return Window{
		Start: FormatDate(today),
		End:   FormatDate(today.AddDate(0, 0, windowDays)),
	}
}
