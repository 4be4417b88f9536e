package domain

import "time"

// DateRange is a half-open period [Start, End) of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range with both bounds truncated to UTC calendar dates
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: DateOnly(start), End: DateOnly(end)}
}

// IsValid returns true if both bounds are set and Start is strictly before End
func (r DateRange) IsValid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && r.Start.Before(r.End)
}

// Days returns the number of whole calendar days in the range
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// Overlaps reports whether two half-open ranges intersect.
// Ranges sharing only a boundary (r.End == other.Start) do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether the day falls into [Start, End)
func (r DateRange) Contains(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(r.Start) && d.Before(r.End)
}

// EachDay calls fn for every calendar day in [Start, End) until fn returns false
func (r DateRange) EachDay(fn func(day time.Time) bool) {
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		if !fn(d) {
			return
		}
	}
}

// DateOnly drops the time-of-day component and moves the date to UTC
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds calendar months to a date. When the target month is shorter
// than the source day, the result is clamped to the last day of the target
// month: Jan 31 + 1 month = Feb 28 (Feb 29 in leap years).
func AddMonths(t time.Time, months int) time.Time {
	t = DateOnly(t)
	y, m, d := t.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}
