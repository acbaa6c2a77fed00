package models

import "time"

// DateLayout is the calendar date format used throughout the snapshot.
const DateLayout = "2006-01-02"

// Date is a calendar date in ISO 8601 YYYY-MM-DD form. For this layout,
// lexical string comparison is equivalent to chronological comparison, so
// Before/After compare strings directly.
type Date string

// NewDate truncates t to a calendar date.
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Time parses the date at midnight UTC.
func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

// Valid reports whether the date is a well-formed YYYY-MM-DD value.
func (d Date) Valid() bool {
	_, err := d.Time()
	return err == nil
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d < other }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d > other }

// YearMonth returns the calendar year and month, or false when the date is
// malformed.
func (d Date) YearMonth() (int, time.Month, bool) {
	t, err := d.Time()
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

// Advance returns the next occurrence after one period of the given
// frequency. Monthly and yearly adds clamp the day of month to the target
// month's length (Jan 31 -> Feb 28, Feb 29 -> next Feb 28) instead of
// letting the overflow spill into the following month.
func (d Date) Advance(freq Frequency) Date {
	t, err := d.Time()
	if err != nil {
		return d
	}
	switch freq {
	case FrequencyWeekly:
		return NewDate(t.AddDate(0, 0, 7))
	case FrequencyMonthly:
		return clampedAdd(t, 0, 1)
	case FrequencyYearly:
		return clampedAdd(t, 1, 0)
	default:
		return d
	}
}

// clampedAdd moves t forward by whole years/months, clamping the day to the
// last day of the target month. time.AddDate is avoided here because it
// normalizes overflow (Jan 31 + 1 month = Mar 2/3).
func clampedAdd(t time.Time, years, months int) Date {
	year := t.Year() + years
	month := t.Month() + time.Month(months)
	if month > time.December {
		month -= 12
		year++
	}
	day := t.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return NewDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
