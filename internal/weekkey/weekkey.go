// Package weekkey implements the canonical identifier for a Monday-to-Sunday
// calendar week. A Key is the Monday of its week formatted YYYY-MM-DD; every
// date inside the 7-day span maps to the same Key. All arithmetic is on local
// calendar dates with the time of day truncated to midnight.
package weekkey

import (
	"fmt"
	"time"

	"weeklog/internal/constants"
)

// Key identifies one calendar week. Its string form doubles as a JSON map
// key, so per-week data serializes as plain date-keyed objects.
type Key string

// ForDate returns the Key of the week containing t. Sunday counts as the
// seventh day of the week that started the preceding Monday.
func ForDate(t time.Time) Key {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	monday = monday.AddDate(0, 0, -offset)
	return Key(monday.Format(constants.DateFormat))
}

// ForToday returns the Key of the current local week.
func ForToday() Key {
	return ForDate(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into a local-midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Parse validates a date string and canonicalizes it to its week's Key.
// Any day of the week is accepted, not just Mondays.
func Parse(s string) (Key, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return ForDate(t), nil
}

func (k Key) String() string {
	return string(k)
}

// Monday returns the start of the week at local midnight.
func (k Key) Monday() time.Time {
	t, err := ParseDate(string(k))
	if err != nil {
		// Keys are only constructed through ForDate/Parse, so a malformed
		// key means corrupted stored data; treat it as the current week.
		return ForToday().Monday()
	}
	return t
}

// Range returns the Monday and Sunday bounding this week.
func (k Key) Range() (start, end time.Time) {
	start = k.Monday()
	end = start.AddDate(0, 0, 6)
	return start, end
}

// Next returns the Key of the following week.
func (k Key) Next() Key {
	return ForDate(k.Monday().AddDate(0, 0, 7))
}

// Previous returns the Key of the preceding week.
func (k Key) Previous() Key {
	return ForDate(k.Monday().AddDate(0, 0, -7))
}

// DayDate returns the calendar date of day i (0=Monday .. 6=Sunday).
func (k Key) DayDate(i int) time.Time {
	return k.Monday().AddDate(0, 0, i)
}

// Contains reports whether the given YYYY-MM-DD date falls inside this week.
func (k Key) Contains(date string) bool {
	got, err := Parse(date)
	if err != nil {
		return false
	}
	return got == k
}

// Display renders the week as "<start> ~ <end day-of-month>",
// e.g. "2025-10-06 ~ 12".
func (k Key) Display() string {
	start, end := k.Range()
	return fmt.Sprintf("%s ~ %02d", start.Format(constants.DateFormat), end.Day())
}
