// ===== pkg/models/date.go =====
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat is matched by every DateError
var ErrInvalidDateFormat = errors.New("invalid date format")

var weekdayNames = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// DateError describes a lease timestamp field that failed to parse
type DateError struct {
	Field string // weekday, date, time, year, month, ...
	Value string // offending text
	Rule  string // what was expected
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Rule)
}

// Is reports whether target is ErrInvalidDateFormat
func (e *DateError) Is(target error) bool {
	return target == ErrInvalidDateFormat
}

// Date is a lease timestamp as written in dhcpd.leases:
// weekday year/month/day hour:minute:second
type Date struct {
	Weekday int `json:"weekday"`
	Year    int `json:"year"`
	Month   int `json:"month"`
	Day     int `json:"day"`
	Hour    int `json:"hour"`
	Minute  int `json:"minute"`
	Second  int `json:"second"`
}

// ParseDate builds a Date from the three tokens of a starts/ends statement.
// Month and day have no upper bound.
func ParseDate(weekday, date, clock string) (Date, error) {
	var d Date
	var err error

	if d.Weekday, err = parseField("weekday", weekday, 0, 6); err != nil {
		return Date{}, err
	}

	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return Date{}, &DateError{Field: "date", Value: date, Rule: "expected YYYY/MM/DD"}
	}
	if d.Year, err = parseNumber("year", parts[0]); err != nil {
		return Date{}, err
	}
	if d.Month, err = parseField("month", parts[1], 1, -1); err != nil {
		return Date{}, err
	}
	if d.Day, err = parseField("day", parts[2], 1, -1); err != nil {
		return Date{}, err
	}

	parts = strings.Split(clock, ":")
	if len(parts) != 3 {
		return Date{}, &DateError{Field: "time", Value: clock, Rule: "expected HH:MM:SS"}
	}
	if d.Hour, err = parseField("hour", parts[0], 0, 23); err != nil {
		return Date{}, err
	}
	if d.Minute, err = parseField("minute", parts[1], 0, 59); err != nil {
		return Date{}, err
	}
	if d.Second, err = parseField("second", parts[2], 0, 59); err != nil {
		return Date{}, err
	}

	return d, nil
}

// DateFromRFC3339 builds a Date from an RFC 3339 timestamp. The clock fields
// are taken as written; the offset is not applied.
func DateFromRFC3339(weekday int, value string) (Date, error) {
	if weekday < 0 || weekday > 6 {
		return Date{}, &DateError{Field: "weekday", Value: strconv.Itoa(weekday), Rule: "must be between 0 and 6"}
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Date{}, &DateError{Field: "timestamp", Value: value, Rule: "expected RFC 3339"}
	}

	return Date{
		Weekday: weekday,
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}, nil
}

// DateFromTime converts t to UTC, which is what dhcpd writes
func DateFromTime(t time.Time) Date {
	t = t.UTC()
	return Date{
		Weekday: int(t.Weekday()),
		Year:    t.Year(),
		Month:   int(t.Month()),
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

// Time returns the date as a UTC time.Time. Out-of-range months and days
// are normalized by time.Date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, 0, time.UTC)
}

// Compare orders dates by year, month, day, hour, minute and second.
// The weekday does not take part.
func (d Date) Compare(other Date) int {
	a := [...]int{d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second}
	b := [...]int{other.Year, other.Month, other.Day, other.Hour, other.Minute, other.Second}

	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// WeekdayName returns the English day name, or a marker for a bad weekday
func (d Date) WeekdayName() string {
	if d.Weekday < 0 || d.Weekday >= len(weekdayNames) {
		return "Not a valid weekday"
	}
	return weekdayNames[d.Weekday]
}

func (d Date) String() string {
	return fmt.Sprintf("%s %d/%02d/%02d %02d:%02d:%02d",
		d.WeekdayName(), d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// parseNumber accepts unsigned decimal digits only
func parseNumber(field, value string) (int, error) {
	if value == "" || strings.TrimLeft(value, "0123456789") != "" {
		return 0, &DateError{Field: field, Value: value, Rule: "not a number"}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &DateError{Field: field, Value: value, Rule: "not a number"}
	}
	return n, nil
}

// parseField parses value and checks it against [lo, hi]; hi < 0 means
// no upper bound
func parseField(field, value string, lo, hi int) (int, error) {
	n, err := parseNumber(field, value)
	if err != nil {
		return 0, err
	}

	if n < lo || (hi >= 0 && n > hi) {
		rule := fmt.Sprintf("must be >= %d", lo)
		if hi >= 0 {
			rule = fmt.Sprintf("must be between %d and %d", lo, hi)
		}
		return 0, &DateError{Field: field, Value: value, Rule: rule}
	}
	return n, nil
}
