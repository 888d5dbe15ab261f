package date

import (
	"fmt"
	"time"
)

// MonthFormat is the format used to represent calendar months as strings.
const MonthFormat = "2006-01"

// Month represents a calendar month of a specific year.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := New(year, month, 1)
	return Month{d.y, d.m}
}

// MonthOf returns the Month containing the given date.
func MonthOf(d Date) Month { return Month{d.y, d.m} }

// ThisMonth returns the current calendar month.
func ThisMonth() Month { return MonthOf(Today()) }

// ParseMonth parses a Month from a "YYYY-MM" string.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	y, m, _ := on.Date()
	return Month{y, m}, nil
}

// Year returns the year of the month.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month in its standard "YYYY-MM" format.
func (m Month) String() string {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC).Format(MonthFormat)
}

// Days returns the number of days in the month. Day zero of the next month
// is the last day of this one, which makes time.Date do the counting.
func (m Month) Days() int { return New(m.y, m.m+1, 0).Day() }

// Date returns the date of the given day in the month, clamped to its
// valid range: day 31 of April resolves to April 30, day 31 of a non-leap
// February to February 28.
func (m Month) Date(day int) Date {
	if day < 1 {
		day = 1
	}
	if last := m.Days(); day > last {
		day = last
	}
	return New(m.y, m.m, day)
}

// Contains reports whether the date falls within the month.
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// Before reports whether the month m is before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}
