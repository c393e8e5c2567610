package weekling

import (
	"regexp"
	"strconv"
	"time"

	"github.com/username/weekling/pkg/dateutil"
)

var yearPattern = regexp.MustCompile(`(0|-?\d+)`)

// Year is an ISO 8601 week-numbering year. Every integer is a valid year
type Year int

// YearOf returns the ISO week-numbering year of the date, which differs from
// the calendar year for a few days around January 1st
func YearOf(t time.Time) Year {
	year, _ := dateutil.ISOWeek(t)
	return Year(year)
}

// CurrentYear returns the week-numbering year of the current local date
func CurrentYear() Year {
	return YearOf(dateutil.Today(time.Local))
}

// ParseYear returns the first year found in s, e.g. "2011" or "-1503"
func ParseYear(s string) (Year, error) {
	match := yearPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, &ParseError{Kind: "year", Input: s}
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, invalidArgument("year %s is out of range", match[1])
	}

	return Year(index), nil
}

// Int returns the year as an int
func (y Year) Int() int {
	return int(y)
}

// String returns the year in decimal, e.g. "2011" or "-1503"
func (y Year) String() string {
	return strconv.Itoa(int(y))
}

// Next returns the following year
func (y Year) Next() Year {
	return y + 1
}

// Previous returns the preceding year
func (y Year) Previous() Year {
	return y - 1
}

// Add returns the year n years later (earlier for negative n)
func (y Year) Add(n int) Year {
	return y + Year(n)
}

// Sub returns the year n years earlier (later for negative n)
func (y Year) Sub(n int) Year {
	return y - Year(n)
}

// IsOdd reports whether the year number is odd
func (y Year) IsOdd() bool {
	return y%2 != 0
}

// IsEven reports whether the year number is even
func (y Year) IsEven() bool {
	return y%2 == 0
}

// IsLeap reports whether the calendar year with the same number is a leap year
func (y Year) IsLeap() bool {
	return dateutil.IsLeapYear(int(y))
}

// WeekCount returns the number of ISO weeks in the year: 52 or 53
// The count repeats every 400 years, so any year is supported
func (y Year) WeekCount() int {
	return dateutil.WeeksInYear(int(y))
}

// Week returns the week of the year with the given index
func (y Year) Week(index int) (Week, error) {
	return NewWeek(y, index)
}

// Weeks returns all weeks of the year in ascending order
func (y Year) Weeks() []Week {
	count := y.WeekCount()
	weeks := make([]Week, 0, count)
	for index := 1; index <= count; index++ {
		weeks = append(weeks, Week{year: y, index: index})
	}
	return weeks
}

// Compare returns -1, 0 or +1 depending on whether y is before, equal to or
// after other
func (y Year) Compare(other Year) int {
	switch {
	case y < other:
		return -1
	case y > other:
		return 1
	default:
		return 0
	}
}

// Equal reports whether y and other are the same year
func (y Year) Equal(other Year) bool {
	return y == other
}

// Before reports whether y is earlier than other
func (y Year) Before(other Year) bool {
	return y < other
}

// After reports whether y is later than other
func (y Year) After(other Year) bool {
	return y > other
}

// MarshalText implements encoding.TextMarshaler
func (y Year) MarshalText() ([]byte, error) {
	return []byte(y.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (y *Year) UnmarshalText(text []byte) error {
	parsed, err := ParseYear(string(text))
	if err != nil {
		return err
	}
	*y = parsed
	return nil
}
