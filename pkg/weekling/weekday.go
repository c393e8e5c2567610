package weekling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/username/weekling/pkg/dateutil"
)

var weekDayPattern = regexp.MustCompile(weekPatternText + `-([1-7])`)

// dayNames maps day index-1 to the day's name
var dayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekDay is a day of an ISO week, indexed 1 (Monday) through 7 (Sunday)
type WeekDay struct {
	week  Week
	index int
}

// NewWeekDay returns day index of week
func NewWeekDay(week Week, index int) (WeekDay, error) {
	if week.IsZero() {
		return WeekDay{}, invalidArgument("week must not be zero")
	}
	if index < 1 || index > 7 {
		return WeekDay{}, invalidArgument("day index %d is invalid: index must be in 1..7", index)
	}
	return WeekDay{week: week, index: index}, nil
}

// NewWeekDayByName returns the day of week with the given name, e.g. "friday"
func NewWeekDayByName(week Week, name string) (WeekDay, error) {
	index, err := DayIndex(name)
	if err != nil {
		return WeekDay{}, err
	}
	return NewWeekDay(week, index)
}

// WeekDayAt returns day dayIndex of week weekIndex of year
func WeekDayAt(year Year, weekIndex, dayIndex int) (WeekDay, error) {
	week, err := NewWeek(year, weekIndex)
	if err != nil {
		return WeekDay{}, err
	}
	return NewWeekDay(week, dayIndex)
}

// MustWeekDay is like WeekDayAt but panics on invalid input
func MustWeekDay(year Year, weekIndex, dayIndex int) WeekDay {
	d, err := WeekDayAt(year, weekIndex, dayIndex)
	if err != nil {
		panic(err)
	}
	return d
}

// WeekDayOf returns the week day of the date
func WeekDayOf(t time.Time) WeekDay {
	return WeekDay{week: WeekOf(t), index: dateutil.ISOWeekday(t)}
}

// WeekDayOfDate returns the week day of a calendar date given by its parts
// Unlike WeekDayOf it is not limited to the range of time.Time
func WeekDayOfDate(year int, month time.Month, day int) WeekDay {
	isoYear, week, weekday := dateutil.ISOWeekDate(year, month, day)
	return WeekDay{week: Week{year: Year(isoYear), index: week}, index: weekday}
}

// Today returns the week day of the current local date
func Today() WeekDay {
	return WeekDayOf(dateutil.Today(time.Local))
}

// DayIndex returns the index (1..7) of a day name. Names are matched case
// insensitively
func DayIndex(name string) (int, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, dayName := range dayNames {
		if dayName == lower {
			return i + 1, nil
		}
	}
	return 0, invalidArgument("invalid day name %q", name)
}

// ParseWeekDay returns the first week day found in s, e.g. "2525-W42-5"
func ParseWeekDay(s string) (WeekDay, error) {
	match := weekDayPattern.FindStringSubmatch(s)
	if match == nil {
		return WeekDay{}, &ParseError{Kind: "week day", Input: s}
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return WeekDay{}, invalidArgument("year %s is out of range", match[1])
	}
	weekIndex, _ := strconv.Atoi(match[2])
	dayIndex, _ := strconv.Atoi(match[3])

	return WeekDayAt(Year(year), weekIndex, dayIndex)
}

// Week returns the week the day belongs to
func (d WeekDay) Week() Week {
	return d.week
}

// Year returns the week-numbering year of the day
func (d WeekDay) Year() Year {
	return d.week.year
}

// Index returns the day number within its week, 1 (Monday) to 7 (Sunday)
func (d WeekDay) Index() int {
	return d.index
}

// IsZero reports whether d is the zero WeekDay
func (d WeekDay) IsZero() bool {
	return d.index == 0
}

// String returns the ISO 8601 form, e.g. "2011-W30-3"
func (d WeekDay) String() string {
	return fmt.Sprintf("%s-%d", d.week, d.index)
}

// Name returns the lower case English name of the day, e.g. "monday"
func (d WeekDay) Name() string {
	if d.IsZero() {
		return ""
	}
	return dayNames[d.index-1]
}

// Weekday returns the day as a time.Weekday
func (d WeekDay) Weekday() time.Weekday {
	return time.Weekday(d.index % 7)
}

// ToDate returns the calendar date of the day at midnight UTC
// Years beyond the range of time.Time cannot be represented, use Date for those
func (d WeekDay) ToDate() time.Time {
	return dateutil.WeekDate(int(d.week.year), d.week.index, d.index)
}

// Date returns the calendar year, month and day of the day, for any year
func (d WeekDay) Date() (year int, month time.Month, day int) {
	return dateutil.WeekDateParts(int(d.week.year), d.week.index, d.index)
}

// Next returns the following day, crossing into the next week after Sunday
func (d WeekDay) Next() WeekDay {
	if d.index == 7 {
		return WeekDay{week: d.week.Next(), index: 1}
	}
	return WeekDay{week: d.week, index: d.index + 1}
}

// Previous returns the preceding day, crossing into the previous week before
// Monday
func (d WeekDay) Previous() WeekDay {
	if d.index == 1 {
		return WeekDay{week: d.week.Previous(), index: 7}
	}
	return WeekDay{week: d.week, index: d.index - 1}
}

// Add returns the day n days later (earlier for negative n). The result is the
// same as calling Next (or Previous) |n| times
func (d WeekDay) Add(n int) WeekDay {
	if n == 0 {
		return d
	}

	year, week, index := dateutil.AddWeekDateDays(int(d.week.year), d.week.index, d.index, n)
	return WeekDay{week: Week{year: Year(year), index: week}, index: index}
}

// Sub returns the day n days earlier (later for negative n)
func (d WeekDay) Sub(n int) WeekDay {
	return d.Add(-n)
}

// IsMonday through IsSunday report whether the day is the named one
func (d WeekDay) IsMonday() bool    { return d.index == 1 }
func (d WeekDay) IsTuesday() bool   { return d.index == 2 }
func (d WeekDay) IsWednesday() bool { return d.index == 3 }
func (d WeekDay) IsThursday() bool  { return d.index == 4 }
func (d WeekDay) IsFriday() bool    { return d.index == 5 }
func (d WeekDay) IsSaturday() bool  { return d.index == 6 }
func (d WeekDay) IsSunday() bool    { return d.index == 7 }

// IsWeekend reports whether the day is Saturday or Sunday
func (d WeekDay) IsWeekend() bool {
	return d.IsSaturday() || d.IsSunday()
}

// Compare orders days by week, then by index
func (d WeekDay) Compare(other WeekDay) int {
	if c := d.week.Compare(other.week); c != 0 {
		return c
	}
	switch {
	case d.index < other.index:
		return -1
	case d.index > other.index:
		return 1
	default:
		return 0
	}
}

// Equal reports whether d and other are the same day
func (d WeekDay) Equal(other WeekDay) bool {
	return d == other
}

// Before reports whether d is earlier than other
func (d WeekDay) Before(other WeekDay) bool {
	return d.Compare(other) < 0
}

// After reports whether d is later than other
func (d WeekDay) After(other WeekDay) bool {
	return d.Compare(other) > 0
}

// MarshalText implements encoding.TextMarshaler
func (d WeekDay) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, invalidArgument("cannot marshal zero week day")
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *WeekDay) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekDay(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
