package weekling

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/username/weekling/pkg/dateutil"
)

// weekPatternText matches "<year>-W<week>" with a two digit week 01..53
const weekPatternText = `(0|-?\d+)-W(0[1-9]|[1-4]\d|5[0-3])`

var weekPattern = regexp.MustCompile(weekPatternText)

// Week is a week of an ISO 8601 week-numbering year.
//
// Week values are only produced by the constructors below and are always
// valid; the zero Week is not a week and reports IsZero
type Week struct {
	year  Year
	index int
}

// NewWeek returns week index of year. Index must be in 1..52, or 53 for years
// with 53 weeks
func NewWeek(year Year, index int) (Week, error) {
	if index < 1 || index > 53 {
		return Week{}, invalidArgument("week index %d is invalid: index can never be lower than 1 or higher than 53", index)
	}
	if index == 53 && year.WeekCount() == 52 {
		return Week{}, &WeekIndexError{Year: year, Index: index}
	}
	return Week{year: year, index: index}, nil
}

// MustWeek is like NewWeek but panics on invalid input
func MustWeek(year Year, index int) Week {
	w, err := NewWeek(year, index)
	if err != nil {
		panic(err)
	}
	return w
}

// WeekOf returns the ISO week containing the date
func WeekOf(t time.Time) Week {
	year, week := dateutil.ISOWeek(t)
	return Week{year: Year(year), index: week}
}

// CurrentWeek returns the week of the current local date
func CurrentWeek() Week {
	return WeekOf(dateutil.Today(time.Local))
}

// ParseWeek returns the first week found in s, e.g. "2012-W13"
func ParseWeek(s string) (Week, error) {
	match := weekPattern.FindStringSubmatch(s)
	if match == nil {
		return Week{}, &ParseError{Kind: "week", Input: s}
	}

	year, err := strconv.Atoi(match[1])
	if err != nil {
		return Week{}, invalidArgument("year %s is out of range", match[1])
	}
	index, _ := strconv.Atoi(match[2])

	return NewWeek(Year(year), index)
}

// Year returns the week-numbering year the week belongs to
func (w Week) Year() Year {
	return w.year
}

// Index returns the week number within its year, 1..53
func (w Week) Index() int {
	return w.index
}

// IsZero reports whether w is the zero Week
func (w Week) IsZero() bool {
	return w.index == 0
}

// String returns the ISO 8601 form, e.g. "2012-W13" or "-1503-W50"
func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", int(w.year), w.index)
}

// Next returns the following week, crossing into the next year after the
// last week of the year
func (w Week) Next() Week {
	switch {
	case w.index < 52:
		return Week{year: w.year, index: w.index + 1}
	case w.index == 52 && w.year.WeekCount() == 53:
		return Week{year: w.year, index: 53}
	default:
		return Week{year: w.year.Next(), index: 1}
	}
}

// Previous returns the preceding week, crossing into the last week of the
// previous year before week 1
func (w Week) Previous() Week {
	if w.index > 1 {
		return Week{year: w.year, index: w.index - 1}
	}
	previous := w.year.Previous()
	return Week{year: previous, index: previous.WeekCount()}
}

// Add returns the week n weeks later (earlier for negative n). The result is
// the same as calling Next (or Previous) |n| times
func (w Week) Add(n int) Week {
	if n == 0 {
		return w
	}

	cycles := n / dateutil.WeeksPerCycle
	n -= cycles * dateutil.WeeksPerCycle

	year, index, _ := dateutil.AddWeekDateDays(int(w.year), w.index, 1, 7*n)
	return Week{year: Year(year + cycles*dateutil.YearsPerCycle), index: index}
}

// Sub returns the week n weeks earlier (later for negative n)
func (w Week) Sub(n int) Week {
	return w.Add(-n)
}

// UntilIndex returns the range from w to the next week numbered end. When end
// is not after w's index the range ends in the following year
func (w Week) UntilIndex(end int) (WeekRange, error) {
	year := w.year
	if end <= w.index {
		year = year.Next()
	}

	last, err := NewWeek(year, end)
	if err != nil {
		return WeekRange{}, err
	}
	return WeekRange{First: w, Last: last}, nil
}

// IsOdd reports whether the week index is odd
func (w Week) IsOdd() bool {
	return w.index%2 != 0
}

// IsEven reports whether the week index is even
func (w Week) IsEven() bool {
	return w.index%2 == 0
}

// Day returns the day of the week with the given index (1 = Monday .. 7 = Sunday)
func (w Week) Day(index int) (WeekDay, error) {
	return NewWeekDay(w, index)
}

// DayByName returns the day of the week with the given name, e.g. "friday"
func (w Week) DayByName(name string) (WeekDay, error) {
	return NewWeekDayByName(w, name)
}

// Monday through Sunday return the named day of the week
func (w Week) Monday() WeekDay    { return WeekDay{week: w, index: 1} }
func (w Week) Tuesday() WeekDay   { return WeekDay{week: w, index: 2} }
func (w Week) Wednesday() WeekDay { return WeekDay{week: w, index: 3} }
func (w Week) Thursday() WeekDay  { return WeekDay{week: w, index: 4} }
func (w Week) Friday() WeekDay    { return WeekDay{week: w, index: 5} }
func (w Week) Saturday() WeekDay  { return WeekDay{week: w, index: 6} }
func (w Week) Sunday() WeekDay    { return WeekDay{week: w, index: 7} }

// Weekend returns Saturday and Sunday of the week
func (w Week) Weekend() []WeekDay {
	return []WeekDay{w.Saturday(), w.Sunday()}
}

// Days returns Monday through Sunday of the week
func (w Week) Days() []WeekDay {
	days := make([]WeekDay, 0, 7)
	for index := 1; index <= 7; index++ {
		days = append(days, WeekDay{week: w, index: index})
	}
	return days
}

// FirstDate returns the calendar date of the week's Monday
func (w Week) FirstDate() time.Time {
	return w.Monday().ToDate()
}

// LastDate returns the calendar date of the week's Sunday
func (w Week) LastDate() time.Time {
	return dateutil.EndOfWeek(w.FirstDate())
}

// Compare orders weeks by year, then by index
func (w Week) Compare(other Week) int {
	if c := w.year.Compare(other.year); c != 0 {
		return c
	}
	switch {
	case w.index < other.index:
		return -1
	case w.index > other.index:
		return 1
	default:
		return 0
	}
}

// Equal reports whether w and other are the same week
func (w Week) Equal(other Week) bool {
	return w == other
}

// Before reports whether w is earlier than other
func (w Week) Before(other Week) bool {
	return w.Compare(other) < 0
}

// After reports whether w is later than other
func (w Week) After(other Week) bool {
	return w.Compare(other) > 0
}

// MarshalText implements encoding.TextMarshaler
func (w Week) MarshalText() ([]byte, error) {
	if w.IsZero() {
		return nil, invalidArgument("cannot marshal zero week")
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *Week) UnmarshalText(text []byte) error {
	parsed, err := ParseWeek(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
