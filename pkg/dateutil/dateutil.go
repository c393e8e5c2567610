package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date format
const DateLayout = "2006-01-02"

// The proleptic Gregorian calendar repeats every 400 years, weekdays and ISO
// weeks included
const (
	YearsPerCycle = 400
	DaysPerCycle  = 146097
	WeeksPerCycle = DaysPerCycle / 7
)

// cycleBase is the first year of the cycle used for time.Time computations
const cycleBase = 2000

// reduceYear maps year onto the equivalent year in [2000, 2400) and returns
// the multiple of 400 years that was removed
func reduceYear(year int) (reduced, shift int) {
	offset := year % YearsPerCycle
	if offset < 0 {
		offset += YearsPerCycle
	}
	reduced = cycleBase + offset
	return reduced, year - reduced
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// DateOf returns midnight UTC of the given proleptic Gregorian date
func DateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(AddDays(date, 1-ISOWeekday(date)))
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	return AddDays(StartOfWeek(date), 6)
}

// ISOWeek returns the ISO 8601 week-numbering year and week for the given date
func ISOWeek(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// ISOWeekday returns the ISO 8601 weekday ordinal (Monday = 1 .. Sunday = 7)
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// AddDays shifts the date by n calendar days
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// WeeksInYear returns the number of ISO weeks (52 or 53) of the week-numbering year
// December 31 either belongs to the last week of the year or to week 1 of the
// next one; in the latter case the week before it is the last one
func WeeksInYear(year int) int {
	reduced, _ := reduceYear(year)
	date := DateOf(reduced, time.December, 31)
	if _, week := ISOWeek(date); week == 1 {
		date = AddDays(date, -7)
	}
	_, week := ISOWeek(date)
	return week
}

// WeekDate returns the calendar date of the ISO week date year-Wweek-day
// Arguments are not validated, and the year must lie within the range of time.Time
func WeekDate(year, week, day int) time.Time {
	jan1 := DateOf(year, time.January, 1)

	days := 7 * week
	if _, jan1Week := ISOWeek(jan1); jan1Week == 1 {
		// January 1st already sits in week 1
		days -= 7
	}
	days -= ISOWeekday(jan1)
	days += day

	return AddDays(jan1, days)
}

// WeekDateParts returns the calendar date of year-Wweek-day as year, month and
// day. It works for any year
func WeekDateParts(year, week, day int) (int, time.Month, int) {
	reduced, shift := reduceYear(year)
	date := WeekDate(reduced, week, day)
	return date.Year() + shift, date.Month(), date.Day()
}

// ISOWeekDate returns the ISO week-numbering year, week and weekday of a
// calendar date. It works for any year
func ISOWeekDate(year int, month time.Month, day int) (isoYear, week, weekday int) {
	reduced, shift := reduceYear(year)
	date := DateOf(reduced, month, day)
	isoYear, week = ISOWeek(date)
	return isoYear + shift, week, ISOWeekday(date)
}

// AddWeekDateDays moves the week date year-Wweek-day by n days and returns the
// resulting week date. It works for any year and any n
func AddWeekDateDays(year, week, day, n int) (int, int, int) {
	cycles := n / DaysPerCycle
	n -= cycles * DaysPerCycle

	reduced, shift := reduceYear(year)
	date := AddDays(WeekDate(reduced, week, day), n)
	isoYear, isoWeek := ISOWeek(date)

	return isoYear + shift + cycles*YearsPerCycle, isoWeek, ISOWeekday(date)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", dateStr)
}

// Today returns today's date (start of day) in the given location
func Today(loc *time.Location) time.Time {
	return TodayAt(time.Now(), loc)
}

// TodayAt returns the date (start of day) of the instant now in the given location
func TodayAt(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return StartOfDay(now.In(loc))
}
