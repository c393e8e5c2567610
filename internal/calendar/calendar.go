package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/username/weekling/pkg/weekling"
)

// ErrDayNotFound is returned when a calendar has no data for a day
var ErrDayNotFound = errors.New("day not found in calendar")

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

var dayTypeNames = map[DayType]string{
	DayTypeWorkday:   "workday",
	DayTypeWeekend:   "weekend",
	DayTypeHoliday:   "holiday",
	DayTypeShortened: "shortened",
}

func (t DayType) String() string {
	if name, ok := dayTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DayType(%d)", int(t))
}

// IsWorkday reports whether days of this type are worked
func (t DayType) IsWorkday() bool {
	return t == DayTypeWorkday || t == DayTypeShortened
}

// ParseDayType parses "workday", "weekend", "holiday" or "shortened"
func ParseDayType(s string) (DayType, error) {
	lower := strings.ToLower(s)
	for dayType, name := range dayTypeNames {
		if name == lower {
			return dayType, nil
		}
	}
	return 0, fmt.Errorf("unknown day type: %s", s)
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Day          weekling.WeekDay
	Date         time.Time
	Type         DayType
	WorkingHours int
	IsWorkday    bool
	Note         string
}

// WeekInfo represents calendar information for an ISO week
type WeekInfo struct {
	Week         weekling.Week
	WorkingHours int // Total working hours in the week
	WorkDays     int
	Weekends     int
	Holidays     int
	Days         []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given day is a working day
	IsWorkday(day weekling.WeekDay) (bool, int, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(day weekling.WeekDay) (*DayInfo, error)

	// GetWeekInfo returns calendar info for the entire week
	GetWeekInfo(week weekling.Week) (*WeekInfo, error)
}

// buildWeekInfo collects the seven days of a week and sums them up
func buildWeekInfo(week weekling.Week, dayInfo func(weekling.WeekDay) (*DayInfo, error)) (*WeekInfo, error) {
	weekInfo := &WeekInfo{
		Week: week,
		Days: make([]DayInfo, 0, 7),
	}

	for _, day := range week.Days() {
		info, err := dayInfo(day)
		if err != nil {
			return nil, fmt.Errorf("week %s: %w", week, err)
		}

		weekInfo.Days = append(weekInfo.Days, *info)

		switch {
		case info.IsWorkday:
			weekInfo.WorkDays++
			weekInfo.WorkingHours += info.WorkingHours
		case info.Type == DayTypeWeekend:
			weekInfo.Weekends++
		case info.Type == DayTypeHoliday:
			weekInfo.Holidays++
		}
	}

	return weekInfo, nil
}
