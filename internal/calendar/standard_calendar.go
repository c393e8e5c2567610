package calendar

import (
	"github.com/username/weekling/pkg/dateutil"
	"github.com/username/weekling/pkg/weekling"
)

const defaultWorkdayHours = 8

// StandardCalendar treats Monday-Friday as working days and the weekend as days off
type StandardCalendar struct {
	workdayHours int
}

// NewStandardCalendar creates a calendar with the given hours per working day
func NewStandardCalendar(workdayHours int) *StandardCalendar {
	if workdayHours <= 0 {
		workdayHours = defaultWorkdayHours
	}
	return &StandardCalendar{workdayHours: workdayHours}
}

// IsWorkday checks if the given day is a working day
func (sc *StandardCalendar) IsWorkday(day weekling.WeekDay) (bool, int, error) {
	dayInfo, err := sc.GetDayInfo(day)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (sc *StandardCalendar) GetDayInfo(day weekling.WeekDay) (*DayInfo, error) {
	dayInfo := &DayInfo{
		Day:  day,
		Date: day.ToDate(),
	}

	if dateutil.IsWeekend(dayInfo.Date) {
		dayInfo.Type = DayTypeWeekend
		return dayInfo, nil
	}

	dayInfo.Type = DayTypeWorkday
	dayInfo.WorkingHours = sc.workdayHours
	dayInfo.IsWorkday = true
	return dayInfo, nil
}

// GetWeekInfo returns calendar info for the entire week
func (sc *StandardCalendar) GetWeekInfo(week weekling.Week) (*WeekInfo, error) {
	return buildWeekInfo(week, sc.GetDayInfo)
}
