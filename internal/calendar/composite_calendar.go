package calendar

import (
	"fmt"

	"github.com/username/weekling/pkg/weekling"
	"go.uber.org/zap"
)

// Loader is implemented by calendars that read their data from somewhere
type Loader interface {
	Load() error
}

// CompositeCalendar implements Calendar with fallback strategy
// Primary: usually FileCalendar (explicit holidays and transfers)
// Fallback: usually StandardCalendar (Monday-Friday)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsWorkday checks if the given day is a working day
func (cc *CompositeCalendar) IsWorkday(day weekling.WeekDay) (bool, int, error) {
	dayInfo, err := cc.GetDayInfo(day)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(day weekling.WeekDay) (*DayInfo, error) {
	// Try primary first
	dayInfo, err := cc.primary.GetDayInfo(day)
	if err == nil {
		return dayInfo, nil
	}

	cc.logger.Debug("Primary calendar has no data, using fallback",
		zap.Stringer("day", day),
		zap.Error(err))

	return cc.fallback.GetDayInfo(day)
}

// GetWeekInfo returns calendar info for the entire week, resolving each day
// separately so a partially covered week mixes both calendars
func (cc *CompositeCalendar) GetWeekInfo(week weekling.Week) (*WeekInfo, error) {
	return buildWeekInfo(week, cc.GetDayInfo)
}

// Load loads every member calendar that needs loading
func (cc *CompositeCalendar) Load() error {
	for _, member := range []Calendar{cc.primary, cc.fallback} {
		loader, ok := member.(Loader)
		if !ok {
			continue
		}
		if err := loader.Load(); err != nil {
			return fmt.Errorf("failed to load calendar: %w", err)
		}
	}
	cc.logger.Info("Calendars loaded successfully")
	return nil
}
