package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/username/weekling/pkg/dateutil"
	"github.com/username/weekling/pkg/weekling"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar interface using a local text file
type FileCalendar struct {
	filePath       string
	logger         *zap.Logger
	workdayHours   int
	shortenedHours int
	mu             sync.RWMutex
	days           map[weekling.WeekDay]*DayInfo
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath:       filePath,
		logger:         logger,
		workdayHours:   defaultWorkdayHours,
		shortenedHours: defaultWorkdayHours - 1,
		days:           make(map[weekling.WeekDay]*DayInfo),
	}
}

// SetDefaultHours sets the hours used for lines that omit them
func (fc *FileCalendar) SetDefaultHours(workday, shortened int) {
	if workday > 0 {
		fc.workdayHours = workday
	}
	if shortened > 0 {
		fc.shortenedHours = shortened
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	days := make(map[weekling.WeekDay]*DayInfo)
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dayInfo, err := fc.parseCalendarLine(line)
		if err != nil {
			fc.logger.Warn("Skipping calendar line",
				zap.String("file", fc.filePath),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		if _, exists := days[dayInfo.Day]; exists {
			fc.logger.Warn("Duplicate calendar day, last entry wins",
				zap.Stringer("day", dayInfo.Day),
				zap.Int("line", lineNo))
		}
		days[dayInfo.Day] = dayInfo
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.mu.Lock()
	fc.days = days
	fc.mu.Unlock()

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(days)))

	return nil
}

// parseCalendarLine parses one calendar entry
// Format: <YYYY-MM-DD|YYYY-Www-D> type [working_hours [note]]
// A note always follows explicit hours, so the third field is never part of the note
// Example: 2025-05-09 holiday 0 1945 memorial
func (fc *FileCalendar) parseCalendarLine(line string) (*DayInfo, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid line format: %q", line)
	}

	day, err := parseCalendarDay(parts[0])
	if err != nil {
		return nil, err
	}

	dayType, err := ParseDayType(parts[1])
	if err != nil {
		return nil, err
	}

	hours := fc.defaultHours(dayType)
	rest := parts[2:]
	if len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil || n < 0 || n > 24 {
			return nil, fmt.Errorf("invalid working hours %q: hours must precede the note", rest[0])
		}
		hours = n
		rest = rest[1:]
	}

	return &DayInfo{
		Day:          day,
		Date:         day.ToDate(),
		Type:         dayType,
		WorkingHours: hours,
		IsWorkday:    dayType.IsWorkday(),
		Note:         strings.Join(rest, " "),
	}, nil
}

func (fc *FileCalendar) defaultHours(dayType DayType) int {
	switch dayType {
	case DayTypeWorkday:
		return fc.workdayHours
	case DayTypeShortened:
		return fc.shortenedHours
	default:
		return 0
	}
}

// parseCalendarDay accepts either a week date or a calendar date
func parseCalendarDay(key string) (weekling.WeekDay, error) {
	if strings.Contains(key, "-W") {
		return weekling.ParseWeekDay(key)
	}

	date, err := dateutil.ParseDate(key)
	if err != nil {
		return weekling.WeekDay{}, err
	}
	return weekling.WeekDayOf(date), nil
}

// IsWorkday checks if the given day is a working day
func (fc *FileCalendar) IsWorkday(day weekling.WeekDay) (bool, int, error) {
	dayInfo, err := fc.GetDayInfo(day)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(day weekling.WeekDay) (*DayInfo, error) {
	fc.mu.RLock()
	dayInfo, ok := fc.days[day]
	fc.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, day)
	}

	info := *dayInfo
	return &info, nil
}

// GetWeekInfo returns calendar info for the entire week. Every day of the
// week must be present in the file
func (fc *FileCalendar) GetWeekInfo(week weekling.Week) (*WeekInfo, error) {
	return buildWeekInfo(week, fc.GetDayInfo)
}
