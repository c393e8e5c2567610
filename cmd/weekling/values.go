package main

import (
	"errors"
	"fmt"

	"github.com/username/weekling/internal/report"
	"github.com/username/weekling/pkg/dateutil"
	"github.com/username/weekling/pkg/weekling"
)

// value is a parsed year, week or week day
type value interface {
	fmt.Stringer
	Next() value
	Previous() value
	Add(n int) value
}

type yearValue struct{ weekling.Year }

func (v yearValue) Next() value     { return yearValue{v.Year.Next()} }
func (v yearValue) Previous() value { return yearValue{v.Year.Previous()} }
func (v yearValue) Add(n int) value { return yearValue{v.Year.Add(n)} }

type weekValue struct{ weekling.Week }

func (v weekValue) Next() value     { return weekValue{v.Week.Next()} }
func (v weekValue) Previous() value { return weekValue{v.Week.Previous()} }
func (v weekValue) Add(n int) value { return weekValue{v.Week.Add(n)} }

type weekdayValue struct{ weekling.WeekDay }

func (v weekdayValue) Next() value     { return weekdayValue{v.WeekDay.Next()} }
func (v weekdayValue) Previous() value { return weekdayValue{v.WeekDay.Previous()} }
func (v weekdayValue) Add(n int) value { return weekdayValue{v.WeekDay.Add(n)} }

// parseValue finds the most specific value in text: a week day, then a
// week, then a year. Only a failed match falls through to the next kind;
// a match that is out of range is reported as is
func parseValue(text string) (value, error) {
	day, err := weekling.ParseWeekDay(text)
	if err == nil {
		return weekdayValue{day}, nil
	}
	if !errors.Is(err, weekling.ErrParse) {
		return nil, err
	}

	week, err := weekling.ParseWeek(text)
	if err == nil {
		return weekValue{week}, nil
	}
	if !errors.Is(err, weekling.ErrParse) {
		return nil, err
	}

	year, err := weekling.ParseYear(text)
	if err == nil {
		return yearValue{year}, nil
	}
	if !errors.Is(err, weekling.ErrParse) {
		return nil, err
	}

	return nil, fmt.Errorf("%w: no year, week or week day in %q", weekling.ErrParse, text)
}

func parity(odd bool) string {
	if odd {
		return "odd"
	}
	return "even"
}

// describe builds the output record for a value
func (a *app) describe(v value) (report.Record, error) {
	switch v := v.(type) {
	case yearValue:
		weeks := v.Weeks()
		return report.Record{
			{Key: "kind", Value: "year"},
			{Key: "year", Value: v.Year.Int()},
			{Key: "weeks", Value: v.WeekCount()},
			{Key: "leap", Value: v.IsLeap()},
			{Key: "parity", Value: parity(v.IsOdd())},
			{Key: "first_date", Value: dateutil.FormatDate(weeks[0].FirstDate())},
			{Key: "last_date", Value: dateutil.FormatDate(weeks[len(weeks)-1].LastDate())},
		}, nil

	case weekValue:
		weekInfo, err := a.calendar.GetWeekInfo(v.Week)
		if err != nil {
			return nil, fmt.Errorf("failed to get calendar for %s: %w", v, err)
		}
		return report.Record{
			{Key: "kind", Value: "week"},
			{Key: "week", Value: v.Week},
			{Key: "year", Value: v.Year().Int()},
			{Key: "index", Value: v.Index()},
			{Key: "parity", Value: parity(v.IsOdd())},
			{Key: "first_date", Value: dateutil.FormatDate(v.FirstDate())},
			{Key: "last_date", Value: dateutil.FormatDate(v.LastDate())},
			{Key: "work_days", Value: weekInfo.WorkDays},
			{Key: "working_hours", Value: weekInfo.WorkingHours},
		}, nil

	case weekdayValue:
		dayInfo, err := a.calendar.GetDayInfo(v.WeekDay)
		if err != nil {
			return nil, fmt.Errorf("failed to get calendar for %s: %w", v, err)
		}
		return report.Record{
			{Key: "kind", Value: "week_day"},
			{Key: "week_day", Value: v.WeekDay},
			{Key: "name", Value: v.Name()},
			{Key: "week", Value: v.Week()},
			{Key: "year", Value: v.Year().Int()},
			{Key: "index", Value: v.Index()},
			{Key: "date", Value: dateutil.FormatDate(v.ToDate())},
			{Key: "weekend", Value: v.IsWeekend()},
			{Key: "type", Value: dayInfo.Type.String()},
			{Key: "working_hours", Value: dayInfo.WorkingHours},
			{Key: "note", Value: dayInfo.Note},
		}, nil
	}

	return nil, fmt.Errorf("unsupported value %T", v)
}
