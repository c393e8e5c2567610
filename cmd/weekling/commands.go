package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/weekling/internal/report"
	"github.com/username/weekling/pkg/dateutil"
	"github.com/username/weekling/pkg/weekling"
	"go.uber.org/zap"
)

func todayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the current year, week and week day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := weekling.WeekDayOf(dateutil.TodayAt(a.now(), a.location))
			return a.printValue(cmd, weekdayValue{today})
		},
	}
}

func parseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Find a week day, week or year in text and describe it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			return a.printValue(cmd, value)
		},
	}
}

func nextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "next <text>",
		Short: "Show the year, week or week day that follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			return a.printValue(cmd, value.Next())
		},
	}
}

func prevCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prev <text>",
		Aliases: []string{"previous"},
		Short:   "Show the year, week or week day that precedes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			return a.printValue(cmd, value.Previous())
		},
	}
}

func shiftCmd(a *app) *cobra.Command {
	var by int

	cmd := &cobra.Command{
		Use:   "shift <text>",
		Short: "Move a year, week or week day by N units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("Shifting value",
				zap.Stringer("value", value),
				zap.Int("by", by))
			return a.printValue(cmd, value.Add(by))
		},
	}

	cmd.Flags().IntVar(&by, "by", 1, "Number of units to move (negative moves back)")
	return cmd
}

func convertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a calendar date to its ISO year, week and week day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := dateutil.ParseDate(args[0])
			if err != nil {
				return err
			}
			return a.printValue(cmd, weekdayValue{weekling.WeekDayOf(date)})
		},
	}
}

func weeksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks <year>",
		Short: "List all weeks of a year with working-day totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := weekling.ParseYear(args[0])
			if err != nil {
				return err
			}

			records := make([]report.Record, 0, year.WeekCount())
			for _, week := range year.Weeks() {
				weekInfo, err := a.calendar.GetWeekInfo(week)
				if err != nil {
					return fmt.Errorf("failed to get calendar for %s: %w", week, err)
				}
				records = append(records, report.Record{
					{Key: "week", Value: week},
					{Key: "first_date", Value: dateutil.FormatDate(week.FirstDate())},
					{Key: "last_date", Value: dateutil.FormatDate(week.LastDate())},
					{Key: "work_days", Value: weekInfo.WorkDays},
					{Key: "holidays", Value: weekInfo.Holidays},
					{Key: "working_hours", Value: weekInfo.WorkingHours},
				})
			}

			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.PrintTable(records)
		},
	}
}

func daysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "days <week>",
		Short: "List the seven days of a week with their calendar classification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekling.ParseWeek(args[0])
			if err != nil {
				return err
			}

			weekInfo, err := a.calendar.GetWeekInfo(week)
			if err != nil {
				return fmt.Errorf("failed to get calendar for %s: %w", week, err)
			}

			records := make([]report.Record, 0, len(weekInfo.Days))
			for _, day := range weekInfo.Days {
				records = append(records, report.Record{
					{Key: "day", Value: day.Day},
					{Key: "name", Value: day.Day.Name()},
					{Key: "date", Value: dateutil.FormatDate(day.Date)},
					{Key: "type", Value: day.Type.String()},
					{Key: "hours", Value: day.WorkingHours},
					{Key: "note", Value: day.Note},
				})
			}

			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.PrintTable(records)
		},
	}
}

func untilCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "until <week> <index>",
		Short: "List weeks from a week up to the next week with the given index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := weekling.ParseWeek(args[0])
			if err != nil {
				return err
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid week index %q: %w", args[1], err)
			}

			weekRange, err := week.UntilIndex(end)
			if err != nil {
				return err
			}

			records := make([]report.Record, 0, weekRange.Len())
			for _, w := range weekRange.Weeks() {
				records = append(records, report.Record{
					{Key: "week", Value: w},
					{Key: "first_date", Value: dateutil.FormatDate(w.FirstDate())},
					{Key: "last_date", Value: dateutil.FormatDate(w.LastDate())},
				})
			}

			p, err := a.printer(cmd)
			if err != nil {
				return err
			}
			return p.PrintTable(records)
		},
	}
}

func (a *app) printValue(cmd *cobra.Command, v value) error {
	record, err := a.describe(v)
	if err != nil {
		return err
	}

	p, err := a.printer(cmd)
	if err != nil {
		return err
	}
	return p.PrintRecord(record)
}
