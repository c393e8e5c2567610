package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/weekling/internal/calendar"
	"github.com/username/weekling/internal/config"
	"github.com/username/weekling/internal/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// app holds the state shared by all commands of one invocation
type app struct {
	configPath string
	output     string
	now        func() time.Time

	cfg      *config.Config
	logger   *zap.Logger
	location *time.Location
	calendar calendar.Calendar
}

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(now func() time.Time) *cobra.Command {
	a := &app{
		now:    now,
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "weekling",
		Short: "ISO 8601 week date calculator",
		Long:  "Parse, convert and step through ISO 8601 years, weeks and week days, with working-day calendar support",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: search ., $HOME/.weekling, /etc/weekling)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Output format: text, json or yaml (overrides output.format)")

	rootCmd.AddCommand(todayCmd(a))
	rootCmd.AddCommand(parseCmd(a))
	rootCmd.AddCommand(nextCmd(a))
	rootCmd.AddCommand(prevCmd(a))
	rootCmd.AddCommand(shiftCmd(a))
	rootCmd.AddCommand(convertCmd(a))
	rootCmd.AddCommand(weeksCmd(a))
	rootCmd.AddCommand(daysCmd(a))
	rootCmd.AddCommand(untilCmd(a))

	return rootCmd
}

// setup loads the config and builds the logger and calendar
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	if cfg.Log.File != "" {
		a.logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
	} else {
		a.logger, err = initLogger(cfg.Log.Level)
		if err != nil {
			return err
		}
	}

	a.location, err = cfg.GetLocation()
	if err != nil {
		return fmt.Errorf("invalid location: %w", err)
	}

	a.calendar, err = a.initCalendar()
	if err != nil {
		return err
	}

	a.logger.Debug("Configuration loaded",
		zap.String("location", a.location.String()),
		zap.String("holidays_file", cfg.Calendar.HolidaysFile),
		zap.String("format", a.format()))

	return nil
}

func (a *app) initCalendar() (calendar.Calendar, error) {
	standard := calendar.NewStandardCalendar(a.cfg.Calendar.WorkdayHours)
	if a.cfg.Calendar.HolidaysFile == "" {
		a.logger.Debug("Using standard Monday-Friday calendar")
		return standard, nil
	}

	file := calendar.NewFileCalendar(a.cfg.Calendar.HolidaysFile, a.logger)
	file.SetDefaultHours(a.cfg.Calendar.WorkdayHours, a.cfg.Calendar.ShortenedHours)

	composite := calendar.NewCompositeCalendar(file, standard, a.logger)
	if err := composite.Load(); err != nil {
		return nil, err
	}
	return composite, nil
}

// format returns the output format, the --output flag taking precedence
func (a *app) format() string {
	if a.output != "" {
		return a.output
	}
	return a.cfg.Output.Format
}

func (a *app) printer(cmd *cobra.Command) (*report.Printer, error) {
	return report.NewPrinter(cmd.OutOrStdout(), a.format())
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return zapcore.WarnLevel
	}
	return zapLevel
}
