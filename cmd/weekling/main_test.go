package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/username/weekling/pkg/weekling"
	"gopkg.in/yaml.v3"
)

const testHolidays = `2025-01-01 holiday 0 New Year
2025-W01-4 holiday 0 Day after
2025-W01-6 workday 6 transferred
`

func writeTestConfig(t *testing.T, holidaysFile string) string {
	t.Helper()
	dir := t.TempDir()

	content := "location: UTC\noutput:\n  format: text\nlog:\n  level: error\n"
	if holidaysFile != "" {
		path := filepath.Join(dir, "holidays.txt")
		if err := os.WriteFile(path, []byte(holidaysFile), 0o644); err != nil {
			t.Fatalf("failed to write holidays: %v", err)
		}
		content += "calendar:\n  holidays_file: " + path + "\n"
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func runCommand(t *testing.T, now time.Time, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := newRootCmd(func() time.Time { return now })
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func runJSON(t *testing.T, args ...string) map[string]interface{} {
	t.Helper()
	out, err := runCommand(t, time.Now(), append([]string{"--config", writeTestConfig(t, ""), "-o", "json"}, args...)...)
	if err != nil {
		t.Fatalf("%v: error = %v", args, err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("%v: invalid json: %v\n%s", args, err, out)
	}
	return got
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
		kind  string
	}{
		{"2525-W42-5", "2525-W42-5", "week_day"},
		{"due 2012-W13 sharp", "2012-W13", "week"},
		{"2011", "2011", "year"},
		{"-0012", "-12", "year"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseValue(tt.input)
			if err != nil {
				t.Fatalf("parseValue(%q) error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("parseValue(%q) = %v, want %v", tt.input, got, tt.want)
			}

			var kind string
			switch got.(type) {
			case weekdayValue:
				kind = "week_day"
			case weekValue:
				kind = "week"
			case yearValue:
				kind = "year"
			}
			if kind != tt.kind {
				t.Errorf("parseValue(%q) kind = %v, want %v", tt.input, kind, tt.kind)
			}
		})
	}

	if _, err := parseValue("nothing here"); !errors.Is(err, weekling.ErrParse) {
		t.Errorf("parseValue(%q) error = %v, want ErrParse", "nothing here", err)
	}
}

func TestParseValue_OutOfRange(t *testing.T) {
	// A matching but invalid week must not degrade into a less specific value
	for _, input := range []string{"2011-W53-1", "2011-W53", "due 2014-W53-3"} {
		t.Run(input, func(t *testing.T) {
			got, err := parseValue(input)
			if err == nil {
				t.Fatalf("parseValue(%q) = %v, want error", input, got)
			}
			if !errors.Is(err, weekling.ErrInvalidArgument) {
				t.Errorf("parseValue(%q) error = %v, want ErrInvalidArgument", input, err)
			}
			if errors.Is(err, weekling.ErrParse) {
				t.Errorf("parseValue(%q) error = %v, must not be ErrParse", input, err)
			}

			var indexErr *weekling.WeekIndexError
			if !errors.As(err, &indexErr) || indexErr.Index != 53 {
				t.Errorf("parseValue(%q) error = %v, want WeekIndexError for week 53", input, err)
			}
		})
	}
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		key  string
		want interface{}
	}{
		{"parse week day", []string{"parse", "2525-W42-5"}, "date", "2525-10-19"},
		{"parse week", []string{"parse", "2012-W13"}, "first_date", "2012-03-26"},
		{"parse year weeks", []string{"parse", "2015"}, "weeks", float64(53)},
		{"next week across year", []string{"next", "2015-W53"}, "week", "2016-W01"},
		{"next year", []string{"next", "2011"}, "year", float64(2012)},
		{"prev week day across year", []string{"prev", "2016-W01-1"}, "week_day", "2015-W53-7"},
		{"shift year back", []string{"shift", "2011", "--by=-3"}, "year", float64(2008)},
		{"shift week", []string{"shift", "2015-W52", "--by", "2"}, "week", "2016-W01"},
		{"shift week day default", []string{"shift", "2012-W13-7"}, "week_day", "2012-W14-1"},
		{"convert", []string{"convert", "2021-01-03"}, "week_day", "2020-W53-7"},
		{"weekend type", []string{"convert", "2021-01-03"}, "type", "weekend"},
		{"week year is a number", []string{"parse", "2020-W53"}, "year", float64(2020)},
		{"week day year is a number", []string{"parse", "2016-W01-1"}, "year", float64(2016)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runJSON(t, tt.args...)
			if got[tt.key] != tt.want {
				t.Errorf("%v: %s = %v, want %v", tt.args, tt.key, got[tt.key], tt.want)
			}
		})
	}
}

func TestTodayCommand(t *testing.T) {
	// 23:30 UTC on Friday is still Friday in the configured UTC location
	now := time.Date(2026, time.October, 16, 23, 30, 0, 0, time.UTC)

	out, err := runCommand(t, now, "--config", writeTestConfig(t, ""), "-o", "json", "today")
	if err != nil {
		t.Fatalf("today error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if got["week_day"] != "2026-W42-5" {
		t.Errorf("today week_day = %v, want 2026-W42-5", got["week_day"])
	}
	if got["name"] != "friday" {
		t.Errorf("today name = %v, want friday", got["name"])
	}
}

func TestDaysCommand_WithHolidays(t *testing.T) {
	out, err := runCommand(t, time.Now(), "--config", writeTestConfig(t, testHolidays), "-o", "yaml", "days", "2025-W01")
	if err != nil {
		t.Fatalf("days error = %v", err)
	}

	var got []map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if len(got) != 7 {
		t.Fatalf("days rows = %d, want 7", len(got))
	}

	wantTypes := []string{"workday", "workday", "holiday", "holiday", "workday", "workday", "weekend"}
	for i, want := range wantTypes {
		if got[i]["type"] != want {
			t.Errorf("day %v type = %v, want %v", got[i]["day"], got[i]["type"], want)
		}
	}
	if got[2]["note"] != "New Year" {
		t.Errorf("2025-W01-3 note = %v, want New Year", got[2]["note"])
	}
	if got[5]["hours"] != 6 {
		t.Errorf("2025-W01-6 hours = %v, want 6", got[5]["hours"])
	}
}

func TestWeeksCommand(t *testing.T) {
	out, err := runCommand(t, time.Now(), "--config", writeTestConfig(t, testHolidays), "-o", "json", "weeks", "2025")
	if err != nil {
		t.Fatalf("weeks error = %v", err)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(got) != 52 {
		t.Fatalf("weeks rows = %d, want 52", len(got))
	}

	first := got[0]
	if first["first_date"] != "2024-12-30" {
		t.Errorf("first week first_date = %v, want 2024-12-30", first["first_date"])
	}
	// Mon, Tue, Fri at 8h plus the transferred Saturday at 6h
	if first["working_hours"] != float64(30) {
		t.Errorf("first week working_hours = %v, want 30", first["working_hours"])
	}
	if first["holidays"] != float64(2) {
		t.Errorf("first week holidays = %v, want 2", first["holidays"])
	}
	if got[1]["working_hours"] != float64(40) {
		t.Errorf("second week working_hours = %v, want 40", got[1]["working_hours"])
	}
}

func TestUntilCommand(t *testing.T) {
	out, err := runCommand(t, time.Now(), "--config", writeTestConfig(t, ""), "until", "2015-W51", "2")
	if err != nil {
		t.Fatalf("until error = %v", err)
	}

	for _, want := range []string{"2015-W51", "2015-W52", "2015-W53", "2016-W01", "2016-W02"} {
		if !strings.Contains(out, want) {
			t.Errorf("until output missing %s:\n%s", want, out)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	config := writeTestConfig(t, "")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unparsable value", []string{"--config", config, "next", "soon"}, weekling.ErrParse},
		{"no week for days", []string{"--config", config, "days", "2015"}, weekling.ErrParse},
		{"invalid until index", []string{"--config", config, "until", "2015-W51", "54"}, weekling.ErrInvalidArgument},
		{"parse week 53 of short year", []string{"--config", config, "parse", "2011-W53-1"}, weekling.ErrInvalidArgument},
		{"next week 53 of short year", []string{"--config", config, "next", "2011-W53"}, weekling.ErrInvalidArgument},
		{"prev week 53 of short year", []string{"--config", config, "prev", "2014-W53-3"}, weekling.ErrInvalidArgument},
		{"shift week 53 of short year", []string{"--config", config, "shift", "2011-W53-2", "--by", "3"}, weekling.ErrInvalidArgument},
		{"days of week 53 of short year", []string{"--config", config, "days", "2011-W53"}, weekling.ErrInvalidArgument},
		{"until from week 53 of short year", []string{"--config", config, "until", "2011-W53", "2"}, weekling.ErrInvalidArgument},
		{"shift without number", []string{"--config", config, "shift", "2011", "--by", "x"}, nil},
		{"convert bad date", []string{"--config", config, "convert", "yesterday"}, nil},
		{"bad output format", []string{"--config", config, "-o", "xml", "parse", "2015"}, nil},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "today"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, time.Now(), tt.args...)
			if err == nil {
				t.Fatalf("%v: error = nil, want error", tt.args)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%v: error = %v, want %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestFileLogging(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "weekling.log")
	configPath := filepath.Join(dir, "config.yaml")
	content := "location: UTC\nlog:\n  level: debug\n  file: " + logFile + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := runCommand(t, time.Now(), "--config", configPath, "parse", "2015"); err != nil {
		t.Fatalf("parse error = %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"Configuration loaded"`) {
		t.Errorf("log file missing configuration entry:\n%s", data)
	}
	if !strings.Contains(string(data), `"timestamp"`) {
		t.Errorf("log entries lack timestamp key:\n%s", data)
	}
}
