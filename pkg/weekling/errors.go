package weekling

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification
var (
	// ErrInvalidArgument is returned by constructors for out-of-range indexes,
	// unknown day names and malformed input
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrParse is returned when no value can be found in the parsed text
	ErrParse = errors.New("parse error")
)

// WeekIndexError reports week index 53 requested for a year with only 52 weeks
type WeekIndexError struct {
	Year  Year
	Index int
}

// Error implements error
func (e *WeekIndexError) Error() string {
	return fmt.Sprintf("week index %d is invalid: year %s has only 52 weeks", e.Index, e.Year)
}

// Unwrap returns ErrInvalidArgument
func (e *WeekIndexError) Unwrap() error {
	return ErrInvalidArgument
}

// ParseError reports text in which no value of the wanted kind was found
type ParseError struct {
	Kind  string // "year", "week" or "week day"
	Input string
}

// Error implements error
func (e *ParseError) Error() string {
	return fmt.Sprintf("no %s found for parsing", e.Kind)
}

// Unwrap returns ErrParse
func (e *ParseError) Unwrap() error {
	return ErrParse
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
