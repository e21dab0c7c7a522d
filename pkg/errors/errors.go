package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord   = errors.New("malformed record")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingField      = errors.New("missing required field")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInvalidExpression = errors.New("invalid filter expression")
	ErrInvalidLimit      = errors.New("invalid limit")
	ErrLogNotFound       = errors.New("log file not found")
	ErrClearNotConfirmed = errors.New("clear not confirmed")
	ErrConfigNotFound    = errors.New("config not found")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotImplemented    = errors.New("not implemented")
)

func NewMalformedRecordError(line string, tokens int) error {
	return fmt.Errorf("%w: %d of 4 required fields in %q", ErrMalformedRecord, tokens, line)
}

func NewDateFormatError(date string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDateFormat, date)
}

func NewMissingFieldError(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

func NewEventTypeError(eventType string) error {
	return fmt.Errorf("%w: %s (want SYSTEM, USER or APP)", ErrInvalidEventType, eventType)
}

func NewLevelError(level string) error {
	return fmt.Errorf("%w: %s (want INFO, WARNING or ERROR)", ErrInvalidLevel, level)
}

func NewExpressionError(expr string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidExpression, expr, err)
}

func NewLimitError(limit int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
}

func NewFileError(path string, reason error) error {
	return fmt.Errorf("%w: %s: %v", ErrLogNotFound, path, reason)
}

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}
