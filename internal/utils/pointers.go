package utils

import (
	"fmt"
	"strings"
	"time"
)

func StringPtr(s string) *string {
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptionalString returns nil for blank input so optional fields travel as null, never "".
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// NormalizeOptional collapses a pointer to a blank string into nil.
func NormalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return OptionalString(*s)
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func WrapErrorf(err error, msg string, args ...any) error {
	return WrapError(err, fmt.Sprintf(msg, args...))
}
