package dto

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// ValidationMessages flattens ozzo errors into sorted "field: reason" lines.
func ValidationMessages(err error) []string {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", field, fieldErr.Error()))
	}
	sort.Strings(messages)
	return messages
}

func validDate(value interface{}) error {
	s, _ := value.(*string)
	if s == nil || *s == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, *s); err != nil {
		return errors.New("must be a date in YYYY-MM-DD format")
	}
	return nil
}

func validClock(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if s == "" {
		return nil
	}
	if _, err := ParseClock(s); err != nil {
		return err
	}
	return nil
}

// ParseClock accepts HH:MM or HH:MM:SS and returns the HH:MM:SS form.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", errors.New("must be a time in HH:MM or HH:MM:SS format")
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseOptionalClock(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v, err := ParseClock(*s)
	if err != nil {
		return nil
	}
	return &v
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
