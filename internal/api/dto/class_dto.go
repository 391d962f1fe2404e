package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// ClassItemDto is the request and response shape of /classes.
type ClassItemDto struct {
	ID              int64   `json:"id,omitempty"`
	Title           string  `json:"title"`
	Coach           string  `json:"coach"`
	Day             string  `json:"day"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Level           string  `json:"level"`
	Students        int32   `json:"students"`
	Capacity        int32   `json:"capacity"`
	Status          string  `json:"status"`
	Location        *string `json:"location"`
	LastUpdatedBy   string  `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate string  `json:"lastUpdatedDate,omitempty"`
}

// Validate checks an incoming class.
func (c ClassItemDto) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Coach, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Day, validation.Required, validation.In(
			string(domain.ClassDayMonday), string(domain.ClassDayTuesday), string(domain.ClassDayWednesday),
			string(domain.ClassDayThursday), string(domain.ClassDayFriday), string(domain.ClassDaySaturday),
			string(domain.ClassDaySunday),
		)),
		validation.Field(&c.StartTime, validation.Required, validation.By(validClock)),
		validation.Field(&c.EndTime, validation.Required, validation.By(validClock)),
		validation.Field(&c.Level, validation.Required, validation.In(
			string(domain.ClassLevelBeginner), string(domain.ClassLevelIntermediate), string(domain.ClassLevelAdvanced),
		)),
		validation.Field(&c.Students, validation.Min(0)),
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.Status, validation.Required, validation.In(
			string(domain.ClassStatusOpen), string(domain.ClassStatusFull), string(domain.ClassStatusCancelled),
		)),
	)
}

// ToDomain converts a validated request into a domain class.
func (c ClassItemDto) ToDomain() *domain.ClassItem {
	start, _ := ParseClock(c.StartTime)
	end, _ := ParseClock(c.EndTime)
	return &domain.ClassItem{
		Title:     c.Title,
		Coach:     c.Coach,
		Day:       domain.ClassDay(c.Day),
		StartTime: start,
		EndTime:   end,
		Level:     domain.ClassLevel(c.Level),
		Students:  c.Students,
		Capacity:  c.Capacity,
		Status:    domain.ClassStatus(c.Status),
		Location:  c.Location,
	}
}

// NewClassItemDto renders a domain class.
func NewClassItemDto(c *domain.ClassItem) ClassItemDto {
	return ClassItemDto{
		ID:              c.ID,
		Title:           c.Title,
		Coach:           c.Coach,
		Day:             string(c.Day),
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		Level:           string(c.Level),
		Students:        c.Students,
		Capacity:        c.Capacity,
		Status:          string(c.Status),
		Location:        c.Location,
		LastUpdatedBy:   c.LastUpdatedBy,
		LastUpdatedDate: formatTimestamp(c.LastUpdatedDate),
	}
}

// NewClassItemDtos renders a list, never returning nil.
func NewClassItemDtos(classes []domain.ClassItem) []ClassItemDto {
	out := make([]ClassItemDto, 0, len(classes))
	for i := range classes {
		out = append(out, NewClassItemDto(&classes[i]))
	}
	return out
}

// DashboardResponse is returned by GET /dashboard.
type DashboardResponse struct {
	Events  []EventDto     `json:"events"`
	Classes []ClassItemDto `json:"classes"`
}
