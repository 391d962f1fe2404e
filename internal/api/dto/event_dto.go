package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/spec-kit/playplanner-service/internal/domain"
)

// EventDto is the request and response shape of /events.
type EventDto struct {
	ID                   int64    `json:"id,omitempty"`
	Name                 string   `json:"name"`
	EventType            string   `json:"eventType"`
	Sport                *string  `json:"sport"`
	Format               *string  `json:"format"`
	Level                *string  `json:"level"`
	Timezone             string   `json:"timezone"`
	LocationName         *string  `json:"locationName"`
	Address              *string  `json:"address"`
	StartDate            string   `json:"startDate"`
	EndDate              *string  `json:"endDate"`
	StartTime            *string  `json:"startTime"`
	EndTime              *string  `json:"endTime"`
	RegistrationDeadline *string  `json:"registrationDeadline"`
	Capacity             *int32   `json:"capacity"`
	EntryFee             *float64 `json:"entryFee"`
	Currency             string   `json:"currency"`
	Description          *string  `json:"description"`
	IsPublic             *bool    `json:"isPublic"`
	AllowWaitlist        *bool    `json:"allowWaitlist"`
	RequireApproval      *bool    `json:"requireApproval"`
	LastUpdatedBy        string   `json:"lastUpdatedBy,omitempty"`
	LastUpdatedDate      string   `json:"lastUpdatedDate,omitempty"`
}

// Validate checks an incoming event.
func (e EventDto) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required, validation.Length(1, 150)),
		validation.Field(&e.EventType, validation.Required, validation.Length(1, 50)),
		validation.Field(&e.Timezone, validation.Required, validation.Length(1, 50)),
		validation.Field(&e.StartDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&e.EndDate, validation.By(validDate)),
		validation.Field(&e.StartTime, validation.By(validClock)),
		validation.Field(&e.EndTime, validation.By(validClock)),
		validation.Field(&e.RegistrationDeadline, validation.By(validDate)),
		validation.Field(&e.Capacity, validation.Min(1)),
		validation.Field(&e.EntryFee, validation.Min(0.0)),
		validation.Field(&e.Currency, validation.Length(3, 3)),
	)
}

// ToDomain converts a validated request into a domain event.
func (e EventDto) ToDomain() *domain.Event {
	start, _ := time.Parse(DateLayout, e.StartDate)
	return &domain.Event{
		Name:                 e.Name,
		EventType:            e.EventType,
		Sport:                e.Sport,
		Format:               e.Format,
		Level:                e.Level,
		Timezone:             e.Timezone,
		LocationName:         e.LocationName,
		Address:              e.Address,
		StartDate:            start,
		EndDate:              parseOptionalDate(e.EndDate),
		StartTime:            parseOptionalClock(e.StartTime),
		EndTime:              parseOptionalClock(e.EndTime),
		RegistrationDeadline: parseOptionalDate(e.RegistrationDeadline),
		Capacity:             e.Capacity,
		EntryFee:             e.EntryFee,
		Currency:             e.Currency,
		Description:          e.Description,
		IsPublic:             boolOr(e.IsPublic, true),
		AllowWaitlist:        boolOr(e.AllowWaitlist, false),
		RequireApproval:      boolOr(e.RequireApproval, false),
	}
}

// NewEventDto renders a domain event.
func NewEventDto(e *domain.Event) EventDto {
	isPublic, waitlist, approval := e.IsPublic, e.AllowWaitlist, e.RequireApproval
	return EventDto{
		ID:                   e.ID,
		Name:                 e.Name,
		EventType:            e.EventType,
		Sport:                e.Sport,
		Format:               e.Format,
		Level:                e.Level,
		Timezone:             e.Timezone,
		LocationName:         e.LocationName,
		Address:              e.Address,
		StartDate:            e.StartDate.Format(DateLayout),
		EndDate:              formatOptionalDate(e.EndDate),
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		RegistrationDeadline: formatOptionalDate(e.RegistrationDeadline),
		Capacity:             e.Capacity,
		EntryFee:             e.EntryFee,
		Currency:             e.Currency,
		Description:          e.Description,
		IsPublic:             &isPublic,
		AllowWaitlist:        &waitlist,
		RequireApproval:      &approval,
		LastUpdatedBy:        e.LastUpdatedBy,
		LastUpdatedDate:      formatTimestamp(e.LastUpdatedDate),
	}
}

// NewEventDtos renders a list, never returning nil.
func NewEventDtos(events []domain.Event) []EventDto {
	out := make([]EventDto, 0, len(events))
	for i := range events {
		out = append(out, NewEventDto(&events[i]))
	}
	return out
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
