package domain

import "time"

// Event is a tournament, run or similar one-off activity owned by a user.
type Event struct {
	ID                   int64
	UserID               int64
	Name                 string
	EventType            string
	Sport                *string
	Format               *string
	Level                *string
	Timezone             string
	LocationName         *string
	Address              *string
	StartDate            time.Time
	EndDate              *time.Time
	StartTime            *string
	EndTime              *string
	RegistrationDeadline *time.Time
	Capacity             *int32
	EntryFee             *float64
	Currency             string
	Description          *string
	IsPublic             bool
	AllowWaitlist        bool
	RequireApproval      bool
	LastUpdatedBy        string
	LastUpdatedDate      time.Time
}

// DefaultCurrency applies when an event omits its currency.
const DefaultCurrency = "AUD"
