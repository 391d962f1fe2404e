package domain

import "time"

// ClassDay is the weekday a recurring class runs on.
type ClassDay string

const (
	ClassDayMonday    ClassDay = "MONDAY"
	ClassDayTuesday   ClassDay = "TUESDAY"
	ClassDayWednesday ClassDay = "WEDNESDAY"
	ClassDayThursday  ClassDay = "THURSDAY"
	ClassDayFriday    ClassDay = "FRIDAY"
	ClassDaySaturday  ClassDay = "SATURDAY"
	ClassDaySunday    ClassDay = "SUNDAY"
)

// ClassLevel grades the difficulty of a class.
type ClassLevel string

const (
	ClassLevelBeginner     ClassLevel = "BEGINNER"
	ClassLevelIntermediate ClassLevel = "INTERMEDIATE"
	ClassLevelAdvanced     ClassLevel = "ADVANCED"
)

// ClassStatus tracks enrolment availability.
type ClassStatus string

const (
	ClassStatusOpen      ClassStatus = "OPEN"
	ClassStatusFull      ClassStatus = "FULL"
	ClassStatusCancelled ClassStatus = "CANCELLED"
)

// ClassItem is a recurring weekly class owned by a user.
type ClassItem struct {
	ID              int64
	UserID          int64
	Title           string
	Coach           string
	Day             ClassDay
	StartTime       string
	EndTime         string
	Level           ClassLevel
	Students        int32
	Capacity        int32
	Status          ClassStatus
	Location        *string
	LastUpdatedBy   string
	LastUpdatedDate time.Time
}
