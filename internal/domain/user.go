package domain

import "time"

// User is the credential record for an account holder.
type User struct {
	ID              int64
	FullName        string
	Email           string
	Phone           *string
	RoleID          int64
	Role            Role
	PasswordHash    string
	LastUpdatedDate time.Time
}

// Subject is the password-free view of a user used to resolve token subjects.
type Subject struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
}

// Subject strips credential material from the user.
func (u *User) Subject() *Subject {
	return &Subject{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}
