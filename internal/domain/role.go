package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name is not part of the known set.
var ErrUnknownRole = errors.New("unknown role")

// Role enumerates account roles.
type Role string

const (
	RolePlayer       Role = "PLAYER"
	RoleParticipant  Role = "PARTICIPANT"
	RoleCoach        Role = "COACH"
	RoleSchool       Role = "SCHOOL"
	RoleOrganization Role = "ORGANIZATION"
	RoleClub         Role = "CLUB"
	RoleAdmin        Role = "ADMIN"
)

var knownRoles = map[Role]struct{}{
	RolePlayer:       {},
	RoleParticipant:  {},
	RoleCoach:        {},
	RoleSchool:       {},
	RoleOrganization: {},
	RoleClub:         {},
	RoleAdmin:        {},
}

// ParseRole normalises a stored or claimed role name.
func ParseRole(name string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := knownRoles[role]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
	return role, nil
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := knownRoles[r]
	return ok
}

// Authority is the coarse-grained grant carried by a principal with this role.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// RoleRecord is a row of the roles table.
type RoleRecord struct {
	ID   int64
	Name Role
}
