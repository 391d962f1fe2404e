package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" coach ")
	require.NoError(t, err)
	assert.Equal(t, RoleCoach, role)
	assert.Equal(t, "ROLE_COACH", role.Authority())

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.False(t, Role("superuser").Valid())
}
