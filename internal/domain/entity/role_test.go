package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoles(t *testing.T) {
	roles := ParseRoles([]string{"admin", "faculty", "student", ""})

	assert.Equal(t, Roles{RoleAdmin, RoleStudent}, roles)
	assert.True(t, roles.Has(RoleAdmin))
	assert.Equal(t, []string{"admin", "student"}, roles.ToStrings())
	assert.False(t, ParseRoles(nil).Has(RoleStudent))
}
