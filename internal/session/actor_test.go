package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroActorIsLoggedOut(t *testing.T) {
	var a Actor
	assert.False(t, a.IsLoggedIn())
	assert.False(t, a.IsAdmin())
	assert.False(t, a.IsCustomer())
}

func TestLoginLogoutCycle(t *testing.T) {
	a := NewActor(7, "bob", "bob@example.com", "Bob Builder", RoleAdmin)
	assert.True(t, a.IsLoggedIn())
	assert.True(t, a.IsAdmin())
	assert.False(t, a.IsCustomer())

	a.Clear()
	assert.False(t, a.IsLoggedIn())
	assert.Equal(t, Actor{}, a)
}

func TestRoleIsExactMatch(t *testing.T) {
	a := NewActor(3, "carol", "", "", "admin") // wrong case
	assert.True(t, a.IsLoggedIn())
	assert.False(t, a.IsAdmin())

	a.Role = RoleCustomer
	assert.True(t, a.IsCustomer())
}

func TestLoginRequiresIDAndUsername(t *testing.T) {
	assert.False(t, NewActor(0, "bob", "", "", RoleCustomer).IsLoggedIn())
	assert.False(t, NewActor(7, "", "", "", RoleCustomer).IsLoggedIn())
}
