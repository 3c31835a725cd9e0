package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"haskenrayuwa_backend/internals/features/users/model"
)

func groupFixture() ([]model.User, map[string]bool, map[string]bool) {
	users := []model.User{
		{UserEmail: "a@x.org"},
		{UserEmail: "b@x.org"},
		{UserEmail: "c@x.org"},
		{UserEmail: "d@x.org"},
	}
	contacts := map[string]bool{"a@x.org": true, "c@x.org": true}
	volunteers := map[string]bool{"b@x.org": true, "c@x.org": true}
	return users, contacts, volunteers
}

func TestGroupUsers_NoFilter(t *testing.T) {
	users, contacts, volunteers := groupFixture()

	got := GroupUsers(users, contacts, volunteers, "")

	assert.Equal(t, []GroupedUser{
		{Email: "a@x.org", Group: "contact"},
		{Email: "b@x.org", Group: "volunteer"},
		{Email: "c@x.org", Group: "contact | volunteer"},
	}, got, "a user with no submissions is not listed")
}

func TestGroupUsers_SingleGroupFilter(t *testing.T) {
	users, contacts, volunteers := groupFixture()

	got := GroupUsers(users, contacts, volunteers, GroupContact)
	assert.Equal(t, []GroupedUser{{Email: "a@x.org", Group: "contact"}}, got,
		"a both-groups user is excluded from the single-group list")

	got = GroupUsers(users, contacts, volunteers, GroupVolunteer)
	assert.Equal(t, []GroupedUser{{Email: "b@x.org", Group: "volunteer"}}, got)
}

func TestGroupUsers_BothFilter(t *testing.T) {
	users, contacts, volunteers := groupFixture()

	got := GroupUsers(users, contacts, volunteers, GroupBoth)
	assert.Equal(t, []GroupedUser{{Email: "c@x.org", Group: "contact | volunteer"}}, got)
}
