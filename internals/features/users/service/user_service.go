package service

import (
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/users/model"
)

const (
	GroupContact   = "contact"
	GroupVolunteer = "volunteer"
	GroupBoth      = "both"

	groupLabelBoth = "contact | volunteer"
)

// EnsureUser records the identity behind a submission, once per email.
func EnsureUser(db *gorm.DB, fullName, email string) error {
	user := model.User{UserFullName: fullName, UserEmail: email}
	return db.Where(model.User{UserEmail: email}).FirstOrCreate(&user).Error
}

// GroupedUser pairs a known email with the audience it belongs to.
type GroupedUser struct {
	Email string
	Group string
}

// GroupUsers classifies each known user by which forms their email has
// come through, optionally narrowed to one group. A user present in both
// audiences only shows up under the "both" filter (or no filter), matching
// how the mailing lists are drawn.
func GroupUsers(users []model.User, contactEmails, volunteerEmails map[string]bool, group string) []GroupedUser {
	out := make([]GroupedUser, 0, len(users))
	for _, u := range users {
		inContact := contactEmails[u.UserEmail]
		inVolunteer := volunteerEmails[u.UserEmail]

		switch {
		case inContact && inVolunteer:
			if group == "" || group == GroupBoth {
				out = append(out, GroupedUser{Email: u.UserEmail, Group: groupLabelBoth})
			}
		case inContact:
			if group == "" || group == GroupContact {
				out = append(out, GroupedUser{Email: u.UserEmail, Group: GroupContact})
			}
		case inVolunteer:
			if group == "" || group == GroupVolunteer {
				out = append(out, GroupedUser{Email: u.UserEmail, Group: GroupVolunteer})
			}
		}
	}
	return out
}
