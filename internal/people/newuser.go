package people

import (
	"errors"

	"github.com/cwkr/account-portal/internal/stringutil"
)

// NewUser carries the registration form fields for a directory account.
type NewUser struct {
	UID             string
	CN              string
	Mail            string
	Password        string
	PasswordConfirm string
}

func (u NewUser) PlaintextPassword() string {
	return u.Password
}

func (u NewUser) Validate() error {
	if stringutil.IsAnyEmpty(u.UID, u.CN, u.Mail, u.Password) {
		return errors.New("username, name, mail and password must not be empty")
	}
	if u.Password != u.PasswordConfirm {
		return errors.New("password confirmation does not match")
	}
	return nil
}
