package people

import (
	"errors"

	"github.com/cwkr/account-portal/internal/stringutil"
)

// NewPassword carries the password change form fields. The old password is
// verified by binding against the directory, never by local comparison.
type NewPassword struct {
	OldPassword        string
	NewPassword        string
	NewPasswordConfirm string
}

func (p NewPassword) PlaintextPassword() string {
	return p.NewPassword
}

func (p NewPassword) Validate() error {
	if stringutil.IsAnyEmpty(p.OldPassword, p.NewPassword) {
		return errors.New("current and new password must not be empty")
	}
	if p.NewPassword != p.NewPasswordConfirm {
		return errors.New("password confirmation does not match")
	}
	return nil
}
