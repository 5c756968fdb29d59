package server

import (
	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/people"
)

// Directory is the per request accessor surface the handlers depend on. The
// live implementation is *directory.Accessor; tests inject a fake.
type Directory interface {
	FindByUsername(username string) (*directory.Entry, error)
	CreateAccount(user *people.NewUser) error
	ChangePassword(userDN string, password *people.NewPassword) error
	UpdateProfile(userDN string, person *people.Person) error
	UpdatePhoto(userDN string, photo []byte) error
	VerifyCredentials(userDN, password string) bool
	Close()
}

// DirectoryFactory opens a fresh accessor. Handlers open one per request and
// close it on every exit path; connections are never shared across requests.
type DirectoryFactory func() (Directory, error)

// LiveDirectory returns a factory dialing the configured directory.
func LiveDirectory(settings *directory.Settings) DirectoryFactory {
	return func() (Directory, error) {
		return directory.Open(settings)
	}
}
