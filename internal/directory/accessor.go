package directory

import (
	"fmt"
	"log"

	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/pwdutil"
	"github.com/go-ldap/ldap/v3"
)

// Conn is the slice of *ldap.Conn the accessor uses. Tests substitute a
// recording fake to verify bind ordering.
type Conn interface {
	Bind(username, password string) error
	Search(request *ldap.SearchRequest) (*ldap.SearchResult, error)
	Add(request *ldap.AddRequest) error
	Modify(request *ldap.ModifyRequest) error
	Close() error
}

// Accessor owns exactly one directory connection for the duration of one
// request. Methods rebind as needed before acting; the current bind identity
// is not sticky across calls and callers must not assume it is. Connections
// are never pooled or shared between requests.
type Accessor struct {
	settings *Settings
	conn     Conn
	closed   bool
}

// Open dials the configured directory. The caller must Close the accessor on
// every exit path.
func Open(settings *Settings) (*Accessor, error) {
	var conn, err = ldap.DialURL(settings.URI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	return &Accessor{settings: settings, conn: conn}, nil
}

// Close releases the connection. Safe to call more than once; a close failure
// is logged and otherwise ignored.
func (a *Accessor) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if err := a.conn.Close(); err != nil {
		log.Printf("!!! ldap close error: %v", err)
	}
}

func (a *Accessor) bindAdmin() error {
	if err := a.conn.Bind(a.settings.AdminDN, a.settings.AdminPassword); err != nil {
		log.Printf("!!! ldap admin bind error: %v", err)
		return classify(err)
	}
	return nil
}

// FindByUsername returns the first entry below the base DN whose uid or mail
// matches username. The search runs on the connection's current bind state;
// during login that is an anonymous connection, so the directory must permit
// anonymous search.
func (a *Accessor) FindByUsername(username string) (*Entry, error) {
	var filter = fmt.Sprintf("(&(objectClass=inetOrgPerson)(|(mail=%s)(uid=%s)))",
		ldap.EscapeFilter(username), ldap.EscapeFilter(username))
	var request = ldap.NewSearchRequest(
		a.settings.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		0,
		false,
		filter,
		userAttributes,
		nil,
	)
	var results, err = a.conn.Search(request)
	if err != nil {
		return nil, classify(err)
	}
	if len(results.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	return entryFromResult(results.Entries[0])
}

// CreateAccount binds as admin and adds a new user entry below the base DN.
func (a *Accessor) CreateAccount(user *people.NewUser) error {
	if err := a.bindAdmin(); err != nil {
		return err
	}
	var request = ldap.NewAddRequest(fmt.Sprintf("uid=%s,%s", user.UID, a.settings.BaseDN), nil)
	request.Attribute("objectClass", []string{"inetOrgPerson", "person"})
	request.Attribute("uid", []string{user.UID})
	request.Attribute("cn", []string{user.CN})
	request.Attribute("sn", []string{user.CN})
	request.Attribute("mail", []string{user.Mail})
	request.Attribute("userPassword", []string{"{SSHA256}" + pwdutil.SaltedDigest(user)})
	if err := a.conn.Add(request); err != nil {
		return classify(err)
	}
	return nil
}

// ChangePassword verifies the old password by binding as the user, then
// replaces userPassword with a fresh salted digest. A rejected bind returns
// before the entry is touched.
func (a *Accessor) ChangePassword(userDN string, password *people.NewPassword) error {
	if err := a.conn.Bind(userDN, password.OldPassword); err != nil {
		return classify(err)
	}
	var request = ldap.NewModifyRequest(userDN, nil)
	request.Replace("userPassword", []string{"{SSHA256}" + pwdutil.SaltedDigest(password)})
	if err := a.conn.Modify(request); err != nil {
		return classify(err)
	}
	return nil
}

// UpdateProfile binds as admin and replaces cn and mail on the target entry.
func (a *Accessor) UpdateProfile(userDN string, person *people.Person) error {
	if err := a.bindAdmin(); err != nil {
		return err
	}
	var request = ldap.NewModifyRequest(userDN, nil)
	request.Replace("cn", []string{person.CN})
	request.Replace("mail", []string{person.Mail})
	if err := a.conn.Modify(request); err != nil {
		return classify(err)
	}
	return nil
}

// UpdatePhoto binds as admin and replaces the photo attribute with the raw
// bytes. The bytes must already be transport ready; no content validation
// happens here.
func (a *Accessor) UpdatePhoto(userDN string, photo []byte) error {
	if err := a.bindAdmin(); err != nil {
		return err
	}
	var request = ldap.NewModifyRequest(userDN, nil)
	request.Replace("photo", []string{string(photo)})
	if err := a.conn.Modify(request); err != nil {
		return classify(err)
	}
	return nil
}

// VerifyCredentials reports whether a bind as userDN with password succeeds.
// This is the sole password verification primitive in the system; stored
// digests are never compared locally.
func (a *Accessor) VerifyCredentials(userDN, password string) bool {
	if err := a.conn.Bind(userDN, password); err != nil {
		log.Printf("!!! bind as %s failed: %v", userDN, err)
		return false
	}
	return true
}
