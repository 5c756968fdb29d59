package directory

import (
	"errors"
	"fmt"

	"github.com/go-ldap/ldap/v3"
)

var (
	// ErrConnectionFailed means the directory could not be reached or the
	// connection dropped mid operation.
	ErrConnectionFailed = errors.New("directory connection failed")
	// ErrBindRejected means the directory refused the bind credentials. This
	// is the expected outcome of a wrong password, not a fault.
	ErrBindRejected = errors.New("directory rejected credentials")
	// ErrNotFound means a search matched no entry.
	ErrNotFound = errors.New("no matching directory entry")
	// ErrSchemaViolation means an add or modify was rejected by the
	// directory's schema or constraints.
	ErrSchemaViolation = errors.New("directory rejected entry schema")
	// ErrMalformed means an entry assumed well-formed is missing or carries
	// an unparseable attribute.
	ErrMalformed = errors.New("malformed directory entry")
)

// classify maps a go-ldap error onto the package's sentinel errors, keeping
// the protocol level detail in the wrapped text. Unknown errors pass through.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidCredentials):
		return fmt.Errorf("%w: %v", ErrBindRejected, err)
	case ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case ldap.IsErrorWithCode(err, ldap.LDAPResultEntryAlreadyExists),
		ldap.IsErrorWithCode(err, ldap.LDAPResultObjectClassViolation),
		ldap.IsErrorWithCode(err, ldap.LDAPResultConstraintViolation),
		ldap.IsErrorWithCode(err, ldap.LDAPResultInvalidAttributeSyntax),
		ldap.IsErrorWithCode(err, ldap.LDAPResultUndefinedAttributeType):
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	case ldap.IsErrorWithCode(err, ldap.ErrorNetwork):
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	default:
		return err
	}
}
