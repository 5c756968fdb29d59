package directory

import (
	"errors"
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	var tests = []struct {
		name     string
		code     uint16
		expected error
	}{
		{"invalid credentials", ldap.LDAPResultInvalidCredentials, ErrBindRejected},
		{"no such object", ldap.LDAPResultNoSuchObject, ErrNotFound},
		{"entry already exists", ldap.LDAPResultEntryAlreadyExists, ErrSchemaViolation},
		{"object class violation", ldap.LDAPResultObjectClassViolation, ErrSchemaViolation},
		{"constraint violation", ldap.LDAPResultConstraintViolation, ErrSchemaViolation},
		{"invalid attribute syntax", ldap.LDAPResultInvalidAttributeSyntax, ErrSchemaViolation},
		{"undefined attribute type", ldap.LDAPResultUndefinedAttributeType, ErrSchemaViolation},
		{"network error", ldap.ErrorNetwork, ErrConnectionFailed},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var err = classify(ldap.NewError(test.code, errors.New(test.name)))
			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, classify(nil))
}

func TestClassifyUnknownPassesThrough(t *testing.T) {
	var err = errors.New("something else")
	assert.Equal(t, err, classify(err))
}
