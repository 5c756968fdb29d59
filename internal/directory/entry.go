package directory

import (
	"fmt"
	"time"

	"github.com/go-ldap/ldap/v3"
)

// Attributes requested for every user search.
var userAttributes = []string{"uid", "cn", "sn", "mail", "photo", "createTimestamp"}

// Entry is a user entry read from the directory.
type Entry struct {
	DN              string
	UID             string
	CN              string
	SN              string
	Mail            string
	Photo           []byte
	CreateTimestamp time.Time
}

// createTimestamp is RFC 4517 generalized time as served by ApacheDS and
// OpenLDAP, e.g. 20210228174215.123Z. Some servers omit the fraction.
const (
	timestampLayout      = "20060102150405.000Z"
	timestampLayoutShort = "20060102150405Z"
)

func entryFromResult(entry *ldap.Entry) (*Entry, error) {
	var uid = entry.GetAttributeValue("uid")
	if uid == "" {
		return nil, fmt.Errorf("%w: missing uid on %s", ErrMalformed, entry.DN)
	}
	var e = &Entry{
		DN:    entry.DN,
		UID:   uid,
		CN:    entry.GetAttributeValue("cn"),
		SN:    entry.GetAttributeValue("sn"),
		Mail:  entry.GetAttributeValue("mail"),
		Photo: entry.GetRawAttributeValue("photo"),
	}
	// createTimestamp is an operational attribute and may be withheld from
	// anonymous searches; absence leaves the zero time.
	if value := entry.GetAttributeValue("createTimestamp"); value != "" {
		var timestamp, err = time.Parse(timestampLayout, value)
		if err != nil {
			timestamp, err = time.Parse(timestampLayoutShort, value)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: createTimestamp %q on %s", ErrMalformed, value, entry.DN)
		}
		e.CreateTimestamp = timestamp
	}
	return e, nil
}
