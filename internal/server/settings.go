package server

import (
	"github.com/cwkr/account-portal/internal/directory"
	"github.com/cwkr/account-portal/internal/people"
	"github.com/cwkr/account-portal/internal/stringutil"
)

type Settings struct {
	Port          int                               `json:"port"`
	Title         string                            `json:"title,omitempty"`
	SessionName   string                            `json:"session_name"`
	SessionSecret string                            `json:"session_secret"`
	SessionTTL    int                               `json:"session_ttl"`
	Users         map[string]people.AuthenticPerson `json:"users,omitempty"`
	Directory     *directory.Settings               `json:"directory,omitempty"`
}

// NewDefaultSettings returns the settings used when no config file is found.
// A session TTL of zero keeps sessions alive until logout.
func NewDefaultSettings() *Settings {
	return &Settings{
		Port:          6080,
		Title:         "Account Portal",
		SessionName:   "PSESSION",
		SessionSecret: stringutil.RandomBytesString(32),
		Directory:     directory.NewDefaultSettings(),
	}
}
