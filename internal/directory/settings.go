package directory

// Documented fallbacks for an unset connection configuration.
const (
	DefaultURI     = "ldap://127.0.0.1:10389"
	DefaultBaseDN  = "dc=example,dc=com"
	DefaultAdminDN = "uid=admin,dc=example,dc=com"
)

// Settings holds the process wide directory connection parameters. They are
// loaded once at startup and read only for the process lifetime.
type Settings struct {
	URI           string `json:"uri"`
	BaseDN        string `json:"base_dn"`
	AdminDN       string `json:"admin_dn"`
	AdminPassword string `json:"admin_password"`
}

func NewDefaultSettings() *Settings {
	return &Settings{
		URI:     DefaultURI,
		BaseDN:  DefaultBaseDN,
		AdminDN: DefaultAdminDN,
	}
}

// ApplyDefaults fills every unset field with its documented fallback. Each
// field is independently overridable.
func (s *Settings) ApplyDefaults() {
	if s.URI == "" {
		s.URI = DefaultURI
	}
	if s.BaseDN == "" {
		s.BaseDN = DefaultBaseDN
	}
	if s.AdminDN == "" {
		s.AdminDN = DefaultAdminDN
	}
}
