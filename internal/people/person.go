package people

// Person carries the editable profile attributes of a directory entry.
type Person struct {
	UID  string `json:"uid,omitempty"`
	CN   string `json:"cn,omitempty"`
	Mail string `json:"mail,omitempty"`
}

// AuthenticPerson is a statically configured fallback account that can
// authenticate without a directory entry. The password hash is bcrypt.
type AuthenticPerson struct {
	Person
	PasswordHash string `json:"password_hash"`
}
