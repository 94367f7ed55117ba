package models

// Credentials is the locally persisted login pair. Both fields are nil on
// first run.
type Credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Complete reports whether both fields are present.
func (c Credentials) Complete() bool {
	return c.Username != nil && c.Password != nil
}

// NewCredentials builds a complete record.
func NewCredentials(username, password string) Credentials {
	return Credentials{Username: &username, Password: &password}
}
