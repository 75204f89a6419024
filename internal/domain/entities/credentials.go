package entities

import "crypto/subtle"

// TeacherCredential is one username/password pair from the credential source.
type TeacherCredential struct {
	Username string `json:"username" toml:"username" db:"username"`
	Password string `json:"password" toml:"password" db:"password"`
}

// Credentials maps a teacher username to its password.
type Credentials map[string]string

// NewCredentials builds Credentials from pairs. Empty strings are kept as-is;
// a later duplicate username wins.
func NewCredentials(pairs []TeacherCredential) Credentials {
	c := make(Credentials, len(pairs))
	for _, p := range pairs {
		c[p.Username] = p.Password
	}
	return c
}

// Verify reports whether username is known and password matches it.
func (c Credentials) Verify(username, password string) bool {
	expected, ok := c[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}
