package auth

import (
	"strings"
	"time"
)

// Credential is the login record: an email bound to a display name and a
// password hash. It is independent of the user directory profile.
type Credential struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is an authenticated identity. Tokens are issued for it.
type Principal struct {
	Email string
	Name  string
}

// NormalizeEmail trims and lower-cases an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
