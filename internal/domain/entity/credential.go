package entity

import "time"

// Credential is a login identity keyed by Username.
// PasswordHash is a bcrypt hash; the plaintext is never stored.
//
// A credential is created once by registration and has no further
// transitions: there is no change-password or delete.
type Credential struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
