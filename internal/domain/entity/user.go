// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single account.
// Email is the login identifier and is unique across all users; uniqueness
// is enforced by the repository. PasswordHash is opaque to the domain and
// never contains a plaintext password.
type User struct {
	ID           uuid.UUID      // The unique identifier for the user, assigned by the repository.
	Email        string         // The user's email, used as the login key.
	Name         string         // The user's display name.
	PasswordHash string         // The salted hash of the user's password.
	Profile      map[string]any // Arbitrary additional profile attributes supplied at registration.
	CreatedAt    time.Time      // Timestamp of when this user account was created.
	UpdatedAt    time.Time      // Timestamp of the last modification to this user's data.
}
