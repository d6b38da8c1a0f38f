// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a single managed account.
// The password hash is intentionally not part of the entity; credentials are
// written by the persistence layer and never travel with the account.
type User struct {
	ID        uuid.UUID // The unique identifier for the account.
	Username  string    // The unique login name, also the target of password changes.
	Email     string    // The account's contact email.
	FullName  string    // The account holder's display name.
	Roles     Roles     // The roles granted to this account.
	Enabled   bool      // Whether the account may authenticate.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
