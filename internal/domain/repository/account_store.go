// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"warden/internal/domain/entity"
)

// CompletionFunc receives the terminal result of an asynchronous store
// operation. It is invoked exactly once: a nil error reports success, a
// non-nil error carries the store's own failure cause unchanged.
type CompletionFunc func(err error)

// AccountStore owns the persisted credentials and performs the actual
// password mutation. Implementations decide their own execution model; the
// only contract is that complete fires exactly once, after the change has
// either been persisted or definitively failed.
type AccountStore interface {
	// ChangePassword replaces the stored password hash for the account named
	// by change.Username and reports the outcome through complete.
	ChangePassword(ctx context.Context, change *entity.PasswordChange, complete CompletionFunc)
}
