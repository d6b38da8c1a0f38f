// Package entity contains the core business objects of the project.
package entity

// PasswordChange carries a request to replace the stored password hash of a
// single account. The hash is computed by the caller's hashing policy before
// the request is constructed; the domain never sees the plaintext.
//
// A PasswordChange is immutable once built. Handlers must hand the identical
// value to collaborators so that equality-based verification holds.
type PasswordChange struct {
	Username     string // The login name of the target account.
	PasswordHash []byte // The pre-hashed replacement password, opaque to the domain.
}
