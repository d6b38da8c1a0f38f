// Package entity contains the core business objects of the project.
package entity

// IdentityClass is the result of resolving a username against the process-wide
// identity configuration. Every username resolves to exactly one class.
type IdentityClass int

const (
	// IdentityMutable marks an ordinary account identity whose credentials
	// may be changed, including built-in password-bearing accounts.
	IdentityMutable IdentityClass = iota
	// IdentityAnonymous marks the configured fallback identity used for
	// unauthenticated access. It is never a persisted account.
	IdentityAnonymous
	// IdentityInternal marks a fixed system actor that exists for the
	// lifetime of the process and is never persisted as a mutable account.
	IdentityInternal
)

// Default principal names. The internal set covers the system actor and the
// service's own internal actor; both are reserved and never stored as accounts.
const (
	PrincipalSystem  = "system"
	PrincipalWarden  = "warden"
	AnonymousDefault = "anonymous"
)

// DefaultInternalPrincipals returns the built-in set of internal actors used
// when no override is configured.
func DefaultInternalPrincipals() []string {
	return []string{PrincipalSystem, PrincipalWarden}
}

// IdentityClassifier resolves usernames to identity classes. It is built once
// at startup from settings and is immutable afterwards, so concurrent use
// needs no coordination.
type IdentityClassifier struct {
	anonymousEnabled   bool
	anonymousPrincipal string
	internal           map[string]struct{}
}

// NewIdentityClassifier builds a classifier from the resolved security
// settings. An empty anonymousPrincipal falls back to AnonymousDefault, and an
// empty internal set falls back to DefaultInternalPrincipals.
func NewIdentityClassifier(anonymousEnabled bool, anonymousPrincipal string, internalPrincipals []string) *IdentityClassifier {
	if anonymousPrincipal == "" {
		anonymousPrincipal = AnonymousDefault
	}
	if len(internalPrincipals) == 0 {
		internalPrincipals = DefaultInternalPrincipals()
	}

	internal := make(map[string]struct{}, len(internalPrincipals))
	for _, principal := range internalPrincipals {
		internal[principal] = struct{}{}
	}

	return &IdentityClassifier{
		anonymousEnabled:   anonymousEnabled,
		anonymousPrincipal: anonymousPrincipal,
		internal:           internal,
	}
}

// AnonymousEnabled reports whether an anonymous principal exists for this process.
func (c *IdentityClassifier) AnonymousEnabled() bool {
	return c.anonymousEnabled
}

// AnonymousPrincipal returns the configured anonymous principal name.
func (c *IdentityClassifier) AnonymousPrincipal() string {
	return c.anonymousPrincipal
}

// Classify resolves a username to its identity class. The anonymous check
// takes precedence over the internal check when a name could satisfy both.
func (c *IdentityClassifier) Classify(username string) IdentityClass {
	if c.anonymousEnabled && username == c.anonymousPrincipal {
		return IdentityAnonymous
	}
	if _, ok := c.internal[username]; ok {
		return IdentityInternal
	}

	return IdentityMutable
}
