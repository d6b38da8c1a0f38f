package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityClassifier_Defaults(t *testing.T) {
	c := NewIdentityClassifier(false, "", nil)

	assert.False(t, c.AnonymousEnabled())
	assert.Equal(t, AnonymousDefault, c.AnonymousPrincipal())

	assert.Equal(t, IdentityInternal, c.Classify(PrincipalSystem))
	assert.Equal(t, IdentityInternal, c.Classify(PrincipalWarden))
	assert.Equal(t, IdentityMutable, c.Classify("joe"))
	assert.Equal(t, IdentityMutable, c.Classify("admin"))

	// The anonymous name is mutable while anonymous access is disabled.
	assert.Equal(t, IdentityMutable, c.Classify(AnonymousDefault))
}

func TestIdentityClassifier_AnonymousEnabled(t *testing.T) {
	c := NewIdentityClassifier(true, "guest", nil)

	assert.Equal(t, IdentityAnonymous, c.Classify("guest"))
	assert.Equal(t, IdentityMutable, c.Classify(AnonymousDefault))
	assert.Equal(t, IdentityInternal, c.Classify(PrincipalSystem))
}

func TestIdentityClassifier_AnonymousPrecedesInternal(t *testing.T) {
	c := NewIdentityClassifier(true, PrincipalSystem, nil)

	assert.Equal(t, IdentityAnonymous, c.Classify(PrincipalSystem))
	assert.Equal(t, IdentityInternal, c.Classify(PrincipalWarden))
}

func TestIdentityClassifier_CustomInternalSet(t *testing.T) {
	c := NewIdentityClassifier(false, "", []string{"replicator"})

	assert.Equal(t, IdentityInternal, c.Classify("replicator"))
	// Overriding the set replaces the defaults entirely.
	assert.Equal(t, IdentityMutable, c.Classify(PrincipalSystem))
}
