package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	accountID, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", accountID)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.Issue("alice")
	assert.NoError(t, err)

	accountID, err := other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, accountID)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("alice")
	assert.NoError(t, err)

	accountID, err := issuer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, accountID)
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	accountID, err := issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Empty(t, accountID)
}
