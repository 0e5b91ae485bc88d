package firebase

import (
	"context"
	"log/slog"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token *fbauth.Token
	err   error
}

func (f fakeClient) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	return f.token, f.err
}

func TestVerifier_Verify(t *testing.T) {
	v := &verifier{
		client: fakeClient{token: &fbauth.Token{
			UID: "uid-1",
			Claims: map[string]any{
				"email":          "student@example.edu",
				"email_verified": true,
				"name":           "Test Student",
			},
		}},
		logger: slog.Default(),
	}

	identity, err := v.Verify(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "firebase", identity.Provider)
	assert.Equal(t, "uid-1", identity.Subject)
	assert.Equal(t, "student@example.edu", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Test Student", identity.Name)
	assert.Empty(t, identity.AvatarURL)
}

func TestVerifier_UnverifiedEmailIsReported(t *testing.T) {
	v := &verifier{
		client: fakeClient{token: &fbauth.Token{UID: "uid-2", Claims: map[string]any{"email": "a@b.c"}}},
		logger: slog.Default(),
	}

	identity, err := v.Verify(context.Background(), "token")

	require.NoError(t, err)
	assert.False(t, identity.EmailVerified)
}

func TestVerifier_Error(t *testing.T) {
	v := &verifier{client: fakeClient{err: errors.New("ID token has expired")}, logger: slog.Default()}

	identity, err := v.Verify(context.Background(), "token")

	assert.Nil(t, identity)
	assert.ErrorContains(t, err, "ID token has expired")
}
