package identity

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
)

type fakeTokenVerifier struct {
	calls int
}

func (f *fakeTokenVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	f.calls++
	if idToken == "good" {
		return &auth.Token{UID: "account-1"}, nil
	}
	return nil, errors.New("invalid token")
}

func newVerifierWith(client tokenVerifier) *FirebaseVerifier {
	v := NewFirebaseVerifier(FirebaseConfig{})
	v.once.Do(func() { v.client = client })
	return v
}

func TestFirebaseVerifier_Verify(t *testing.T) {
	fake := &fakeTokenVerifier{}
	v := newVerifierWith(fake)

	assert.Equal(t, "account-1", v.Verify(context.Background(), "good"))
	assert.Equal(t, "", v.Verify(context.Background(), "bad"))
	assert.Equal(t, "", v.Verify(context.Background(), ""))
	assert.Equal(t, 2, fake.calls)
}

func TestFirebaseVerifier_WithoutCredentialsRejects(t *testing.T) {
	t.Setenv("K_SERVICE", "")
	v := NewFirebaseVerifier(FirebaseConfig{ProjectID: "demo"})

	assert.Equal(t, "", v.Verify(context.Background(), "anything"))
	assert.Nil(t, v.client)
	assert.Equal(t, "", v.Verify(context.Background(), "again"))
}

func TestStaticVerifier(t *testing.T) {
	v := StaticVerifier{"tok": "account-1"}
	assert.Equal(t, "account-1", v.Verify(context.Background(), "tok"))
	assert.Equal(t, "", v.Verify(context.Background(), "other"))
}
