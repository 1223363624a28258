// Package identity verifies ID tokens issued by the identity provider.
package identity

import (
	"context"
	"log"
	"os"
	"sync"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier resolves an ID token to an account id. Any failure yields "".
type Verifier interface {
	Verify(ctx context.Context, idToken string) string
}

// tokenVerifier is the part of the Firebase auth client in use
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

// FirebaseVerifier verifies tokens with the Firebase Admin SDK. The client
// is created on first use.
type FirebaseVerifier struct {
	cfg    FirebaseConfig
	once   sync.Once
	client tokenVerifier
	logger *log.Logger
}

func NewFirebaseVerifier(cfg FirebaseConfig) *FirebaseVerifier {
	return &FirebaseVerifier{
		cfg:    cfg,
		logger: log.New(os.Stderr, "identity: ", log.LstdFlags),
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) string {
	if idToken == "" {
		return ""
	}

	v.once.Do(func() { v.client = v.init(ctx) })
	if v.client == nil {
		return ""
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return ""
	}
	return token.UID
}

func (v *FirebaseVerifier) init(ctx context.Context) tokenVerifier {
	var opts []option.ClientOption
	switch {
	case v.cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(v.cfg.CredentialsFile))
	case os.Getenv("K_SERVICE") != "":
		// Cloud Run: application default credentials
	default:
		v.logger.Println("Firebase credentials not found; every ID token will be rejected. Set FIREBASE_CREDENTIALS_FILE for local development.")
		return nil
	}

	var conf *firebase.Config
	if v.cfg.ProjectID != "" {
		conf = &firebase.Config{ProjectID: v.cfg.ProjectID}
	}

	app, err := firebase.NewApp(context.WithoutCancel(ctx), conf, opts...)
	if err != nil {
		v.logger.Printf("Firebase Admin SDK credential error: %v", err)
		return nil
	}

	client, err := app.Auth(context.WithoutCancel(ctx))
	if err != nil {
		v.logger.Printf("Firebase auth client error: %v", err)
		return nil
	}
	return client
}

// StaticVerifier maps fixed tokens to account ids
type StaticVerifier map[string]string

func (s StaticVerifier) Verify(_ context.Context, idToken string) string {
	return s[idToken]
}
