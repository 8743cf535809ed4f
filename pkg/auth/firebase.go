package auth

import (
	"context"
	"fmt"
	"strings"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// TokenVerifier abstracts the Firebase Admin SDK client for testability.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// Firebase authenticates admins by verifying Firebase ID tokens.
type Firebase struct {
	verifier TokenVerifier
}

// NewFirebase constructs an Authenticator backed by the provided verifier.
func NewFirebase(verifier TokenVerifier) (*Firebase, error) {
	if verifier == nil {
		return nil, fmt.Errorf("auth: token verifier is required")
	}
	return &Firebase{verifier: verifier}, nil
}

// Authenticate implements Authenticator.
func (f *Firebase) Authenticate(ctx context.Context, token string) (Actor, error) {
	if strings.TrimSpace(token) == "" {
		return Actor{}, ErrUnauthorized
	}

	verified, err := f.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return Actor{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	return Actor{
		UID:   verified.UID,
		Name:  claimString(verified.Claims["name"]),
		Email: claimString(verified.Claims["email"]),
	}, nil
}

func claimString(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}
