// Package auth gates the write path. The core only needs "is there an
// authenticated actor" plus a display name/email; identity itself lives with
// an external provider.
package auth

import (
	"context"
	"errors"
	"strings"
)

// ErrUnauthorized is returned when no authenticated actor is present.
var ErrUnauthorized = errors.New("auth: unauthorized")

// Actor is the authenticated admin performing a write.
type Actor struct {
	UID   string
	Name  string
	Email string
}

// Authenticated reports whether the actor carries a verified identity.
func (a Actor) Authenticated() bool {
	return a.UID != "" || a.Email != ""
}

// Authenticator resolves a bearer token into an Actor.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Actor, error)
}

// Static accepts a fixed token and is intended for tests and local dev mode.
type Static struct {
	Token string
	Actor Actor
}

// Authenticate implements Authenticator.
func (s Static) Authenticate(_ context.Context, token string) (Actor, error) {
	if strings.TrimSpace(token) == "" || token != s.Token {
		return Actor{}, ErrUnauthorized
	}
	return s.Actor, nil
}
