package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/goliatone/go-portfolio-cms/pkg/validation"
)

var (
	// ErrUserNotFound indicates the actor has no stored user record.
	ErrUserNotFound = errors.New("auth: user not found")
	// ErrWrongPassword indicates the supplied current password did not match.
	ErrWrongPassword = errors.New("auth: incorrect current password")
)

// User is the stored admin account backing the profile pseudo-section.
type User struct {
	Email        string
	Name         string
	PasswordHash []byte
}

// UserStore persists admin accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) error
}

// ProfileUpdate is the payload of a profile save.
type ProfileUpdate struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// Profile updates the admin's own account: display name always, password
// only when a new one is supplied.
type Profile struct {
	users UserStore
}

// NewProfile builds the profile service on top of a user store.
func NewProfile(users UserStore) *Profile {
	return &Profile{users: users}
}

// Update validates the payload, verifies the current password, and persists
// the change. The current password is always required, even for a pure
// rename.
func (p *Profile) Update(ctx context.Context, actor Actor, req ProfileUpdate) error {
	if !actor.Authenticated() {
		return ErrUnauthorized
	}

	payload := map[string]any{
		"name":            req.Name,
		"currentPassword": req.CurrentPassword,
	}
	if req.NewPassword != "" {
		payload["newPassword"] = req.NewPassword
	}
	if err := validation.Check(validation.Profile, payload); err != nil {
		return err
	}

	user, err := p.users.FindByEmail(ctx, actor.Email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	user.Name = req.Name
	if req.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("auth: hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	return p.users.Update(ctx, user)
}
