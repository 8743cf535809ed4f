package auth

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// usersCollection matches the account collection seeded alongside the
// content sections.
const usersCollection = "Users"

type userDocument struct {
	Email    string `firestore:"email"`
	Name     string `firestore:"name"`
	Password []byte `firestore:"password"`
}

// FirestoreUsers stores admin accounts in Firestore, keyed by email.
type FirestoreUsers struct {
	client *firestore.Client
}

// NewFirestoreUsers wraps an existing Firestore client.
func NewFirestoreUsers(client *firestore.Client) *FirestoreUsers {
	return &FirestoreUsers{client: client}
}

// FindByEmail implements UserStore.
func (f *FirestoreUsers) FindByEmail(ctx context.Context, email string) (User, error) {
	snap, err := f.client.Collection(usersCollection).Doc(email).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("auth: find user: %w", err)
	}

	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return User{}, fmt.Errorf("auth: decode user: %w", err)
	}
	return User{Email: doc.Email, Name: doc.Name, PasswordHash: doc.Password}, nil
}

// Update implements UserStore.
func (f *FirestoreUsers) Update(ctx context.Context, user User) error {
	doc := userDocument{Email: user.Email, Name: user.Name, Password: user.PasswordHash}
	if _, err := f.client.Collection(usersCollection).Doc(user.Email).Set(ctx, doc); err != nil {
		return fmt.Errorf("auth: update user: %w", err)
	}
	return nil
}

// MemoryUsers is an in-process UserStore for tests and dev mode.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryUsers returns a store preloaded with the given accounts.
func NewMemoryUsers(users ...User) *MemoryUsers {
	m := &MemoryUsers{users: make(map[string]User, len(users))}
	for _, user := range users {
		m.users[user.Email] = user
	}
	return m
}

// FindByEmail implements UserStore.
func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// Update implements UserStore.
func (m *MemoryUsers) Update(_ context.Context, user User) error {
	m.mu.Lock()
	m.users[user.Email] = user
	m.mu.Unlock()
	return nil
}
