package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// singletonDocID pins each section's one document to a fixed ID instead of
// relying on find-first-with-empty-filter, which Firestore has no native
// equivalent for. First save creates it; later saves replace it.
const singletonDocID = "content"

// Firestore stores each section document in its own collection (capitalized
// section name) under a fixed document ID.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore wraps an existing Firestore client.
func NewFirestore(client *firestore.Client) *Firestore {
	return &Firestore{client: client}
}

// Load implements Store. Missing documents come back as empty records.
func (f *Firestore) Load(ctx context.Context, section string) (map[string]any, error) {
	snap, err := f.docRef(section).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", section, err)
	}
	return snap.Data(), nil
}

// Save implements Store via a full-document set, which acts as an upsert.
func (f *Firestore) Save(ctx context.Context, section string, doc map[string]any) (map[string]any, error) {
	if _, err := f.docRef(section).Set(ctx, doc); err != nil {
		return nil, fmt.Errorf("store: save %q: %w", section, err)
	}
	return doc, nil
}

func (f *Firestore) docRef(section string) *firestore.DocumentRef {
	return f.client.Collection(CollectionName(section)).Doc(singletonDocID)
}
