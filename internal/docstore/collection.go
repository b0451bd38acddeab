// Package docstore is the client side of the remote document collection
// that holds notes. The store owns id and timestamp assignment; callers only
// see the four primitives of Collection.
package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an update or delete targets a missing id.
	ErrNotFound = errors.New("document not found")

	// ErrNoCollection is returned when the collection name is empty.
	ErrNoCollection = errors.New("collection name required")
)

// Fields are the user-controlled attributes of a document.
type Fields map[string]any

// String returns the string value stored under key, or "" when the key is
// missing or holds a non-string value.
func (f Fields) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Document is a stored record. ID and CreatedAt are assigned by the store
// on insert and never change afterwards.
type Document struct {
	ID        string
	Fields    Fields
	CreatedAt time.Time
}

// Collection is the narrow contract the notes controller needs from a
// document store. Implementations must be safe for concurrent use.
type Collection interface {
	// Insert stores fields as a new document and returns it with the
	// assigned id and creation time.
	Insert(ctx context.Context, collection string, fields Fields) (Document, error)

	// ListAll returns a snapshot of every document, newest first.
	ListAll(ctx context.Context, collection string) ([]Document, error)

	// UpdateFields merges fields into an existing document.
	// It returns ErrNotFound if id does not exist.
	UpdateFields(ctx context.Context, collection, id string, fields Fields) error

	// DeleteByID removes a document. It returns ErrNotFound if id does not exist.
	DeleteByID(ctx context.Context, collection, id string) error
}

func cloneFields(f Fields) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
