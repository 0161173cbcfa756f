package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Kind names a storage namespace. The mapping from entity kind to collection
// name is enumerated here rather than derived from type names.
type Kind string

const (
	KindUser           Kind = "user"
	KindTherapist      Kind = "therapist"
	KindReview         Kind = "review"
	KindBlogPost       Kind = "blogpost"
	KindFAQ            Kind = "faq"
	KindContactMessage Kind = "contactmessage"
	KindSession        Kind = "session"
)

var (
	// ErrNotFound is returned by FindOne when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrStoreUnavailable is returned by every operation when no store
	// connection exists.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// Store is the sole interface to persistence, used uniformly by every
// service. Implementations decode store documents into the typed record
// shapes at this boundary; callers never see raw documents.
type Store interface {
	// Insert writes doc as a new document and returns the store-assigned
	// identifier as an opaque string.
	Insert(ctx context.Context, kind Kind, doc any) (string, error)
	// Find decodes up to limit documents matching filter into dest, which
	// must be a pointer to a slice. An empty filter matches everything.
	Find(ctx context.Context, kind Kind, filter bson.M, limit int64, dest any) error
	// FindOne decodes the first matching document into dest, or returns
	// ErrNotFound.
	FindOne(ctx context.Context, kind Kind, filter bson.M, dest any) error
	// Collections lists collection names, for diagnostics only.
	Collections(ctx context.Context) ([]string, error)
}
