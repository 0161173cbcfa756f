package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// Without a store connection every gateway operation must fail with
// ErrStoreUnavailable; callers surface it, they never retry.
func TestNilStoreIsUnavailable(t *testing.T) {
	store := NewMongoStore(nil)
	ctx := context.Background()

	_, err := store.Insert(ctx, KindUser, bson.M{"name": "x"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	var docs []bson.M
	err = store.Find(ctx, KindTherapist, bson.M{}, 50, &docs)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	var doc bson.M
	err = store.FindOne(ctx, KindBlogPost, bson.M{"slug": "s"}, &doc)
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.Collections(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
