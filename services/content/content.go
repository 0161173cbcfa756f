// Package content covers the site content entities: reviews, blog posts,
// FAQs and contact messages.
package content

import (
	"context"

	"bettermann/database/repository"
	"bettermann/models"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	reviewLimit = 50
	blogLimit   = 50
	faqLimit    = 100
)

// Service defines the content operations.
type Service interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
	AddReview(ctx context.Context, in models.ReviewInput) (string, error)
	ListBlogPosts(ctx context.Context, tag string) ([]models.BlogPost, error)
	AddBlogPost(ctx context.Context, in models.BlogPostInput) (string, error)
	GetBlogPost(ctx context.Context, slug string) (*models.BlogPost, error)
	ListFAQs(ctx context.Context) ([]models.FAQ, error)
	AddFAQ(ctx context.Context, in models.FAQInput) (string, error)
	SubmitContact(ctx context.Context, in models.ContactMessageInput) (string, error)
}

// DefaultContentService implements Service over the collection store.
type DefaultContentService struct {
	Store repository.Store
}

func (s *DefaultContentService) ListReviews(ctx context.Context) ([]models.Review, error) {
	var items []models.Review
	if err := s.Store.Find(ctx, repository.KindReview, bson.M{}, reviewLimit, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Review{}
	}
	return items, nil
}

func (s *DefaultContentService) AddReview(ctx context.Context, in models.ReviewInput) (string, error) {
	return s.Store.Insert(ctx, repository.KindReview, in.Record())
}

// ListBlogPosts lists posts, optionally narrowed to an exact tag. The tag
// filter is set membership, not a substring match.
func (s *DefaultContentService) ListBlogPosts(ctx context.Context, tag string) ([]models.BlogPost, error) {
	filter := bson.M{}
	if tag != "" {
		filter["tags"] = tag
	}
	var items []models.BlogPost
	if err := s.Store.Find(ctx, repository.KindBlogPost, filter, blogLimit, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.BlogPost{}
	}
	return items, nil
}

func (s *DefaultContentService) AddBlogPost(ctx context.Context, in models.BlogPostInput) (string, error) {
	return s.Store.Insert(ctx, repository.KindBlogPost, in.Record())
}

// GetBlogPost returns the first post carrying the slug, or ErrPostNotFound.
func (s *DefaultContentService) GetBlogPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := s.Store.FindOne(ctx, repository.KindBlogPost, bson.M{"slug": slug}, &post)
	if err == repository.ErrNotFound {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *DefaultContentService) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	var items []models.FAQ
	if err := s.Store.Find(ctx, repository.KindFAQ, bson.M{}, faqLimit, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.FAQ{}
	}
	return items, nil
}

func (s *DefaultContentService) AddFAQ(ctx context.Context, in models.FAQInput) (string, error) {
	return s.Store.Insert(ctx, repository.KindFAQ, in.Record())
}

func (s *DefaultContentService) SubmitContact(ctx context.Context, in models.ContactMessageInput) (string, error) {
	return s.Store.Insert(ctx, repository.KindContactMessage, in.Record())
}
