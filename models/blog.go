package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is an article in the content hub. Slug is the detail lookup key;
// uniqueness is not enforced at write time.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	Content     string             `bson:"content" json:"content"`
	Tags        []string           `bson:"tags" json:"tags"`
	CoverImage  string             `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	PublishedAt *time.Time         `bson:"published_at,omitempty" json:"published_at,omitempty"`
}

// BlogPostInput is the payload for POST /api/blog.
type BlogPostInput struct {
	Title       string     `json:"title" binding:"required"`
	Slug        string     `json:"slug" binding:"required"`
	Excerpt     string     `json:"excerpt" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	Tags        []string   `json:"tags"`
	CoverImage  string     `json:"cover_image"`
	PublishedAt *time.Time `json:"published_at"`
}

// Record builds the stored record.
func (in BlogPostInput) Record() BlogPost {
	p := BlogPost{
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Tags:        in.Tags,
		CoverImage:  in.CoverImage,
		PublishedAt: in.PublishedAt,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}
