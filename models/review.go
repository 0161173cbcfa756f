package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is customer feedback shown on the landing page.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	City      string             `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// ReviewInput is the payload for POST /api/reviews. Rating is strictly 1-5.
type ReviewInput struct {
	UserName  string     `json:"user_name" binding:"required"`
	Rating    int        `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string     `json:"comment" binding:"required"`
	City      string     `json:"city"`
	CreatedAt *time.Time `json:"created_at"`
}

// Record builds the stored record.
func (in ReviewInput) Record() Review {
	return Review{
		UserName:  in.UserName,
		Rating:    in.Rating,
		Comment:   in.Comment,
		City:      in.City,
		CreatedAt: in.CreatedAt,
	}
}
