package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FAQ is a question/answer pair for the help page.
type FAQ struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Question string             `bson:"question" json:"question"`
	Answer   string             `bson:"answer" json:"answer"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
}

// FAQInput is the payload for POST /api/faq.
type FAQInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
}

// Record builds the stored record.
func (in FAQInput) Record() FAQ {
	return FAQ{Question: in.Question, Answer: in.Answer, Category: in.Category}
}
