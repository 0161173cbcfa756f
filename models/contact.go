package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage is a message from the contact form. Write-only: no endpoint
// reads these back.
type ContactMessage struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Subject string             `bson:"subject" json:"subject"`
	Message string             `bson:"message" json:"message"`
}

// ContactMessageInput is the payload for POST /api/contact.
type ContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Record builds the stored record.
func (in ContactMessageInput) Record() ContactMessage {
	return ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
}
