package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a booking record. UserID and TherapistID are free-form string
// references; the service does not check that they resolve.
type Session struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"user_id"`
	TherapistID  string             `bson:"therapist_id" json:"therapist_id"`
	Mode         string             `bson:"mode" json:"mode"`
	ScheduledFor *time.Time         `bson:"scheduled_for,omitempty" json:"scheduled_for,omitempty"`
	Status       string             `bson:"status" json:"status"`
}

// SessionInput is the payload for POST /api/sessions.
type SessionInput struct {
	UserID       string     `json:"user_id" binding:"required"`
	TherapistID  string     `json:"therapist_id" binding:"required"`
	Mode         string     `json:"mode"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	Status       string     `json:"status"`
}

// Record builds the stored record, applying the scheduling defaults.
func (in SessionInput) Record() Session {
	s := Session{
		UserID:       in.UserID,
		TherapistID:  in.TherapistID,
		Mode:         in.Mode,
		ScheduledFor: in.ScheduledFor,
		Status:       in.Status,
	}
	if s.Mode == "" {
		s.Mode = "chat"
	}
	if s.Status == "" {
		s.Status = "scheduled"
	}
	return s
}
