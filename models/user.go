// models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a platform user.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Language     string             `bson:"language" json:"language"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Role         string             `bson:"role" json:"role"`
}

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Language string `json:"language"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
