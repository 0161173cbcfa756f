// Package auth implements the demo-grade signup/login flows. The password
// "hash" is a reversible transform kept for behavioral fidelity with the
// existing clients; it is NOT a security mechanism.
//
// TODO: replace the hash: transform with bcrypt and back the email check
// with a unique index once the demo auth contract is retired.
package auth

import (
	"context"
	"strings"

	"bettermann/database/repository"
	"bettermann/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines the signup and login operations.
type Service interface {
	SignUp(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.User, error)
}

// DefaultAuthService implements Service over the collection store.
type DefaultAuthService struct {
	Store repository.Store
}

// SignUp creates a new user unless the email is already registered. The
// existence check and the insert are not atomic: two simultaneous signups
// with the same email can both pass the check.
func (s *DefaultAuthService) SignUp(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	var existing models.User
	err := s.Store.FindOne(ctx, repository.KindUser, bson.M{"email": req.Email}, &existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != repository.ErrNotFound {
		return nil, err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: "hash:" + req.Password,
		Language:     req.Language,
		IsActive:     true,
		Role:         "user",
	}
	if user.Language == "" {
		user.Language = "en"
	}

	id, err := s.Store.Insert(ctx, repository.KindUser, user)
	if err != nil {
		return nil, err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		user.ID = oid
	}
	return &user, nil
}

// Login authenticates by email. The stored transform must end with the
// supplied plaintext password.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.Store.FindOne(ctx, repository.KindUser, bson.M{"email": req.Email}, &user)
	if err == repository.ErrNotFound {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
