package auth

import (
	"context"
	"testing"

	"bettermann/database/repository"
	"bettermann/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// stubStore plays back a canned user for FindOne and records inserts.
type stubStore struct {
	existing  *models.User
	gotFilter bson.M
	gotDoc    any
	insertErr error
}

func (s *stubStore) Insert(ctx context.Context, kind repository.Kind, doc any) (string, error) {
	s.gotDoc = doc
	if s.insertErr != nil {
		return "", s.insertErr
	}
	return "64b000000000000000000002", nil
}

func (s *stubStore) Find(ctx context.Context, kind repository.Kind, filter bson.M, limit int64, dest any) error {
	return nil
}

func (s *stubStore) FindOne(ctx context.Context, kind repository.Kind, filter bson.M, dest any) error {
	s.gotFilter = filter
	if s.existing == nil {
		return repository.ErrNotFound
	}
	*dest.(*models.User) = *s.existing
	return nil
}

func (s *stubStore) Collections(ctx context.Context) ([]string, error) {
	return nil, nil
}

func TestSignUpAppliesDefaults(t *testing.T) {
	store := &stubStore{}
	svc := &DefaultAuthService{Store: store}

	user, err := svc.SignUp(context.Background(), models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"email": "asha@example.com"}, store.gotFilter)
	assert.Equal(t, "hash:secret", user.PasswordHash)
	assert.Equal(t, "en", user.Language)
	assert.Equal(t, "user", user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.ID.IsZero())
}

func TestSignUpRefusesDuplicateEmail(t *testing.T) {
	store := &stubStore{existing: &models.User{Email: "asha@example.com"}}
	svc := &DefaultAuthService{Store: store}

	// Same email, different fields: still refused.
	_, err := svc.SignUp(context.Background(), models.SignupRequest{
		Name:     "Someone Else",
		Email:    "asha@example.com",
		Password: "other",
		Language: "hi",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Nil(t, store.gotDoc, "no record may be written after a duplicate check")
}

func TestSignUpSurfacesStoreUnavailable(t *testing.T) {
	store := &stubStore{insertErr: repository.ErrStoreUnavailable}
	svc := &DefaultAuthService{Store: store}

	_, err := svc.SignUp(context.Background(), models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		existing *models.User
		password string
		wantErr  error
	}{
		{
			name:     "unknown email",
			password: "secret",
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "stored transform must end with the supplied password",
			existing: &models.User{Email: "asha@example.com", PasswordHash: "hash:secret"},
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "suffix match succeeds",
			existing: &models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "hash:secret"},
			password: "secret",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &DefaultAuthService{Store: &stubStore{existing: tt.existing}}
			user, err := svc.Login(context.Background(), models.LoginRequest{
				Email:    "asha@example.com",
				Password: tt.password,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Asha", user.Name)
		})
	}
}
