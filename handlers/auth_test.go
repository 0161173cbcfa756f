package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bettermann/models"
	"bettermann/services/auth"
	"bettermann/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAuthService struct {
	user *models.User
	err  error
}

func (s *stubAuthService) SignUp(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	return s.user, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	return s.user, s.err
}

func newAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.POST("/api/auth/signup", h.SignupHandler)
	r.POST("/api/auth/login", h.LoginHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSignupHandler(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name       string
		body       string
		svc        *stubAuthService
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       `{"name":"Asha","email":"asha@example.com","password":"secret"}`,
			svc:        &stubAuthService{user: &models.User{ID: oid, Name: "Asha", Email: "asha@example.com"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "duplicate email",
			body:       `{"name":"Asha","email":"asha@example.com","password":"secret"}`,
			svc:        &stubAuthService{err: auth.ErrDuplicateEmail},
			wantStatus: http.StatusBadRequest,
			wantError:  "duplicate_email",
		},
		{
			name:       "malformed email is rejected before the service runs",
			body:       `{"name":"Asha","email":"not-an-email","password":"secret"}`,
			svc:        &stubAuthService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
		{
			name:       "missing password",
			body:       `{"name":"Asha","email":"asha@example.com"}`,
			svc:        &stubAuthService{},
			wantStatus: http.StatusBadRequest,
			wantError:  "validation_error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, newAuthRouter(tt.svc), http.MethodPost, "/api/auth/signup", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				var resp utils.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
				return
			}

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, oid.Hex(), resp["id"])
			assert.Equal(t, "Asha", resp["name"])
			assert.Equal(t, "asha@example.com", resp["email"])
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		svc        *stubAuthService
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown email",
			svc:        &stubAuthService{err: auth.ErrUserNotFound},
			wantStatus: http.StatusNotFound,
			wantError:  "not_found",
		},
		{
			name:       "wrong password",
			svc:        &stubAuthService{err: auth.ErrInvalidCredentials},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_credentials",
		},
		{
			name:       "ok",
			svc:        &stubAuthService{user: &models.User{Name: "Asha", Email: "asha@example.com"}},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"email":"asha@example.com","password":"secret"}`
			rec := doJSON(t, newAuthRouter(tt.svc), http.MethodPost, "/api/auth/login", body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				var resp utils.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}
