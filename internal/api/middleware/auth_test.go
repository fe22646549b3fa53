package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/mocks"
	"github.com/phrazzld/tasklist-api/internal/service/auth"
)

func seedUser(t *testing.T, userStore *mocks.MockUserStore, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Test User", email, "password123")
	require.NoError(t, err)
	user.HashedPassword = "hashed:password123"
	user.Password = ""
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	user := seedUser(t, userStore, "ada@example.com")

	jwtService := &mocks.MockJWTService{
		Claims: &auth.Claims{UserID: user.ID, Email: user.Email},
	}
	middleware := NewAuthMiddleware(jwtService, userStore)

	var gotUserID uuid.UUID
	var gotOK bool
	protected := middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token puts the user id in the context", func(t *testing.T) {
		gotUserID, gotOK = uuid.Nil, false

		rec := serve("Bearer some.valid.token")

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, gotOK)
		assert.Equal(t, user.ID, gotUserID)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		rec := serve("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization header required")
	})

	t.Run("malformed header is 401", func(t *testing.T) {
		for _, header := range []string{"some.valid.token", "Basic abc123", "Bearer"} {
			rec := serve(header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
			assert.Contains(t, rec.Body.String(), "Invalid authorization format")
		}
	})

	t.Run("expired token is 401", func(t *testing.T) {
		expired := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer expired.token")
		NewAuthMiddleware(expired, userStore).Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token expired")
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		invalid := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		NewAuthMiddleware(invalid, userStore).Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})

	t.Run("token for a deleted user is 401", func(t *testing.T) {
		orphaned := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: uuid.New(), Email: "gone@example.com"},
		}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
		req.Header.Set("Authorization", "Bearer orphaned.token")
		NewAuthMiddleware(orphaned, userStore).Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGetUserIDWithoutAuthentication(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	_, ok := GetUserID(req)
	assert.False(t, ok)
}
