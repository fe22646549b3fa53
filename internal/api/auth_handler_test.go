package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tasklist-api/internal/mocks"
	"github.com/phrazzld/tasklist-api/internal/service/auth"
)

func newAuthFixture() (*AuthHandler, *mocks.MockUserStore, *mocks.MockJWTService) {
	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "signed.jwt.token"}
	hasher := &mocks.MockPasswordHasher{}
	return NewAuthHandler(userStore, jwtService, hasher, hasher), userStore, jwtService
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user and returns 201 without a token", func(t *testing.T) {
		t.Parallel()
		handler, userStore, _ := newAuthFixture()

		rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, "Ada Lovelace", resp.FullName)
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.NotContains(t, rec.Body.String(), "token")

		stored, err := userStore.GetByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed:password123", stored.HashedPassword)
		assert.Empty(t, stored.Password)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		t.Parallel()
		handler, _, _ := newAuthFixture()

		req := RegisterRequest{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "password123",
		}
		require.Equal(t, http.StatusCreated, postJSON(t, handler.Register, "/api/auth/register", req).Code)
		assert.Equal(t, http.StatusConflict, postJSON(t, handler.Register, "/api/auth/register", req).Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		t.Parallel()
		handler, _, _ := newAuthFixture()

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		handler.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failures are 400", func(t *testing.T) {
		t.Parallel()
		handler, _, _ := newAuthFixture()

		tests := []RegisterRequest{
			{FullName: "", Email: "ada@example.com", Password: "password123"},
			{FullName: "Ada", Email: "not-an-email", Password: "password123"},
			{FullName: "Ada", Email: "ada@example.com", Password: "short"},
		}
		for _, req := range tests {
			rec := postJSON(t, handler.Register, "/api/auth/register", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "request %+v", req)
		}
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	registerUser := func(t *testing.T, handler *AuthHandler) {
		t.Helper()
		rec := postJSON(t, handler.Register, "/api/auth/register", RegisterRequest{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		t.Parallel()
		handler, _, _ := newAuthFixture()
		registerUser(t, handler)

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("unknown email is 401", func(t *testing.T) {
		t.Parallel()
		handler, _, _ := newAuthFixture()

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("wrong password is 401 with the same message", func(t *testing.T) {
		t.Parallel()
		handler, _, _ := newAuthFixture()
		registerUser(t, handler)

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong password",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("token generation failure is 500", func(t *testing.T) {
		t.Parallel()
		handler, _, jwtService := newAuthFixture()
		registerUser(t, handler)
		jwtService.Err = auth.ErrInvalidToken

		rec := postJSON(t, handler.Login, "/api/auth/login", LoginRequest{
			Email:    "ada@example.com",
			Password: "password123",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
