package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carbontrack-backend/internal/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role string, expiresIn time.Duration) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID.String(),
		"email": "alice@example.com",
		"name":  "Alice",
		"role":  role,
		"exp":   time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed, userID
}

func TestRequireAuth_InjectsClaims(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	signed, userID := signTestToken(t, "user", time.Hour)

	var got *UserClaims
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	require.Equal(t, userID, got.UserID)
	require.Equal(t, models.UserRoleUser, got.Role)
	require.Equal(t, "alice@example.com", got.Email)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(testSecret)
	signed, _ := signTestToken(t, "user", -time.Hour)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	m := NewAuthMiddleware("a-different-secret")
	signed, _ := signTestToken(t, "user", time.Hour)

	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a forged token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireReviewer_Roles(t *testing.T) {
	m := NewAuthMiddleware(testSecret)

	cases := []struct {
		role string
		want int
	}{
		{"user", http.StatusForbidden},
		{"reviewer", http.StatusOK},
		{"admin", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			signed, _ := signTestToken(t, tc.role, time.Hour)

			handler := m.RequireReviewer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signed)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.want, rec.Code)
		})
	}
}
