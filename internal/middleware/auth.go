package middleware

import (
	"context"
	"net/http"
	"strings"

	"carbontrack-backend/internal/models"
	"carbontrack-backend/utils/response"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type contextKey string

const UserContextKey contextKey = "user"

// UserClaims is the identity decoded from a bearer token. Role is trusted
// as-is for authorization decisions; it is not re-fetched per request.
type UserClaims struct {
	UserID uuid.UUID       `json:"id"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
}

type AuthMiddleware struct {
	jwtSecret string
}

func NewAuthMiddleware(jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{jwtSecret: jwtSecret}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			response.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		claims, err := m.validateToken(tokenString)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireReviewer gates the review surface to reviewer and admin roles.
func (m *AuthMiddleware) RequireReviewer(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		if claims == nil || !claims.Role.CanReview() {
			response.Error(w, http.StatusForbidden, "Reviewer access required")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func (m *AuthMiddleware) validateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(m.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrInvalidKey
	}

	userIDStr, ok := mapClaims["id"].(string)
	if !ok {
		return nil, jwt.ErrInvalidKey
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, err
	}

	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)
	role, ok := mapClaims["role"].(string)
	if !ok {
		return nil, jwt.ErrInvalidKey
	}

	return &UserClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   models.UserRole(role),
	}, nil
}

func GetUserFromContext(ctx context.Context) *UserClaims {
	claims, ok := ctx.Value(UserContextKey).(*UserClaims)
	if !ok {
		return nil
	}
	return claims
}
