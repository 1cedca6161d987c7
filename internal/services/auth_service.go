package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carbontrack-backend/internal/database"
	"carbontrack-backend/internal/dto"
	"carbontrack-backend/internal/models"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

const pqUniqueViolation = "23505"

type AuthService struct {
	db        *database.DB
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(db *database.DB, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type AuthResult struct {
	User  *models.User
	Token string
}

func (s *AuthService) Register(req *dto.RegisterUserRequest) (*AuthResult, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user models.User
	query := `
		insert into users (email, password_hash, name, role)
		values ($1, $2, $3, $4)
		returning id, email, name, role, created_at, updated_at
	`
	if err := s.db.Get(&user, query, req.Email, string(bytes), req.Name, req.Role); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.signToken(&user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: &user, Token: token}, nil
}

func (s *AuthService) Login(req *dto.LoginUserRequest) (*AuthResult, error) {
	var user models.User
	query := "select id, email, name, role, password_hash from users where email = $1"

	if err := s.db.Get(&user, query, req.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(&user)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: &user, Token: token}, nil
}

func (s *AuthService) GetUserByID(userID uuid.UUID) (*models.User, error) {
	var user models.User
	query := "select id, email, name, role, created_at, updated_at from users where id = $1"

	if err := s.db.Get(&user, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// signToken embeds the role in the token; a role change is picked up on the
// next login, not mid-session.
func (s *AuthService) signToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}
