package dto

import (
	"errors"
	"net/mail"
	"strings"

	"carbontrack-backend/internal/models"

	"github.com/hashicorp/go-multierror"
)

type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (r *RegisterUserRequest) Validate() error {
	var result *multierror.Error

	if r.Email == "" {
		result = multierror.Append(result, errors.New("email is required"))
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		result = multierror.Append(result, errors.New("email is not a valid address"))
	}

	if len(r.Password) < 8 {
		result = multierror.Append(result, errors.New("password must be at least 8 characters"))
	}

	if strings.TrimSpace(r.Name) == "" {
		result = multierror.Append(result, errors.New("name is required"))
	}

	if r.Role == "" {
		r.Role = string(models.UserRoleUser)
	} else if !models.UserRole(r.Role).Valid() {
		result = multierror.Append(result, errors.New("role must be one of: user, reviewer, admin"))
	}

	return result.ErrorOrNil()
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginUserRequest) Validate() error {
	var result *multierror.Error

	if r.Email == "" {
		result = multierror.Append(result, errors.New("email is required"))
	}
	if r.Password == "" {
		result = multierror.Append(result, errors.New("password is required"))
	}

	return result.ErrorOrNil()
}

// AuthResponse is the body of successful register/login calls. The user
// model never serializes its password hash.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
