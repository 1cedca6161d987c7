package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleReviewer UserRole = "reviewer"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleUser, UserRoleReviewer, UserRoleAdmin:
		return true
	}
	return false
}

// CanReview reports whether the role may act on the review queue.
func (r UserRole) CanReview() bool {
	return r == UserRoleReviewer || r == UserRoleAdmin
}

type User struct {
	ID uuid.UUID `db:"id" json:"id"`

	Email        string   `db:"email" json:"email"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Name         string   `db:"name" json:"name"`
	Role         UserRole `db:"role" json:"role"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
