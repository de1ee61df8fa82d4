package domain

import (
	"context"
	"time"
)

// User represents a registered account.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public returns a copy of the user with the password hash stripped.
// Everything that leaves the service layer goes through this.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	p := *u
	p.PasswordHash = ""
	return &p
}

// UserRepository defines persistence operations for users.
// Create must be atomic with respect to concurrent callers: email
// uniqueness is enforced by the storage layer, not by a prior lookup.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
