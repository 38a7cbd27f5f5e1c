// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"fittrack/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserFilter selects users. Zero-valued fields are ignored; an empty filter
// matches every user. Set fields are ANDed unless MatchAny is true, in which
// case they are ORed.
type UserFilter struct {
	ID       string
	Username string
	Email    string
	MatchAny bool
}

// IsEmpty reports whether the filter matches every user.
func (f UserFilter) IsEmpty() bool {
	return f.ID == "" && f.Username == "" && f.Email == ""
}

// UserUpdate is a partial replacement. Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Disabled *bool
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Disabled == nil
}

// UserRepository is the users collection. Every method is a single round trip
// to the store; atomicity of the find-and-modify operations is the store's.
type UserRepository interface {
	// Find returns every user matching filter in natural order. An empty result is not an error.
	Find(ctx context.Context, filter UserFilter) ([]*entity.User, error)

	// FindOne returns the first user matching filter, or ErrUserNotFound.
	FindOne(ctx context.Context, filter UserFilter) (*entity.User, error)

	// Insert persists user and returns the identifier assigned by the store.
	Insert(ctx context.Context, user *entity.User) (string, error)

	// FindOneAndUpdate applies update to the user with the given id and returns
	// the document as it is after the update, or ErrUserNotFound.
	FindOneAndUpdate(ctx context.Context, id string, update UserUpdate) (*entity.User, error)

	// FindOneAndDelete removes the user with the given id and returns it, or ErrUserNotFound.
	FindOneAndDelete(ctx context.Context, id string) (*entity.User, error)
}
