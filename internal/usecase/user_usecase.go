// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// --- Input DTOs ---

// AddUserInput defines the data required to create a user.
type AddUserInput struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=1,max=64"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Disabled *bool   `json:"disabled,omitempty"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// FetchAllUsers lists every user, or only the one named username when it is set.
	FetchAllUsers(ctx context.Context, username string) ([]*entity.User, error)
	FetchByID(ctx context.Context, id string) (*entity.User, error)
	// FetchByUsername returns (nil, nil) when no user has that name.
	FetchByUsername(ctx context.Context, username string) (*entity.User, error)
	AddUser(ctx context.Context, input *AddUserInput) (*entity.User, error)
	EditUser(ctx context.Context, id string, input *UpdateUserInput, currentUser *entity.User) (*entity.User, error)
	RemoveUser(ctx context.Context, id string, currentUser *entity.User) (*entity.User, error)
}
