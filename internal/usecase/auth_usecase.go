package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// LoginInput carries the credentials of the password grant.
type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
	User        *entity.User
}

// AuthUsecase resolves credentials and bearer tokens to users.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, token string) (*entity.User, error)
}
