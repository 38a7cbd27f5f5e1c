package impl

import (
	"context"
	"log/slog"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"
	"fittrack/internal/usecase"

	"go.uber.org/fx"
)

const tokenTypeBearer = "bearer"

type authService struct {
	users        usecase.UserUsecase
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Users        usecase.UserUsecase
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		users:        params.Users,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges a username and password for an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.users.FetchByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	// Unknown users and wrong passwords are indistinguishable to the caller.
	if user == nil || !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Info("Login rejected", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if user.Disabled {
		return nil, domainerrors.ErrUserDisabled
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}

// CurrentUser resolves a bearer token to an active user.
func (srv *authService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.users.FetchByID(ctx, claims.UserID)
	if errors.Is(err, domainerrors.ErrUserNotFound) || errors.Is(err, domainerrors.ErrInvalidID) {
		// The token outlived its user.
		return nil, domainerrors.ErrInvalidToken.WithCause(err)
	}
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, domainerrors.ErrUserDisabled
	}

	return user, nil
}
