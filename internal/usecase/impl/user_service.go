// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fittrack/internal/delivery/context"
	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"
	"fittrack/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	cleaner     service.FriendListCleaner
	idValidator service.IDValidator
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	Hasher      service.PasswordHasher
	Cleaner     service.FriendListCleaner
	IDValidator service.IDValidator
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:    params.UserRepo,
		hasher:      params.Hasher,
		cleaner:     params.Cleaner,
		idValidator: params.IDValidator,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) FetchAllUsers(ctx context.Context, username string) ([]*entity.User, error) {
	users, err := srv.userRepo.Find(ctx, repository.UserFilter{Username: username})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}
	if len(users) == 0 {
		return nil, domainerrors.ErrUsersNotFound
	}

	return users, nil
}

func (srv *userService) FetchByID(ctx context.Context, id string) (*entity.User, error) {
	if !srv.idValidator.IsValid(id) {
		return nil, domainerrors.ErrInvalidID
	}

	user, err := srv.userRepo.FindOne(ctx, repository.UserFilter{ID: id})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

func (srv *userService) FetchByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindOne(ctx, repository.UserFilter{Username: username})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, nil //nolint:nilnil // absence is not an error here
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}

// AddUser creates a user unless the username or email is already taken.
func (srv *userService) AddUser(ctx context.Context, input *usecase.AddUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Adding user", slog.String("username", input.Username))

	_, err := srv.userRepo.FindOne(ctx, repository.UserFilter{
		Username: input.Username,
		Email:    input.Email,
		MatchAny: true,
	})
	switch {
	case err == nil:
		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check for existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithCause(err)
	}

	user := entity.NewUser(input.Username, input.Email, hashedPassword)
	id, err := srv.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert user")
	}
	user.ID = id

	srv.log(ctx).Info("User added", slog.String("user_id", id))
	srv.publish(ctx, service.UserEventCreated, user)

	return user, nil
}

// EditUser applies a partial update to the caller's own record.
func (srv *userService) EditUser(
	ctx context.Context,
	id string,
	input *usecase.UpdateUserInput,
	currentUser *entity.User,
) (*entity.User, error) {
	if currentUser == nil || currentUser.ID != id {
		return nil, domainerrors.ErrCannotEditOtherUsers
	}
	if !srv.idValidator.IsValid(id) {
		return nil, domainerrors.ErrInvalidID
	}

	update := repository.UserUpdate{}
	if input != nil {
		update.Username = input.Username
		update.Email = input.Email
		update.Disabled = input.Disabled
	}

	user, err := srv.userRepo.FindOneAndUpdate(ctx, id, update)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// RemoveUser strips the user from every friends list, then deletes it.
func (srv *userService) RemoveUser(ctx context.Context, id string, currentUser *entity.User) (*entity.User, error) {
	if currentUser == nil || currentUser.ID != id {
		return nil, domainerrors.ErrCannotDeleteOtherUsers
	}
	if !srv.idValidator.IsValid(id) {
		return nil, domainerrors.ErrInvalidID
	}

	if err := srv.cleaner.RemoveFromAllFriendLists(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to clean friends lists", slog.String("user_id", id), slog.Any("error", err))

		return nil, domainerrors.ErrFriendCleanupFailed.WithCause(err)
	}

	user, err := srv.userRepo.FindOneAndDelete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User removed", slog.String("user_id", id))
	srv.publish(ctx, service.UserEventDeleted, user)

	return user, nil
}

// publish is best-effort: a failed publish is logged and never fails the operation.
func (srv *userService) publish(ctx context.Context, eventType service.UserEventType, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.UserEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		UserID:     user.ID,
		Username:   user.Username,
		OccurredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishUserEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user event",
			slog.String("type", string(eventType)),
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}
}
