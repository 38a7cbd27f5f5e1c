package impl

import (
	"io"
	"log/slog"

	"fittrack/internal/domain/entity"
)

const (
	aliceID = "507f1f77bcf86cd799439011"
	bobID   = "507f191e810c19729de860ea"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoredUser(id, username string) *entity.User {
	user := entity.NewUser(username, username+"@example.com", "$2a$10$hashed")
	user.ID = id

	return user
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
