package mongodb

import (
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyException(msg string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Index: 0, Code: 11000, Message: msg}},
	}
}

func TestConflictError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		index   string
		message string
	}{
		{
			name:    "username index",
			err:     duplicateKeyException(`E11000 duplicate key error collection: fittrack.users index: username_unique dup key: { username: "alice" }`),
			index:   usernameIndexName,
			message: "username already exists",
		},
		{
			name:    "email index",
			err:     duplicateKeyException(`E11000 duplicate key error collection: fittrack.users index: email_unique dup key: { email: "a@example.com" }`),
			index:   emailIndexName,
			message: "email already exists",
		},
		{
			name:    "unknown index",
			err:     errors.New("E11000 duplicate key error"),
			index:   "",
			message: "duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.index, duplicateKeyIndex(tt.err))

			err := conflictError(tt.err)
			assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
