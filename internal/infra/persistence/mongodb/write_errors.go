package mongodb

import (
	"strings"

	domainerrors "fittrack/internal/domain/errors"
)

// duplicateKeyIndex returns the unique index a duplicate-key error tripped, or "".
// The server only reports it inside the error message.
func duplicateKeyIndex(err error) string {
	msg := err.Error()
	for _, name := range []string{usernameIndexName, emailIndexName} {
		if strings.Contains(msg, "index: "+name) {
			return name
		}
	}

	return ""
}

// conflictError maps a duplicate-key error to the user conflict, naming the field when known.
func conflictError(err error) error {
	switch duplicateKeyIndex(err) {
	case usernameIndexName:
		return domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists")
	case emailIndexName:
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	return domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate key")
}
