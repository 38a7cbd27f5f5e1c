package mongodb

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "fittrack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFriendListCleaner_RemoveFromAllFriendLists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mt.Run("pulls id from every list", func(mt *mtest.T) {
		cleaner := NewFriendListCleaner(mt.Coll, logger)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 2},
			bson.E{Key: "nModified", Value: 2},
		))

		err := cleaner.RemoveFromAllFriendLists(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
	})

	mt.Run("no referencing users", func(mt *mtest.T) {
		cleaner := NewFriendListCleaner(mt.Coll, logger)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := cleaner.RemoveFromAllFriendLists(context.Background(), primitive.NewObjectID().Hex())
		assert.NoError(mt, err)
	})

	mt.Run("store failure", func(mt *mtest.T) {
		cleaner := NewFriendListCleaner(mt.Coll, logger)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Message: "bad update", Name: "BadValue",
		}))

		err := cleaner.RemoveFromAllFriendLists(context.Background(), primitive.NewObjectID().Hex())
		assert.Error(mt, err)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		cleaner := NewFriendListCleaner(mt.Coll, logger)

		err := cleaner.RemoveFromAllFriendLists(context.Background(), "nope")
		assert.ErrorIs(mt, err, domainerrors.ErrInvalidID)
	})
}
