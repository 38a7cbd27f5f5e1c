package mongodb

import (
	"context"
	"log/slog"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type friendListCleaner struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewFriendListCleaner returns a FriendListCleaner that $pulls the id from every friends array.
func NewFriendListCleaner(coll *mongo.Collection, logger *slog.Logger) service.FriendListCleaner {
	return &friendListCleaner{coll: coll, logger: logger}
}

// RemoveFromAllFriendLists strips userID from the friends set of every user holding it.
func (c *friendListCleaner) RemoveFromAllFriendLists(ctx context.Context, userID string) error {
	oid, err := parseObjectID(userID)
	if err != nil {
		return err
	}

	result, err := c.coll.UpdateMany(ctx,
		bson.M{fieldFriends: oid},
		bson.M{"$pull": bson.M{fieldFriends: oid}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull user from friends lists")
	}

	c.logger.DebugContext(ctx, "Removed user from friends lists",
		slog.String("user_id", userID),
		slog.Int64("matched", result.MatchedCount),
		slog.Int64("modified", result.ModifiedCount),
	)

	return nil
}
