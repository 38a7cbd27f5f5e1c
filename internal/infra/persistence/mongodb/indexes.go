package mongodb

import (
	"context"

	"fittrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usernameIndexName = "username_unique"
	emailIndexName    = "email_unique"
	friendsIndexName  = "friends"
)

// userIndexes backs the username/email uniqueness invariant and the friends
// lookup done by the friend-list cleaner.
func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldUsername, Value: 1}},
			Options: options.Index().SetName(usernameIndexName).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: fieldEmail, Value: 1}},
			Options: options.Index().SetName(emailIndexName).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: fieldFriends, Value: 1}},
			Options: options.Index().SetName(friendsIndexName),
		},
	}
}

// EnsureUserIndexes creates the users collection indexes. It is idempotent.
func EnsureUserIndexes(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	names, err := coll.Indexes().CreateMany(ctx, userIndexes())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user indexes")
	}

	return names, nil
}
