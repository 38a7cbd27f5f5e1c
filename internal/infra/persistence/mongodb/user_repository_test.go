package mongodb

import (
	"context"
	"testing"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func userDoc(id primitive.ObjectID, username, email string, friends ...primitive.ObjectID) bson.D {
	friendList := bson.A{}
	for _, f := range friends {
		friendList = append(friendList, f)
	}

	return bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: username},
		{Key: "email", Value: email},
		{Key: "hashed_password", Value: "$2a$10$hash"},
		{Key: "workouts", Value: bson.A{}},
		{Key: "nutrition", Value: bson.A{}},
		{Key: "friends", Value: friendList},
		{Key: "disabled", Value: false},
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestUserRepository_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns all documents in order", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		alice, bob := primitive.NewObjectID(), primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			userDoc(alice, "alice", "alice@example.com", bob),
			userDoc(bob, "bob", "bob@example.com"),
		))

		users, err := repo.Find(context.Background(), repository.UserFilter{})
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, alice.Hex(), users[0].ID)
		assert.Equal(mt, "alice", users[0].Username)
		assert.Equal(mt, []string{bob.Hex()}, users[0].Friends)
		assert.Equal(mt, "bob", users[1].Username)
		assert.Empty(mt, users[1].Friends)
	})

	mt.Run("empty result is not an error", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		users, err := repo.Find(context.Background(), repository.UserFilter{Username: "nobody"})
		require.NoError(mt, err)
		assert.Empty(mt, users)
	})

	mt.Run("malformed document", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "username", Value: "ghost"}},
		))

		_, err := repo.Find(context.Background(), repository.UserFilter{})
		assert.ErrorIs(mt, err, domainerrors.ErrInvalidUserDocument)
	})

	mt.Run("driver failure", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Message: "bad query", Name: "BadValue",
		}))

		_, err := repo.Find(context.Background(), repository.UserFilter{})
		var dbErr *domainerrors.DatabaseExecuteError
		assert.True(mt, errors.As(err, &dbErr))
	})

	mt.Run("invalid id never reaches the store", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)

		_, err := repo.Find(context.Background(), repository.UserFilter{ID: "not-an-id"})
		assert.ErrorIs(mt, err, domainerrors.ErrInvalidID)
	})
}

func TestUserRepository_FindOne(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			userDoc(id, "alice", "alice@example.com"),
		))

		user, err := repo.FindOne(context.Background(), repository.UserFilter{ID: id.Hex()})
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), user.ID)
		assert.Equal(mt, "alice@example.com", user.Email)
		assert.NotEmpty(mt, user.HashedPassword)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		user, err := repo.FindOne(context.Background(), repository.UserFilter{Username: "nobody"})
		assert.Nil(mt, user)
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns generated id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Insert(context.Background(), entity.NewUser("alice", "alice@example.com", "hash"))
		require.NoError(mt, err)
		assert.True(mt, primitive.IsValidObjectID(id))
	})

	mt.Run("duplicate key maps to conflict", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		_, err := repo.Insert(context.Background(), entity.NewUser("alice", "alice@example.com", "hash"))
		assert.ErrorIs(mt, err, domainerrors.ErrUserAlreadyExists)
	})

	mt.Run("invalid friend id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		user := entity.NewUser("alice", "alice@example.com", "hash")
		user.Friends = []string{"zzz"}

		_, err := repo.Insert(context.Background(), user)
		assert.ErrorIs(mt, err, domainerrors.ErrInvalidID)
	})
}

func TestUserRepository_FindOneAndUpdate(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns post-update document", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: userDoc(id, "alice2", "alice@example.com")},
		))

		user, err := repo.FindOneAndUpdate(context.Background(), id.Hex(), repository.UserUpdate{Username: strPtr("alice2")})
		require.NoError(mt, err)
		assert.Equal(mt, "alice2", user.Username)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.FindOneAndUpdate(context.Background(), primitive.NewObjectID().Hex(),
			repository.UserUpdate{Disabled: boolPtr(true)})
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 11000, Message: "E11000 duplicate key error", Name: "DuplicateKey",
		}))

		_, err := repo.FindOneAndUpdate(context.Background(), primitive.NewObjectID().Hex(),
			repository.UserUpdate{Email: strPtr("taken@example.com")})
		assert.ErrorIs(mt, err, domainerrors.ErrUserAlreadyExists)
	})

	mt.Run("empty update reads current document", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			userDoc(id, "alice", "alice@example.com"),
		))

		user, err := repo.FindOneAndUpdate(context.Background(), id.Hex(), repository.UserUpdate{})
		require.NoError(mt, err)
		assert.Equal(mt, "alice", user.Username)
	})
}

func TestUserRepository_FindOneAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns deleted document", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: userDoc(id, "alice", "alice@example.com")},
		))

		user, err := repo.FindOneAndDelete(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), user.ID)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.FindOneAndDelete(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("invalid id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)

		_, err := repo.FindOneAndDelete(context.Background(), "123")
		assert.ErrorIs(mt, err, domainerrors.ErrInvalidID)
	})
}

func TestBuildUserFilter(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name   string
		filter repository.UserFilter
		want   bson.M
	}{
		{
			name:   "empty matches all",
			filter: repository.UserFilter{},
			want:   bson.M{},
		},
		{
			name:   "fields are ANDed",
			filter: repository.UserFilter{ID: id.Hex(), Username: "alice"},
			want:   bson.M{"_id": id, "username": "alice"},
		},
		{
			name:   "match any builds $or",
			filter: repository.UserFilter{Username: "alice", Email: "a@example.com", MatchAny: true},
			want: bson.M{"$or": []bson.M{
				{"username": "alice"},
				{"email": "a@example.com"},
			}},
		},
		{
			name:   "match any with a single field",
			filter: repository.UserFilter{Email: "a@example.com", MatchAny: true},
			want:   bson.M{"email": "a@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildUserFilter(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildUserUpdate(t *testing.T) {
	got := buildUserUpdate(repository.UserUpdate{Email: strPtr("new@example.com"), Disabled: boolPtr(true)})

	assert.Equal(t, bson.M{"$set": bson.M{"email": "new@example.com", "disabled": true}}, got)
}
