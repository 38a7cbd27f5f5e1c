package mongodb

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements the domain.UserRepository interface on a MongoDB collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(coll *mongo.Collection) repository.UserRepository {
	return &userRepository{coll: coll}
}

// Find returns every user matching filter in natural order.
func (repo *userRepository) Find(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query, err := buildUserFilter(filter)
	if err != nil {
		return nil, err
	}

	cursor, err := repo.coll.Find(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find users")
	}
	defer cursor.Close(ctx)

	users := make([]*entity.User, 0)
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, domainerrors.ErrInvalidUserDocument.WithCause(err)
		}

		user, err := toUserDomain(&doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate users")
	}

	return users, nil
}

// FindOne returns the first user matching filter.
func (repo *userRepository) FindOne(ctx context.Context, filter repository.UserFilter) (*entity.User, error) {
	query, err := buildUserFilter(filter)
	if err != nil {
		return nil, err
	}

	return decodeSingleUser(repo.coll.FindOne(ctx, query), "failed to find user")
}

// Insert persists user and returns the identifier generated for it.
func (repo *userRepository) Insert(ctx context.Context, user *entity.User) (string, error) {
	doc, err := fromUserDomain(user)
	if err != nil {
		return "", err
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", conflictError(err)
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to insert user")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

// FindOneAndUpdate applies a $set of the present fields and returns the updated user.
func (repo *userRepository) FindOneAndUpdate(ctx context.Context, id string, update repository.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		// An empty $set is rejected by the server; nothing to change, so report the current state.
		return repo.FindOne(ctx, repository.UserFilter{ID: id})
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := repo.coll.FindOneAndUpdate(ctx, bson.M{fieldID: oid}, buildUserUpdate(update), opts)

	return decodeSingleUser(result, "failed to update user")
}

// FindOneAndDelete removes the user and returns the deleted document.
func (repo *userRepository) FindOneAndDelete(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	return decodeSingleUser(repo.coll.FindOneAndDelete(ctx, bson.M{fieldID: oid}), "failed to delete user")
}

func decodeSingleUser(result *mongo.SingleResult, details string) (*entity.User, error) {
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, conflictError(err)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	var doc userDocument
	if err := result.Decode(&doc); err != nil {
		return nil, domainerrors.ErrInvalidUserDocument.WithCause(err)
	}

	return toUserDomain(&doc)
}

// buildUserFilter translates a domain filter into a filter document.
func buildUserFilter(filter repository.UserFilter) (bson.M, error) {
	clauses := make([]bson.M, 0, 3)

	if filter.ID != "" {
		oid, err := parseObjectID(filter.ID)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, bson.M{fieldID: oid})
	}
	if filter.Username != "" {
		clauses = append(clauses, bson.M{fieldUsername: filter.Username})
	}
	if filter.Email != "" {
		clauses = append(clauses, bson.M{fieldEmail: filter.Email})
	}

	switch {
	case len(clauses) == 0:
		return bson.M{}, nil
	case filter.MatchAny && len(clauses) > 1:
		return bson.M{"$or": clauses}, nil
	}

	merged := bson.M{}
	for _, clause := range clauses {
		for k, v := range clause {
			merged[k] = v
		}
	}

	return merged, nil
}

// buildUserUpdate builds a $set document holding only the fields present in update.
func buildUserUpdate(update repository.UserUpdate) bson.M {
	set := bson.M{}
	if update.Username != nil {
		set[fieldUsername] = *update.Username
	}
	if update.Email != nil {
		set[fieldEmail] = *update.Email
	}
	if update.Disabled != nil {
		set[fieldDisabled] = *update.Disabled
	}

	return bson.M{"$set": set}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(domainerrors.ErrInvalidID, "id %q", id)
	}

	return oid, nil
}
