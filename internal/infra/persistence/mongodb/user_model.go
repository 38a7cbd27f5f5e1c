package mongodb

import (
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	fieldID       = "_id"
	fieldUsername = "username"
	fieldEmail    = "email"
	fieldFriends  = "friends"
	fieldDisabled = "disabled"
)

// userDocument is the BSON shape of a user in the users collection.
type userDocument struct {
	ID             primitive.ObjectID       `bson:"_id,omitempty"`
	Username       string                   `bson:"username"`
	Email          string                   `bson:"email"`
	HashedPassword string                   `bson:"hashed_password"`
	Workouts       []string                 `bson:"workouts"`
	Nutrition      []nutritionEntryDocument `bson:"nutrition"`
	Friends        []primitive.ObjectID     `bson:"friends"`
	Disabled       bool                     `bson:"disabled"`
}

type nutritionEntryDocument struct {
	Food       string    `bson:"food"`
	Calories   int       `bson:"calories"`
	Protein    float64   `bson:"protein"`
	Carbs      float64   `bson:"carbs"`
	Fat        float64   `bson:"fat"`
	ConsumedAt time.Time `bson:"consumed_at"`
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence documents.

// toUserDomain validates a decoded document and converts it to a domain User.
// Documents written before the defaults existed get empty collections.
func toUserDomain(doc *userDocument) (*entity.User, error) {
	if doc == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidUserDocument, "nil document")
	}

	switch {
	case doc.ID.IsZero():
		return nil, errors.Wrap(domainerrors.ErrInvalidUserDocument, "missing _id")
	case doc.Username == "":
		return nil, errors.Wrapf(domainerrors.ErrInvalidUserDocument, "user %s has no username", doc.ID.Hex())
	case doc.Email == "":
		return nil, errors.Wrapf(domainerrors.ErrInvalidUserDocument, "user %s has no email", doc.ID.Hex())
	case doc.HashedPassword == "":
		return nil, errors.Wrapf(domainerrors.ErrInvalidUserDocument, "user %s has no password hash", doc.ID.Hex())
	}

	workouts := make([]string, len(doc.Workouts))
	copy(workouts, doc.Workouts)

	nutrition := make([]entity.NutritionEntry, 0, len(doc.Nutrition))
	for _, n := range doc.Nutrition {
		nutrition = append(nutrition, entity.NutritionEntry{
			Food:       n.Food,
			Calories:   n.Calories,
			Protein:    n.Protein,
			Carbs:      n.Carbs,
			Fat:        n.Fat,
			ConsumedAt: n.ConsumedAt,
		})
	}

	friends := make([]string, 0, len(doc.Friends))
	for _, f := range doc.Friends {
		friends = append(friends, f.Hex())
	}

	return &entity.User{
		ID:             doc.ID.Hex(),
		Username:       doc.Username,
		Email:          doc.Email,
		HashedPassword: doc.HashedPassword,
		Workouts:       workouts,
		Nutrition:      nutrition,
		Friends:        friends,
		Disabled:       doc.Disabled,
	}, nil
}

// fromUserDomain converts a domain User to a document. An empty ID is left for
// the store to generate.
func fromUserDomain(user *entity.User) (*userDocument, error) {
	doc := &userDocument{
		Username:       user.Username,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		Workouts:       make([]string, len(user.Workouts)),
		Nutrition:      make([]nutritionEntryDocument, 0, len(user.Nutrition)),
		Friends:        make([]primitive.ObjectID, 0, len(user.Friends)),
		Disabled:       user.Disabled,
	}
	copy(doc.Workouts, user.Workouts)

	if user.ID != "" {
		oid, err := primitive.ObjectIDFromHex(user.ID)
		if err != nil {
			return nil, errors.Wrapf(domainerrors.ErrInvalidID, "user id %q", user.ID)
		}
		doc.ID = oid
	}

	for _, n := range user.Nutrition {
		doc.Nutrition = append(doc.Nutrition, nutritionEntryDocument{
			Food:       n.Food,
			Calories:   n.Calories,
			Protein:    n.Protein,
			Carbs:      n.Carbs,
			Fat:        n.Fat,
			ConsumedAt: n.ConsumedAt,
		})
	}

	for _, f := range user.Friends {
		oid, err := primitive.ObjectIDFromHex(f)
		if err != nil {
			return nil, errors.Wrapf(domainerrors.ErrInvalidID, "friend id %q", f)
		}
		doc.Friends = append(doc.Friends, oid)
	}

	return doc, nil
}
