package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestUserIndexes(t *testing.T) {
	indexes := userIndexes()
	require.Len(t, indexes, 3)

	assert.Equal(t, usernameIndexName, *indexes[0].Options.Name)
	assert.True(t, *indexes[0].Options.Unique)
	assert.Equal(t, emailIndexName, *indexes[1].Options.Name)
	assert.True(t, *indexes[1].Options.Unique)
	assert.Nil(t, indexes[2].Options.Unique)
}

func TestEnsureUserIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates all indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		names, err := EnsureUserIndexes(context.Background(), mt.Coll)
		require.NoError(mt, err)
		assert.Equal(mt, []string{usernameIndexName, emailIndexName, friendsIndexName}, names)
	})

	mt.Run("propagates failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 85, Message: "index options conflict", Name: "IndexOptionsConflict",
		}))

		_, err := EnsureUserIndexes(context.Background(), mt.Coll)
		assert.Error(mt, err)
	})
}
