package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestChangeStreamPipelineMatchesOnlyTheOwner(t *testing.T) {
	userId := primitive.NewObjectID()

	pipeline := changeStreamPipeline(userId)
	require.Len(t, pipeline, 1)

	stage := pipeline[0]
	require.Len(t, stage, 1)
	require.Equal(t, "$match", stage[0].Key)

	match, ok := stage[0].Value.(bson.M)
	require.True(t, ok)

	branches, ok := match["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, branches, 2)

	// every branch keys on the document owner, so a delete on another
	// user's document never matches
	for _, branch := range branches {
		predicate, ok := branch.(bson.M)
		require.True(t, ok)
		require.Len(t, predicate, 1)
		for field, value := range predicate {
			assert.Contains(t, []string{
				"fullDocument.user_id",
				"fullDocumentBeforeChange.user_id",
			}, field)
			assert.Equal(t, userId, value)
		}
	}
}
