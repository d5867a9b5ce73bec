package transaction_repository

import (
	"testing"
	"time"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTransactionsFilter(t *testing.T) {
	userId := primitive.NewObjectID()
	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("without bounds filters by owner only", func(t *testing.T) {
		filter := transactionsFilter(&usecase.FindTransactionsInput{UserId: userId})

		assert.Equal(t, bson.M{"user_id": userId}, filter)
	})

	t.Run("applies both bounds as a half-open interval", func(t *testing.T) {
		filter := transactionsFilter(&usecase.FindTransactionsInput{
			UserId: userId,
			From:   &from,
			To:     &to,
		})

		assert.Equal(t, bson.M{"$gte": from, "$lt": to}, filter["created_at"])
	})

	t.Run("applies a lower bound on its own", func(t *testing.T) {
		filter := transactionsFilter(&usecase.FindTransactionsInput{
			UserId: userId,
			From:   &from,
		})

		createdAt, ok := filter["created_at"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, bson.M{"$gte": from}, createdAt)
	})

	t.Run("applies an upper bound on its own", func(t *testing.T) {
		filter := transactionsFilter(&usecase.FindTransactionsInput{
			UserId: userId,
			To:     &to,
		})

		createdAt, ok := filter["created_at"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, bson.M{"$lt": to}, createdAt)
	})
}
