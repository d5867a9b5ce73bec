package account_repository

import (
	"context"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateAccountMongoRepository struct {
	Db *mongo.Database
}

func NewCreateAccountMongoRepository(db *mongo.Database) *CreateAccountMongoRepository {
	return &CreateAccountMongoRepository{
		Db: db,
	}
}

func (c *CreateAccountMongoRepository) Create(account *models.AccountInput) (*models.Account, error) {
	collection := c.Db.Collection("accounts")

	now := time.Now().UTC()
	accountToSave := models.Account{
		Id:            primitive.NewObjectID(),
		UserId:        account.UserId,
		InstitutionId: account.InstitutionId,
		Name:          account.Name,
		Currency:      account.Currency,
		Balance:       account.Balance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, accountToSave)
	if err != nil {
		return nil, err
	}

	return &accountToSave, nil
}
