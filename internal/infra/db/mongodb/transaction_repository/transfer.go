package transaction_repository

import (
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransferFundsMongoRepository struct {
	Db *mongo.Database
}

func NewTransferFundsMongoRepository(db *mongo.Database) *TransferFundsMongoRepository {
	return &TransferFundsMongoRepository{
		Db: db,
	}
}

// Transfer moves amount between two same-currency accounts and appends
// one TRANSFER record, all inside a session transaction.
func (t *TransferFundsMongoRepository) Transfer(userId, fromAccountId, toAccountId primitive.ObjectID, amount float64) (*models.Transaction, error) {
	result, err := helpers.WithTransaction(t.Db, func(sc mongo.SessionContext) (interface{}, error) {
		accounts := t.Db.Collection("accounts")

		from, err := findAccountInSession(sc, accounts, fromAccountId)
		if err != nil {
			return nil, err
		}
		to, err := findAccountInSession(sc, accounts, toAccountId)
		if err != nil {
			return nil, err
		}

		if err := models.ValidateTransfer(from, to, userId, amount); err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		if err := setBalanceInSession(sc, accounts, from.Id, models.SubMoney(from.Balance, amount), now); err != nil {
			return nil, err
		}
		if err := setBalanceInSession(sc, accounts, to.Id, models.AddMoney(to.Balance, amount), now); err != nil {
			return nil, err
		}

		transaction := models.NewTransferTransaction(userId, from.Id, to.Id, amount, from.Currency, now)
		if _, err := t.Db.Collection("transactions").InsertOne(sc, transaction); err != nil {
			return nil, err
		}

		return transaction, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*models.Transaction), nil
}

func findAccountInSession(sc mongo.SessionContext, accounts *mongo.Collection, id primitive.ObjectID) (*models.Account, error) {
	result := accounts.FindOne(sc, bson.M{"_id": id})
	if result.Err() == mongo.ErrNoDocuments {
		return nil, models.ErrAccountNotFound
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var account models.Account
	if err := result.Decode(&account); err != nil {
		return nil, err
	}

	return &account, nil
}

func setBalanceInSession(sc mongo.SessionContext, accounts *mongo.Collection, id primitive.ObjectID, balance float64, now time.Time) error {
	_, err := accounts.UpdateOne(sc, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"balance": balance, "updated_at": now},
	})
	return err
}
