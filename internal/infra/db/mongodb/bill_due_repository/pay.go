package bill_due_repository

import (
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PayBillDueMongoRepository struct {
	Db *mongo.Database
}

func NewPayBillDueMongoRepository(db *mongo.Database) *PayBillDueMongoRepository {
	return &PayBillDueMongoRepository{
		Db: db,
	}
}

// Pay runs the whole payment as one session transaction: read due and
// account, apply the domain rules, debit the balance, append the
// EXPENSE transaction, record the payment event and rewrite the due.
// A failure at any step rolls back every write.
func (p *PayBillDueMongoRepository) Pay(input *usecase.PayBillDueInput) (*usecase.PayBillDueResult, error) {
	result, err := helpers.WithTransaction(p.Db, func(sc mongo.SessionContext) (interface{}, error) {
		dues := p.Db.Collection("bill_dues")
		accounts := p.Db.Collection("accounts")

		dueResult := dues.FindOne(sc, bson.M{"_id": input.DueId})
		if dueResult.Err() == mongo.ErrNoDocuments {
			return nil, models.ErrDueNotFound
		}
		if dueResult.Err() != nil {
			return nil, dueResult.Err()
		}
		var due models.BillDue
		if err := dueResult.Decode(&due); err != nil {
			return nil, err
		}

		accountResult := accounts.FindOne(sc, bson.M{"_id": input.AccountId})
		if accountResult.Err() == mongo.ErrNoDocuments {
			return nil, models.ErrAccountNotFound
		}
		if accountResult.Err() != nil {
			return nil, accountResult.Err()
		}
		var account models.Account
		if err := accountResult.Decode(&account); err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		applied, err := due.ApplyPayment(&account, input.UserId, input.Amount, input.AllowPartial, now)
		if err != nil {
			return nil, err
		}

		if _, err := accounts.UpdateOne(sc, bson.M{"_id": account.Id}, bson.M{
			"$set": bson.M{"balance": account.Balance, "updated_at": now},
		}); err != nil {
			return nil, err
		}

		transaction := models.NewExpenseTransaction(input.UserId, account.Id, due.Id, applied, account.Currency, due.Title, now)
		if _, err := p.Db.Collection("transactions").InsertOne(sc, transaction); err != nil {
			return nil, err
		}

		payment := &models.Payment{
			Id:        transaction.Id,
			UserId:    input.UserId,
			DueId:     due.Id,
			AccountId: account.Id,
			Amount:    applied,
			Currency:  account.Currency,
			CreatedAt: now,
		}
		if _, err := p.Db.Collection("payments").InsertOne(sc, payment); err != nil {
			return nil, err
		}

		if _, err := dues.UpdateOne(sc, bson.M{"_id": due.Id}, bson.M{
			"$set": bson.M{
				"amount_paid": due.AmountPaid,
				"status":      due.Status,
				"account_id":  due.AccountId,
				"updated_at":  now,
			},
		}); err != nil {
			return nil, err
		}

		return &usecase.PayBillDueResult{
			Due:         &due,
			Account:     &account,
			Transaction: transaction,
			Payment:     payment,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*usecase.PayBillDueResult), nil
}
