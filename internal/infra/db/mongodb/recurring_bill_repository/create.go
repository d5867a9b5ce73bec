package recurring_bill_repository

import (
	"context"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateRecurringBillMongoRepository struct {
	Db *mongo.Database
}

func NewCreateRecurringBillMongoRepository(db *mongo.Database) *CreateRecurringBillMongoRepository {
	return &CreateRecurringBillMongoRepository{
		Db: db,
	}
}

func (c *CreateRecurringBillMongoRepository) Create(bill *models.RecurringBillInput) (*models.RecurringBill, error) {
	collection := c.Db.Collection("recurring_bills")

	now := time.Now().UTC()
	billToSave := models.RecurringBill{
		Id:               primitive.NewObjectID(),
		UserId:           bill.UserId,
		Title:            bill.Title,
		Currency:         bill.Currency,
		AmountType:       bill.AmountType,
		Amount:           bill.Amount,
		DayOfMonth:       models.ClampDayOfMonth(bill.DayOfMonth),
		DefaultAccountId: bill.DefaultAccountId,
		Notes:            bill.Notes,
		Active:           bill.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, billToSave)
	if err != nil {
		return nil, err
	}

	return &billToSave, nil
}
