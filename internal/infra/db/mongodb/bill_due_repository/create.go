package bill_due_repository

import (
	"context"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateBillDueMongoRepository struct {
	Db *mongo.Database
}

func NewCreateBillDueMongoRepository(db *mongo.Database) *CreateBillDueMongoRepository {
	return &CreateBillDueMongoRepository{
		Db: db,
	}
}

func (c *CreateBillDueMongoRepository) Create(due *models.BillDueInput) (*models.BillDue, error) {
	collection := c.Db.Collection("bill_dues")

	now := time.Now().UTC()
	dueToSave := models.BillDue{
		Id:            primitive.NewObjectID(),
		UserId:        due.UserId,
		BillId:        due.BillId,
		Title:         due.Title,
		Currency:      due.Currency,
		AmountPlanned: due.AmountPlanned,
		AmountPaid:    0,
		DueDate:       due.DueDate,
		Status:        models.BillStatusPending,
		PlanAccountId: due.PlanAccountId,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.InsertOne(ctx, dueToSave)
	if err != nil {
		return nil, err
	}

	return &dueToSave, nil
}
