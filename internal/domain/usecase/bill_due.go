package usecase

import (
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBillDueRepository interface {
	Create(due *models.BillDueInput) (*models.BillDue, error)
}

// FindBillDuesByRangeRepository lists dues with a dueDate inside the
// half-open interval [from, to).
type FindBillDuesByRangeRepository interface {
	Find(userId primitive.ObjectID, from, to time.Time) ([]models.BillDue, error)
}

type FindBillDueByIdRepository interface {
	Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.BillDue, error)
}

// ExistsBillDueForRangeRepository reports whether the template already
// has a due inside [from, to). Month generation uses it to stay
// idempotent.
type ExistsBillDueForRangeRepository interface {
	Exists(userId, billId primitive.ObjectID, from, to time.Time) (bool, error)
}

type UpdateBillDueRepository interface {
	Update(id primitive.ObjectID, userId primitive.ObjectID, title string, amountPlanned float64, status string) (*models.BillDue, error)
}

type DeleteBillDueRepository interface {
	Delete(id primitive.ObjectID, userId primitive.ObjectID) error
}

type PayBillDueInput struct {
	UserId       primitive.ObjectID
	DueId        primitive.ObjectID
	AccountId    primitive.ObjectID
	Amount       float64
	AllowPartial bool
}

type PayBillDueResult struct {
	Due         *models.BillDue     `json:"due"`
	Account     *models.Account     `json:"account"`
	Transaction *models.Transaction `json:"transaction"`
	Payment     *models.Payment     `json:"payment"`
}

// PayBillDueRepository applies one payment atomically: debit the
// account, append the expense transaction, record the payment event
// and update the due. All four commit together or none do.
type PayBillDueRepository interface {
	Pay(input *PayBillDueInput) (*PayBillDueResult, error)
}

type FindPaymentsByDueIdRepository interface {
	Find(dueId primitive.ObjectID, userId primitive.ObjectID) ([]models.Payment, error)
}
