package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecurringBill is a monthly payment template. It holds no running
// state; each month gets its own BillDue instance.
type RecurringBill struct {
	Id               primitive.ObjectID  `bson:"_id" json:"id"`
	UserId           primitive.ObjectID  `bson:"user_id" json:"userId"`
	Title            string              `bson:"title" json:"title"`
	Currency         string              `bson:"currency" json:"currency"`
	AmountType       string              `bson:"amount_type" json:"amountType"` // FIXED | ESTIMATE | VARIABLE
	Amount           float64             `bson:"amount" json:"amount"`
	DayOfMonth       int                 `bson:"day_of_month" json:"dayOfMonth"`
	DefaultAccountId *primitive.ObjectID `bson:"default_account_id,omitempty" json:"defaultAccountId,omitempty"`
	Notes            string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Active           bool                `bson:"active" json:"active"`
	CreatedAt        time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updatedAt"`
}

type RecurringBillInput struct {
	UserId           primitive.ObjectID  `bson:"user_id"`
	Title            string              `bson:"title"`
	Currency         string              `bson:"currency"`
	AmountType       string              `bson:"amount_type"`
	Amount           float64             `bson:"amount"`
	DayOfMonth       int                 `bson:"day_of_month"`
	DefaultAccountId *primitive.ObjectID `bson:"default_account_id,omitempty"`
	Notes            string              `bson:"notes,omitempty"`
	Active           bool                `bson:"active"`
}

// ClampDayOfMonth forces the due day into [1,28] so every month of the
// year has that day.
func ClampDayOfMonth(day int) int {
	if day < 1 {
		return 1
	}
	if day > 28 {
		return 28
	}
	return day
}

// PlannedAmount is the amount a generated due starts with: FIXED and
// ESTIMATE templates carry their stored amount, VARIABLE dues start at
// zero and are edited once the real amount is known.
func (b *RecurringBill) PlannedAmount() float64 {
	if b.AmountType == "FIXED" || b.AmountType == "ESTIMATE" {
		return b.Amount
	}
	return 0
}

// DueDateFor returns UTC midnight on the clamped day of the given month.
func (b *RecurringBill) DueDateFor(year int, month time.Month) time.Time {
	return time.Date(year, month, ClampDayOfMonth(b.DayOfMonth), 0, 0, 0, 0, time.UTC)
}
