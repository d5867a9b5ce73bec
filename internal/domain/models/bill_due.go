package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BillStatusPending = "PENDING"
	BillStatusPartial = "PARTIAL"
	BillStatusPaid    = "PAID"
	BillStatusOverdue = "OVERDUE"
)

var (
	ErrAccessDenied        = errors.New("resource does not belong to the user")
	ErrAccountNotFound     = errors.New("account not found")
	ErrDueNotFound         = errors.New("bill due not found")
	ErrCurrencyMismatch    = errors.New("account currency differs, exchange first")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// BillDue is one month's concrete instance of an expected payment,
// generated from a RecurringBill or entered ad hoc. Title and currency
// are snapshotted at creation so a later template edit does not rewrite
// history.
type BillDue struct {
	Id            primitive.ObjectID  `bson:"_id" json:"id"`
	UserId        primitive.ObjectID  `bson:"user_id" json:"userId"`
	BillId        *primitive.ObjectID `bson:"bill_id,omitempty" json:"billId,omitempty"`
	Title         string              `bson:"title" json:"title"`
	Currency      string              `bson:"currency" json:"currency"`
	AmountPlanned float64             `bson:"amount_planned" json:"amountPlanned"`
	AmountPaid    float64             `bson:"amount_paid" json:"amountPaid"`
	DueDate       time.Time           `bson:"due_date" json:"dueDate"`
	Status        string              `bson:"status" json:"status"` // PENDING | PARTIAL | PAID | OVERDUE
	PlanAccountId *primitive.ObjectID `bson:"plan_account_id,omitempty" json:"planAccountId,omitempty"`
	AccountId     *primitive.ObjectID `bson:"account_id,omitempty" json:"accountId,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
}

type BillDueInput struct {
	UserId        primitive.ObjectID  `bson:"user_id"`
	BillId        *primitive.ObjectID `bson:"bill_id,omitempty"`
	Title         string              `bson:"title"`
	Currency      string              `bson:"currency"`
	AmountPlanned float64             `bson:"amount_planned"`
	DueDate       time.Time           `bson:"due_date"`
	PlanAccountId *primitive.ObjectID `bson:"plan_account_id,omitempty"`
}

// DeriveBillStatus computes the status from the due's amounts and due
// date. A fully paid bill is never reported overdue, regardless of the
// due date.
func DeriveBillStatus(amountPlanned, amountPaid float64, dueDate, now time.Time) string {
	if amountPlanned > 0 && amountPaid >= amountPlanned {
		return BillStatusPaid
	}
	if dueDate.Before(now) {
		return BillStatusOverdue
	}
	if amountPaid > 0 {
		return BillStatusPartial
	}
	return BillStatusPending
}

// ApplyPayment applies a single payment to the due and the paying
// account in memory, returning the amount actually applied. The caller
// persists both documents plus the expense transaction atomically.
//
// With allowPartial the payment is clamped to the available balance;
// otherwise an insufficient balance fails the whole operation.
// AmountPaid may exceed AmountPlanned: a user can overpay an estimated
// bill, and the status saturates at PAID.
func (d *BillDue) ApplyPayment(account *Account, userId primitive.ObjectID, amount float64, allowPartial bool, now time.Time) (float64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	if d.UserId != userId || account.UserId != userId {
		return 0, ErrAccessDenied
	}
	if account.Currency != d.Currency {
		return 0, ErrCurrencyMismatch
	}

	applied := amount
	if account.Balance < amount {
		if !allowPartial {
			return 0, ErrInsufficientBalance
		}
		applied = account.Balance
		if applied <= 0 {
			return 0, ErrInsufficientBalance
		}
	}

	account.Balance = SubMoney(account.Balance, applied)
	d.AmountPaid = AddMoney(d.AmountPaid, applied)
	d.Status = DeriveBillStatus(d.AmountPlanned, d.AmountPaid, d.DueDate, now)
	d.AccountId = &account.Id
	d.UpdatedAt = now

	return applied, nil
}
