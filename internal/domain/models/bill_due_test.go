package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeriveBillStatus(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -5)
	future := now.AddDate(0, 0, 5)

	tests := []struct {
		name    string
		planned float64
		paid    float64
		dueDate time.Time
		want    string
	}{
		{"fully paid past due date stays paid", 1000, 1000, past, BillStatusPaid},
		{"overpaid stays paid", 1000, 1200, past, BillStatusPaid},
		{"partially paid past due date is overdue", 1000, 400, past, BillStatusOverdue},
		{"unpaid past due date is overdue", 1000, 0, past, BillStatusOverdue},
		{"partially paid before due date", 1000, 400, future, BillStatusPartial},
		{"unpaid before due date", 1000, 0, future, BillStatusPending},
		{"variable due with nothing planned or paid", 0, 0, future, BillStatusPending},
		{"variable due with a payment before due date", 0, 300, future, BillStatusPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveBillStatus(tt.planned, tt.paid, tt.dueDate, now))
		})
	}
}

func newTestDue(userId primitive.ObjectID, currency string, planned float64, dueDate time.Time) *BillDue {
	return &BillDue{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		Title:         "Rent",
		Currency:      currency,
		AmountPlanned: planned,
		Status:        BillStatusPending,
		DueDate:       dueDate,
	}
}

func newTestAccount(userId primitive.ObjectID, currency string, balance float64) *Account {
	return &Account{
		Id:       primitive.NewObjectID(),
		UserId:   userId,
		Name:     "Checking",
		Currency: currency,
		Balance:  balance,
	}
}

func TestBillDueApplyPayment(t *testing.T) {
	userId := primitive.NewObjectID()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 10)

	t.Run("debits account and accumulates amount paid", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 8000)

		applied, err := due.ApplyPayment(acc, userId, 2000, true, now)

		require.NoError(t, err)
		assert.Equal(t, 2000.0, applied)
		assert.Equal(t, 6000.0, acc.Balance)
		assert.Equal(t, 2000.0, due.AmountPaid)
		assert.Equal(t, BillStatusPartial, due.Status)
		require.NotNil(t, due.AccountId)
		assert.Equal(t, acc.Id, *due.AccountId)
	})

	t.Run("amount paid is monotonically non-decreasing", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 10000)

		prev := due.AmountPaid
		for _, amount := range []float64{1000, 2500, 1500} {
			_, err := due.ApplyPayment(acc, userId, amount, true, now)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, due.AmountPaid, prev)
			prev = due.AmountPaid
		}
		assert.Equal(t, BillStatusPaid, due.Status)
		assert.Equal(t, 5000.0, acc.Balance)
	})

	t.Run("currency mismatch leaves everything untouched", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "USD", 8000)

		_, err := due.ApplyPayment(acc, userId, 2000, true, now)

		assert.ErrorIs(t, err, ErrCurrencyMismatch)
		assert.Equal(t, 8000.0, acc.Balance)
		assert.Equal(t, 0.0, due.AmountPaid)
		assert.Equal(t, BillStatusPending, due.Status)
		assert.Nil(t, due.AccountId)
	})

	t.Run("foreign due is denied", func(t *testing.T) {
		due := newTestDue(primitive.NewObjectID(), "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 8000)

		_, err := due.ApplyPayment(acc, userId, 2000, true, now)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 8000)

		_, err := due.ApplyPayment(acc, userId, 0, true, now)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("partial policy clamps to available balance", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 1200)

		applied, err := due.ApplyPayment(acc, userId, 2000, true, now)

		require.NoError(t, err)
		assert.Equal(t, 1200.0, applied)
		assert.Equal(t, 0.0, acc.Balance)
		assert.Equal(t, 1200.0, due.AmountPaid)
	})

	t.Run("strict policy fails on insufficient balance", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 1200)

		_, err := due.ApplyPayment(acc, userId, 2000, false, now)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, 1200.0, acc.Balance)
		assert.Equal(t, 0.0, due.AmountPaid)
	})

	t.Run("empty account under partial policy still fails", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 5000, future)
		acc := newTestAccount(userId, "ARS", 0)

		_, err := due.ApplyPayment(acc, userId, 2000, true, now)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("paying past the due date resolves overdue to paid", func(t *testing.T) {
		due := newTestDue(userId, "ARS", 1000, now.AddDate(0, 0, -3))
		due.Status = BillStatusOverdue
		acc := newTestAccount(userId, "ARS", 2000)

		_, err := due.ApplyPayment(acc, userId, 1000, true, now)

		require.NoError(t, err)
		assert.Equal(t, BillStatusPaid, due.Status)
	})
}
