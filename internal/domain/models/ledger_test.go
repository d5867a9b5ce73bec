package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateTransfer(t *testing.T) {
	userId := primitive.NewObjectID()

	t.Run("accepts a covered same-currency transfer", func(t *testing.T) {
		from := newTestAccount(userId, "ARS", 500)
		to := newTestAccount(userId, "ARS", 200)
		assert.NoError(t, ValidateTransfer(from, to, userId, 100))
	})

	t.Run("rejects insufficient balance", func(t *testing.T) {
		from := newTestAccount(userId, "ARS", 500)
		to := newTestAccount(userId, "ARS", 200)
		assert.ErrorIs(t, ValidateTransfer(from, to, userId, 1000), ErrInsufficientBalance)
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		from := newTestAccount(userId, "ARS", 500)
		to := newTestAccount(userId, "USD", 200)
		assert.ErrorIs(t, ValidateTransfer(from, to, userId, 100), ErrCurrencyMismatch)
	})

	t.Run("rejects a foreign account", func(t *testing.T) {
		from := newTestAccount(userId, "ARS", 500)
		to := newTestAccount(primitive.NewObjectID(), "ARS", 200)
		assert.ErrorIs(t, ValidateTransfer(from, to, userId, 100), ErrAccessDenied)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		from := newTestAccount(userId, "ARS", 500)
		to := newTestAccount(userId, "ARS", 200)
		assert.ErrorIs(t, ValidateTransfer(from, to, userId, 0), ErrInvalidAmount)
	})
}

func TestValidateExchange(t *testing.T) {
	userId := primitive.NewObjectID()

	t.Run("accepts a covered cross-currency exchange", func(t *testing.T) {
		from := newTestAccount(userId, "USD", 500)
		to := newTestAccount(userId, "ARS", 0)
		assert.NoError(t, ValidateExchange(from, to, userId, 100, 1050.5))
	})

	t.Run("rejects identical currencies", func(t *testing.T) {
		from := newTestAccount(userId, "USD", 500)
		to := newTestAccount(userId, "USD", 0)
		assert.ErrorIs(t, ValidateExchange(from, to, userId, 100, 1), ErrSameCurrency)
	})

	t.Run("rejects a non-positive rate", func(t *testing.T) {
		from := newTestAccount(userId, "USD", 500)
		to := newTestAccount(userId, "ARS", 0)
		assert.ErrorIs(t, ValidateExchange(from, to, userId, 100, 0), ErrInvalidAmount)
	})
}

func TestValidateIncome(t *testing.T) {
	userId := primitive.NewObjectID()
	account := newTestAccount(userId, "ARS", 0)

	assert.NoError(t, ValidateIncome(account, userId, 50))
	assert.ErrorIs(t, ValidateIncome(account, userId, -1), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateIncome(account, primitive.NewObjectID(), 50), ErrAccessDenied)
}

func TestMoneyArithmetic(t *testing.T) {
	// Naive float math gives 0.30000000000000004 here.
	assert.Equal(t, 0.3, AddMoney(0.1, 0.2))
	assert.Equal(t, 0.1, SubMoney(0.3, 0.2))
	assert.Equal(t, 105050.0, MulMoney(100, 1050.5))
	assert.Equal(t, 0.00000001, MulMoney(0.000000005, 2))
}
