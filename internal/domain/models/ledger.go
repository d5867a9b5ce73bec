package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrSameCurrency = errors.New("fx requires two different currencies")

// Pure preconditions for the atomic ledger operations. The Mongo
// repositories run these inside the transaction callback so a failed
// check leaves every document untouched.

func ValidateTransfer(from, to *Account, userId primitive.ObjectID, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if from.UserId != userId || to.UserId != userId {
		return ErrAccessDenied
	}
	if from.Currency != to.Currency {
		return ErrCurrencyMismatch
	}
	if from.Balance < amount {
		return ErrInsufficientBalance
	}
	return nil
}

func ValidateExchange(from, to *Account, userId primitive.ObjectID, sellAmount, rate float64) error {
	if sellAmount <= 0 || rate <= 0 {
		return ErrInvalidAmount
	}
	if from.UserId != userId || to.UserId != userId {
		return ErrAccessDenied
	}
	if from.Currency == to.Currency {
		return ErrSameCurrency
	}
	if from.Balance < sellAmount {
		return ErrInsufficientBalance
	}
	return nil
}

func ValidateIncome(account *Account, userId primitive.ObjectID, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if account.UserId != userId {
		return ErrAccessDenied
	}
	return nil
}
