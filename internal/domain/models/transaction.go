package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransactionTypeTransfer = "TRANSFER"
	TransactionTypeFx       = "FX"
	TransactionTypeIncome   = "INCOME"
	TransactionTypeExpense  = "EXPENSE"
)

// Transaction is the append-only ledger record. The Type field
// discriminates the variant; only the fields of that variant are set,
// the rest are omitted from the stored document.
type Transaction struct {
	Id     primitive.ObjectID `bson:"_id" json:"id"`
	UserId primitive.ObjectID `bson:"user_id" json:"userId"`
	Type   string             `bson:"type" json:"type"` // TRANSFER | FX | INCOME | EXPENSE

	// TRANSFER and FX
	FromAccountId *primitive.ObjectID `bson:"from_account_id,omitempty" json:"fromAccountId,omitempty"`
	ToAccountId   *primitive.ObjectID `bson:"to_account_id,omitempty" json:"toAccountId,omitempty"`

	// INCOME and EXPENSE
	AccountId *primitive.ObjectID `bson:"account_id,omitempty" json:"accountId,omitempty"`

	// TRANSFER, INCOME and EXPENSE
	Amount   float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency string  `bson:"currency,omitempty" json:"currency,omitempty"`

	// FX only
	SellAmount   float64 `bson:"sell_amount,omitempty" json:"sellAmount,omitempty"`
	SellCurrency string  `bson:"sell_currency,omitempty" json:"sellCurrency,omitempty"`
	BuyAmount    float64 `bson:"buy_amount,omitempty" json:"buyAmount,omitempty"`
	BuyCurrency  string  `bson:"buy_currency,omitempty" json:"buyCurrency,omitempty"`
	Rate         float64 `bson:"rate,omitempty" json:"rate,omitempty"`

	// INCOME note, EXPENSE due title
	Note  string              `bson:"note,omitempty" json:"note,omitempty"`
	DueId *primitive.ObjectID `bson:"due_id,omitempty" json:"dueId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

func NewTransferTransaction(userId, fromId, toId primitive.ObjectID, amount float64, currency string, now time.Time) *Transaction {
	return &Transaction{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		Type:          TransactionTypeTransfer,
		FromAccountId: &fromId,
		ToAccountId:   &toId,
		Amount:        amount,
		Currency:      currency,
		CreatedAt:     now,
	}
}

func NewFxTransaction(userId, fromId, toId primitive.ObjectID, sellAmount, buyAmount, rate float64, sellCurrency, buyCurrency string, now time.Time) *Transaction {
	return &Transaction{
		Id:            primitive.NewObjectID(),
		UserId:        userId,
		Type:          TransactionTypeFx,
		FromAccountId: &fromId,
		ToAccountId:   &toId,
		SellAmount:    sellAmount,
		SellCurrency:  sellCurrency,
		BuyAmount:     buyAmount,
		BuyCurrency:   buyCurrency,
		Rate:          rate,
		CreatedAt:     now,
	}
}

func NewIncomeTransaction(userId, accountId primitive.ObjectID, amount float64, currency, note string, now time.Time) *Transaction {
	return &Transaction{
		Id:        primitive.NewObjectID(),
		UserId:    userId,
		Type:      TransactionTypeIncome,
		AccountId: &accountId,
		Amount:    amount,
		Currency:  currency,
		Note:      note,
		CreatedAt: now,
	}
}

func NewExpenseTransaction(userId, accountId, dueId primitive.ObjectID, amount float64, currency, title string, now time.Time) *Transaction {
	return &Transaction{
		Id:        primitive.NewObjectID(),
		UserId:    userId,
		Type:      TransactionTypeExpense,
		AccountId: &accountId,
		DueId:     &dueId,
		Amount:    amount,
		Currency:  currency,
		Note:      title,
		CreatedAt: now,
	}
}
