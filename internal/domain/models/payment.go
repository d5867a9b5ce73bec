package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is one payment event against a BillDue. The sum of a due's
// payments reconciles with its AmountPaid.
type Payment struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	UserId    primitive.ObjectID `bson:"user_id" json:"userId"`
	DueId     primitive.ObjectID `bson:"due_id" json:"dueId"`
	AccountId primitive.ObjectID `bson:"account_id" json:"accountId"`
	Amount    float64            `bson:"amount" json:"amount"`
	Currency  string             `bson:"currency" json:"currency"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
