package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account balance is mutated exclusively through ledger operations,
// never by the account update route.
type Account struct {
	Id            primitive.ObjectID `bson:"_id" json:"id"`
	UserId        primitive.ObjectID `bson:"user_id" json:"userId"`
	InstitutionId primitive.ObjectID `bson:"institution_id" json:"institutionId"`
	Name          string             `bson:"name" json:"name"`
	Currency      string             `bson:"currency" json:"currency"`
	Balance       float64            `bson:"balance" json:"balance"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

type AccountInput struct {
	UserId        primitive.ObjectID `bson:"user_id"`
	InstitutionId primitive.ObjectID `bson:"institution_id"`
	Name          string             `bson:"name"`
	Currency      string             `bson:"currency"`
	Balance       float64            `bson:"balance"`
}
