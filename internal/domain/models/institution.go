package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Institution struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	UserId    primitive.ObjectID `bson:"user_id" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Kind      string             `bson:"kind" json:"kind"` // BANK_PHYSICAL | BANK_VIRTUAL | WALLET | BROKER | CRYPTO_EXCHANGE | CASH
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type InstitutionInput struct {
	UserId primitive.ObjectID `bson:"user_id"`
	Name   string             `bson:"name"`
	Kind   string             `bson:"kind"`
}
