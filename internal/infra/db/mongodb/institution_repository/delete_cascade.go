package institution_repository

import (
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteInstitutionCascadeMongoRepository struct {
	Db *mongo.Database
}

func NewDeleteInstitutionCascadeMongoRepository(db *mongo.Database) *DeleteInstitutionCascadeMongoRepository {
	return &DeleteInstitutionCascadeMongoRepository{
		Db: db,
	}
}

// Delete removes the institution and its accounts in one transaction.
// Transactions and bill dues referencing the deleted accounts are kept
// as history.
func (d *DeleteInstitutionCascadeMongoRepository) Delete(id primitive.ObjectID, userId primitive.ObjectID) error {
	_, err := helpers.WithTransaction(d.Db, func(sc mongo.SessionContext) (interface{}, error) {
		accounts := d.Db.Collection("accounts")
		if _, err := accounts.DeleteMany(sc, bson.M{"user_id": userId, "institution_id": id}); err != nil {
			return nil, err
		}

		institutions := d.Db.Collection("institutions")
		if _, err := institutions.DeleteOne(sc, bson.M{"_id": id, "user_id": userId}); err != nil {
			return nil, err
		}

		return nil, nil
	})

	return err
}
