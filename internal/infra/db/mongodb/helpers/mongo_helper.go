package helpers

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.TODO()

var Timeout = 10 * time.Second

func MongoHelper(URI string, databaseName string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(URI)
	client, err := mongo.Connect(Ctx, clientOptions)
	if err != nil {
		log.Fatal(err)
	}

	err = client.Ping(Ctx, nil)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("MongoDB connection established with database", databaseName)

	return client.Database(databaseName)
}

// WithTransaction runs fn inside a session transaction on the given
// database. Every ledger and payment operation goes through here so a
// failed step leaves no partial writes.
func WithTransaction(db *mongo.Database, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	session, err := db.Client().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
