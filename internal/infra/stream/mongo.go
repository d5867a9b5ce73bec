package stream

import (
	"context"
	"log"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoHub struct {
	Db *mongo.Database
}

func NewMongoHub(db *mongo.Database) *MongoHub {
	return &MongoHub{
		Db: db,
	}
}

// Subscribe opens a change stream on the query's collection filtered
// by owner and pumps its notifications into the subscription channel
// until the context is done or Cancel is called.
func (h *MongoHub) Subscribe(ctx context.Context, query Query) (*Subscription, error) {
	userId, err := primitive.ObjectIDFromHex(query.UserId)
	if err != nil {
		return nil, err
	}

	pipeline := changeStreamPipeline(userId)

	streamCtx, cancel := context.WithCancel(ctx)
	opts := options.ChangeStream().
		SetFullDocument(options.UpdateLookup).
		SetFullDocumentBeforeChange(options.WhenAvailable)
	changeStream, err := h.Db.Collection(query.Collection).Watch(streamCtx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, err
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer changeStream.Close(context.Background())

		for changeStream.Next(streamCtx) {
			var change struct {
				OperationType string `bson:"operationType"`
				DocumentKey   struct {
					Id primitive.ObjectID `bson:"_id"`
				} `bson:"documentKey"`
				FullDocument map[string]interface{} `bson:"fullDocument"`
			}
			if err := changeStream.Decode(&change); err != nil {
				log.Printf("change stream decode on %s: %v", query.Collection, err)
				continue
			}

			event := Event{
				Operation:  operationFor(change.OperationType),
				Collection: query.Collection,
				DocumentId: change.DocumentKey.Id.Hex(),
				Document:   change.FullDocument,
			}

			select {
			case events <- event:
			case <-streamCtx.Done():
				return
			}
		}
	}()

	return &Subscription{
		Id:     uuid.New(),
		Events: events,
		cancel: cancel,
	}, nil
}

// changeStreamPipeline matches only the owner's documents. Deletes
// carry no fullDocument, so they are matched through the pre-image;
// collections must have changeStreamPreAndPostImages enabled for
// delete events to reach subscribers.
func changeStreamPipeline(userId primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"fullDocument.user_id": userId},
				bson.M{"fullDocumentBeforeChange.user_id": userId},
			},
		}}},
	}
}

func operationFor(operationType string) string {
	switch operationType {
	case "insert":
		return OperationInsert
	case "update":
		return OperationUpdate
	case "replace":
		return OperationReplace
	case "delete":
		return OperationDelete
	}
	return OperationUpdate
}
