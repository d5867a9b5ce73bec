package setup

import (
	"net/http"
	"os"

	"github.com/platahq/plata-backend/internal/infra/db/mongodb/helpers"
	"github.com/platahq/plata-backend/internal/infra/stream"
	"github.com/platahq/plata-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGO_URL"), os.Getenv("MONGO_DB"))
	hub := stream.NewMongoHub(db)

	config.SetupRoutes(mux, db, os.Getenv("REDIS_URL"), hub)

	return mux
}
