package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func AccountRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /account", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateAccountController(db)),
	))

	server.Handle("GET /account", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetAccountsController(db)),
	))

	server.Handle("PUT /account/{accountId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateAccountController(db)),
	))

	server.Handle("DELETE /account/{accountId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteAccountController(db)),
	))
}
