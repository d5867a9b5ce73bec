package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func LedgerRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /transfer", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeTransferFundsController(db)),
	))

	server.Handle("POST /exchange", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExchangeFundsController(db)),
	))

	server.Handle("POST /income", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRegisterIncomeController(db)),
	))

	server.Handle("GET /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetTransactionsController(db)),
	))
}
