package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func RecurringBillRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /recurring-bill", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateRecurringBillController(db)),
	))

	server.Handle("GET /recurring-bill", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetRecurringBillsController(db)),
	))

	server.Handle("PUT /recurring-bill/{billId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateRecurringBillController(db)),
	))

	server.Handle("DELETE /recurring-bill/{billId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteRecurringBillController(db)),
	))
}
