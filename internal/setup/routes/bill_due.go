package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func BillDueRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /due/generate/{month}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGenerateMonthDuesController(db)),
	))

	server.Handle("GET /due/month/{month}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMonthDuesController(db)),
	))

	server.Handle("POST /due", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateBillDueController(db)),
	))

	server.Handle("PUT /due/{dueId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBillDueController(db)),
	))

	server.Handle("DELETE /due/{dueId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteBillDueController(db)),
	))

	server.Handle("POST /due/{dueId}/pay", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakePayBillDueController(db)),
	))

	server.Handle("GET /due/{dueId}/payments", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetDuePaymentsController(db)),
	))
}
