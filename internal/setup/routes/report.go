package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func ReportRoutes(server *http.ServeMux, db *mongo.Database, redisURL string) {
	server.Handle("GET /report/summary/{month}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMonthSummaryController(db, redisURL)),
	))

	server.Handle("GET /report/export/{month}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeExportMonthController(db, redisURL)),
	))
}
