package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func InstitutionRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /institution", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateInstitutionController(db)),
	))

	server.Handle("GET /institution", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetInstitutionsController(db)),
	))

	server.Handle("PUT /institution/{institutionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateInstitutionController(db)),
	))

	server.Handle("DELETE /institution/{institutionId}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteInstitutionController(db)),
	))
}
