package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/setup/adapters"
	"github.com/platahq/plata-backend/internal/setup/factory"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
)

func CatalogRoutes(server *http.ServeMux) {
	server.Handle("GET /catalog", middlewares.AllowCacheHeader(
		adapters.AdaptRoute(factory.MakeGetCatalogController()),
	))
}
