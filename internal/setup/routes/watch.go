package routes

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/infra/stream"
	"github.com/platahq/plata-backend/internal/presentation/controllers/watch"
	"github.com/platahq/plata-backend/internal/setup/middlewares"
)

func WatchRoutes(server *http.ServeMux, hub stream.Hub) {
	server.Handle("GET /watch/{collection}", middlewares.VerifyAccessToken(
		watch.NewHandler(hub),
	))
}
