package config

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/infra/stream"
	"github.com/platahq/plata-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database, redisURL string, hub stream.Hub) {
	apiServer := http.NewServeMux()
	routes.CatalogRoutes(apiServer)
	routes.InstitutionRoutes(apiServer, db)
	routes.AccountRoutes(apiServer, db)
	routes.LedgerRoutes(apiServer, db)
	routes.RecurringBillRoutes(apiServer, db)
	routes.BillDueRoutes(apiServer, db)
	routes.ReportRoutes(apiServer, db, redisURL)
	routes.WatchRoutes(apiServer, hub)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
