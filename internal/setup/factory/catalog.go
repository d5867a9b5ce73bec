package factory

import (
	controllers "github.com/platahq/plata-backend/internal/presentation/controllers/catalog"
)

func MakeGetCatalogController() *controllers.GetCatalogController {
	return controllers.NewGetCatalogController()
}
