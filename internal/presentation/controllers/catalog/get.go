package catalog

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
)

type GetCatalogController struct{}

func NewGetCatalogController() *GetCatalogController {
	return &GetCatalogController{}
}

type GetCatalogControllerResponse struct {
	Currencies       []string `json:"currencies"`
	InstitutionKinds []string `json:"institutionKinds"`
	AmountTypes      []string `json:"amountTypes"`
}

// Handle serves the closed vocabularies clients build their forms from.
func (c *GetCatalogController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&GetCatalogControllerResponse{
		Currencies:       models.Currencies,
		InstitutionKinds: models.InstitutionKinds,
		AmountTypes:      models.AmountTypes,
	}, http.StatusOK)
}
