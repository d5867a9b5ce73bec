package institution

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetInstitutionsController struct {
	FindInstitutionsByUserIdRepository usecase.FindInstitutionsByUserIdRepository
}

func NewGetInstitutionsController(findInstitutionsByUserId usecase.FindInstitutionsByUserIdRepository) *GetInstitutionsController {
	return &GetInstitutionsController{
		FindInstitutionsByUserIdRepository: findInstitutionsByUserId,
	}
}

func (c *GetInstitutionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	institutions, err := c.FindInstitutionsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving institutions",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(institutions, http.StatusOK)
}
