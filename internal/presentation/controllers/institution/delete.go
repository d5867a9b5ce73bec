package institution

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteInstitutionController struct {
	FindInstitutionByIdRepository      usecase.FindInstitutionByIdRepository
	DeleteInstitutionCascadeRepository usecase.DeleteInstitutionCascadeRepository
}

func NewDeleteInstitutionController(
	findInstitutionById usecase.FindInstitutionByIdRepository,
	deleteInstitutionCascade usecase.DeleteInstitutionCascadeRepository,
) *DeleteInstitutionController {
	return &DeleteInstitutionController{
		FindInstitutionByIdRepository:      findInstitutionById,
		DeleteInstitutionCascadeRepository: deleteInstitutionCascade,
	}
}

func (c *DeleteInstitutionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	institutionId, err := primitive.ObjectIDFromHex(r.Req.PathValue("institutionId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid institution ID format",
		}, http.StatusBadRequest)
	}

	institution, err := c.FindInstitutionByIdRepository.Find(institutionId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding institution",
		}, http.StatusInternalServerError)
	}

	if institution == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "institution not found",
		}, http.StatusNotFound)
	}

	if err := c.DeleteInstitutionCascadeRepository.Delete(institutionId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting institution",
		}, http.StatusInternalServerError)
	}

	return &presentationProtocols.HttpResponse{
		StatusCode: http.StatusNoContent,
	}
}
