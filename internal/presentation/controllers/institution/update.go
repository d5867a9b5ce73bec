package institution

import (
	"encoding/json"
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateInstitutionController struct {
	UpdateInstitutionRepository usecase.UpdateInstitutionRepository
	Validate                    *validator.Validate
}

func NewUpdateInstitutionController(updateInstitution usecase.UpdateInstitutionRepository) *UpdateInstitutionController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateInstitutionController{
		UpdateInstitutionRepository: updateInstitution,
		Validate:                    validate,
	}
}

type UpdateInstitutionControllerBody struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
	Kind string `json:"kind" validate:"required,oneof=BANK_PHYSICAL BANK_VIRTUAL WALLET BROKER CRYPTO_EXCHANGE CASH"`
}

func (c *UpdateInstitutionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateInstitutionControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

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

	institution, err := c.UpdateInstitutionRepository.Update(institutionId, &models.InstitutionInput{
		UserId: userId,
		Name:   body.Name,
		Kind:   body.Kind,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating institution",
		}, http.StatusInternalServerError)
	}

	if institution == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "institution not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(institution, http.StatusOK)
}
