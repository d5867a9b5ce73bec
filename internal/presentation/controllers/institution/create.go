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

type CreateInstitutionController struct {
	CreateInstitutionRepository        usecase.CreateInstitutionRepository
	FindInstitutionsByUserIdRepository usecase.FindInstitutionsByUserIdRepository
	Validate                           *validator.Validate
}

func NewCreateInstitutionController(
	createInstitution usecase.CreateInstitutionRepository,
	findInstitutionsByUserId usecase.FindInstitutionsByUserIdRepository,
) *CreateInstitutionController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateInstitutionController{
		CreateInstitutionRepository:        createInstitution,
		FindInstitutionsByUserIdRepository: findInstitutionsByUserId,
		Validate:                           validate,
	}
}

type CreateInstitutionControllerBody struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
	Kind string `json:"kind" validate:"required,oneof=BANK_PHYSICAL BANK_VIRTUAL WALLET BROKER CRYPTO_EXCHANGE CASH"`
}

func (c *CreateInstitutionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateInstitutionControllerBody
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

	institutions, err := c.FindInstitutionsByUserIdRepository.Find(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding institutions",
		}, http.StatusInternalServerError)
	}

	if len(institutions) >= 50 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user has reached the maximum number of institutions",
		}, http.StatusBadRequest)
	}

	institution, err := c.CreateInstitutionRepository.Create(&models.InstitutionInput{
		UserId: userId,
		Name:   body.Name,
		Kind:   body.Kind,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating institution",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(institution, http.StatusCreated)
}
