package account

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

type CreateAccountController struct {
	CreateAccountRepository       usecase.CreateAccountRepository
	FindInstitutionByIdRepository usecase.FindInstitutionByIdRepository
	Validate                      *validator.Validate
}

func NewCreateAccountController(
	createAccount usecase.CreateAccountRepository,
	findInstitutionById usecase.FindInstitutionByIdRepository,
) *CreateAccountController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateAccountController{
		CreateAccountRepository:       createAccount,
		FindInstitutionByIdRepository: findInstitutionById,
		Validate:                      validate,
	}
}

type CreateAccountControllerBody struct {
	InstitutionId string  `json:"institutionId" validate:"required"`
	Name          string  `json:"name" validate:"required,min=1,max=255"`
	Currency      string  `json:"currency" validate:"required,oneof=ARS USD EUR BTC ETH USDT"`
	Balance       float64 `json:"balance" validate:"min=0"`
}

func (c *CreateAccountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateAccountControllerBody
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

	institutionId, err := primitive.ObjectIDFromHex(body.InstitutionId)
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

	account, err := c.CreateAccountRepository.Create(&models.AccountInput{
		UserId:        userId,
		InstitutionId: institutionId,
		Name:          body.Name,
		Currency:      body.Currency,
		Balance:       body.Balance,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating account",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(account, http.StatusCreated)
}
