package account

import (
	"encoding/json"
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateAccountController struct {
	UpdateAccountRepository usecase.UpdateAccountRepository
	Validate                *validator.Validate
}

func NewUpdateAccountController(updateAccount usecase.UpdateAccountRepository) *UpdateAccountController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateAccountController{
		UpdateAccountRepository: updateAccount,
		Validate:                validate,
	}
}

type UpdateAccountControllerBody struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Currency string `json:"currency" validate:"required,oneof=ARS USD EUR BTC ETH USDT"`
}

func (c *UpdateAccountController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateAccountControllerBody
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

	accountId, err := primitive.ObjectIDFromHex(r.Req.PathValue("accountId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid account ID format",
		}, http.StatusBadRequest)
	}

	account, err := c.UpdateAccountRepository.Update(accountId, userId, body.Name, body.Currency)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating account",
		}, http.StatusInternalServerError)
	}

	if account == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(account, http.StatusOK)
}
