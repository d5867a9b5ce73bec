package ledger

import (
	"encoding/json"
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExchangeFundsController struct {
	ExchangeFundsRepository usecase.ExchangeFundsRepository
	Validate                *validator.Validate
}

func NewExchangeFundsController(
	exchangeFunds usecase.ExchangeFundsRepository,
) *ExchangeFundsController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ExchangeFundsController{
		ExchangeFundsRepository: exchangeFunds,
		Validate:                validate,
	}
}

type ExchangeFundsControllerBody struct {
	FromAccountId string  `json:"fromAccountId" validate:"required"`
	ToAccountId   string  `json:"toAccountId" validate:"required"`
	SellAmount    float64 `json:"sellAmount" validate:"required,gt=0"`
	Rate          float64 `json:"rate" validate:"required,gt=0"`
}

func (c *ExchangeFundsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body ExchangeFundsControllerBody
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

	fromAccountId, err := primitive.ObjectIDFromHex(body.FromAccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid source account ID format",
		}, http.StatusBadRequest)
	}

	toAccountId, err := primitive.ObjectIDFromHex(body.ToAccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid destination account ID format",
		}, http.StatusBadRequest)
	}

	transaction, err := c.ExchangeFundsRepository.Exchange(userId, fromAccountId, toAccountId, body.SellAmount, body.Rate)
	if err != nil {
		return ledgerErrorResponse(err)
	}

	return helpers.CreateResponse(transaction, http.StatusCreated)
}
