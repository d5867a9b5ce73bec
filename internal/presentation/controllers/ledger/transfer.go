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

type TransferFundsController struct {
	TransferFundsRepository usecase.TransferFundsRepository
	Validate                *validator.Validate
}

func NewTransferFundsController(
	transferFunds usecase.TransferFundsRepository,
) *TransferFundsController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &TransferFundsController{
		TransferFundsRepository: transferFunds,
		Validate:                validate,
	}
}

type TransferFundsControllerBody struct {
	FromAccountId string  `json:"fromAccountId" validate:"required"`
	ToAccountId   string  `json:"toAccountId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
}

func (c *TransferFundsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body TransferFundsControllerBody
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

	if fromAccountId == toAccountId {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "source and destination accounts must differ",
		}, http.StatusBadRequest)
	}

	transaction, err := c.TransferFundsRepository.Transfer(userId, fromAccountId, toAccountId, body.Amount)
	if err != nil {
		return ledgerErrorResponse(err)
	}

	return helpers.CreateResponse(transaction, http.StatusCreated)
}
