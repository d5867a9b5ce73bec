package bill_due

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PayBillDueController struct {
	PayBillDueRepository usecase.PayBillDueRepository
	Validate             *validator.Validate
}

func NewPayBillDueController(
	payBillDue usecase.PayBillDueRepository,
) *PayBillDueController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &PayBillDueController{
		PayBillDueRepository: payBillDue,
		Validate:             validate,
	}
}

type PayBillDueControllerBody struct {
	AccountId    string  `json:"accountId" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	AllowPartial *bool   `json:"allowPartial"`
}

// Handle pays a due from an account. allowPartial defaults to true,
// which clamps the payment to whatever balance the account holds.
func (c *PayBillDueController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body PayBillDueControllerBody
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

	dueId, err := primitive.ObjectIDFromHex(r.Req.PathValue("dueId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid due ID format",
		}, http.StatusBadRequest)
	}

	accountId, err := primitive.ObjectIDFromHex(body.AccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid account ID format",
		}, http.StatusBadRequest)
	}

	allowPartial := true
	if body.AllowPartial != nil {
		allowPartial = *body.AllowPartial
	}

	result, err := c.PayBillDueRepository.Pay(&usecase.PayBillDueInput{
		UserId:       userId,
		DueId:        dueId,
		AccountId:    accountId,
		Amount:       body.Amount,
		AllowPartial: allowPartial,
	})
	if err != nil {
		return payErrorResponse(err)
	}

	return helpers.CreateResponse(result, http.StatusOK)
}

func payErrorResponse(err error) *presentationProtocols.HttpResponse {
	switch {
	case errors.Is(err, models.ErrDueNotFound):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "bill due not found",
		}, http.StatusNotFound)
	case errors.Is(err, models.ErrAccountNotFound):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account not found",
		}, http.StatusNotFound)
	case errors.Is(err, models.ErrAccessDenied):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "resource does not belong to the user",
		}, http.StatusForbidden)
	case errors.Is(err, models.ErrCurrencyMismatch):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "account currency differs from the due, exchange first",
		}, http.StatusConflict)
	case errors.Is(err, models.ErrInvalidAmount):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "amount must be positive",
		}, http.StatusBadRequest)
	case errors.Is(err, models.ErrInsufficientBalance):
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "insufficient balance",
		}, http.StatusUnprocessableEntity)
	default:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when paying due",
		}, http.StatusInternalServerError)
	}
}
