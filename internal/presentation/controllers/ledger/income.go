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

type RegisterIncomeController struct {
	RegisterIncomeRepository usecase.RegisterIncomeRepository
	Validate                 *validator.Validate
}

func NewRegisterIncomeController(
	registerIncome usecase.RegisterIncomeRepository,
) *RegisterIncomeController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &RegisterIncomeController{
		RegisterIncomeRepository: registerIncome,
		Validate:                 validate,
	}
}

type RegisterIncomeControllerBody struct {
	AccountId string  `json:"accountId" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Note      string  `json:"note" validate:"max=255"`
}

func (c *RegisterIncomeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterIncomeControllerBody
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

	accountId, err := primitive.ObjectIDFromHex(body.AccountId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid account ID format",
		}, http.StatusBadRequest)
	}

	transaction, err := c.RegisterIncomeRepository.Income(userId, accountId, body.Amount, body.Note)
	if err != nil {
		return ledgerErrorResponse(err)
	}

	return helpers.CreateResponse(transaction, http.StatusCreated)
}
