package recurring_bill

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

type CreateRecurringBillController struct {
	CreateRecurringBillRepository usecase.CreateRecurringBillRepository
	FindAccountByIdRepository     usecase.FindAccountByIdRepository
	Validate                      *validator.Validate
}

func NewCreateRecurringBillController(
	createRecurringBill usecase.CreateRecurringBillRepository,
	findAccountById usecase.FindAccountByIdRepository,
) *CreateRecurringBillController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateRecurringBillController{
		CreateRecurringBillRepository: createRecurringBill,
		FindAccountByIdRepository:     findAccountById,
		Validate:                      validate,
	}
}

type CreateRecurringBillControllerBody struct {
	Title            string  `json:"title" validate:"required,min=2,max=255"`
	Currency         string  `json:"currency" validate:"required,oneof=ARS USD EUR BTC ETH USDT"`
	AmountType       string  `json:"amountType" validate:"required,oneof=FIXED ESTIMATE VARIABLE"`
	Amount           float64 `json:"amount" validate:"min=0"`
	DayOfMonth       int     `json:"dayOfMonth" validate:"required,min=1,max=31"`
	DefaultAccountId string  `json:"defaultAccountId"`
	Notes            string  `json:"notes" validate:"max=1000"`
}

func (c *CreateRecurringBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateRecurringBillControllerBody
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

	input := &models.RecurringBillInput{
		UserId:     userId,
		Title:      body.Title,
		Currency:   body.Currency,
		AmountType: body.AmountType,
		Amount:     body.Amount,
		DayOfMonth: body.DayOfMonth,
		Notes:      body.Notes,
		Active:     true,
	}

	if body.DefaultAccountId != "" {
		accountId, err := primitive.ObjectIDFromHex(body.DefaultAccountId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid default account ID format",
			}, http.StatusBadRequest)
		}

		account, err := c.FindAccountByIdRepository.Find(accountId, userId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when finding default account",
			}, http.StatusInternalServerError)
		}
		if account == nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "default account not found",
			}, http.StatusNotFound)
		}

		input.DefaultAccountId = &accountId
	}

	bill, err := c.CreateRecurringBillRepository.Create(input)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating recurring bill",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(bill, http.StatusCreated)
}
