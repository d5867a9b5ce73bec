package bill_due

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBillDueController struct {
	CreateBillDueRepository usecase.CreateBillDueRepository
	Validate                *validator.Validate
}

func NewCreateBillDueController(
	createBillDue usecase.CreateBillDueRepository,
) *CreateBillDueController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateBillDueController{
		CreateBillDueRepository: createBillDue,
		Validate:                validate,
	}
}

type CreateBillDueControllerBody struct {
	Title         string  `json:"title" validate:"required,min=2,max=255"`
	Currency      string  `json:"currency" validate:"required,oneof=ARS USD EUR BTC ETH USDT"`
	AmountPlanned float64 `json:"amountPlanned" validate:"min=0"`
	DueDate       string  `json:"dueDate" validate:"required"`
	PlanAccountId string  `json:"planAccountId"`
}

// Handle records a one-off due with no backing template, for expenses
// that happen a single time.
func (c *CreateBillDueController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateBillDueControllerBody
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

	dueDate, err := time.Parse("2006-01-02", body.DueDate)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid due date, expected YYYY-MM-DD",
		}, http.StatusBadRequest)
	}

	input := &models.BillDueInput{
		UserId:        userId,
		Title:         body.Title,
		Currency:      body.Currency,
		AmountPlanned: body.AmountPlanned,
		DueDate:       dueDate.UTC(),
	}

	if body.PlanAccountId != "" {
		accountId, err := primitive.ObjectIDFromHex(body.PlanAccountId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid plan account ID format",
			}, http.StatusBadRequest)
		}
		input.PlanAccountId = &accountId
	}

	due, err := c.CreateBillDueRepository.Create(input)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating due",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(due, http.StatusCreated)
}
