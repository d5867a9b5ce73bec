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

type UpdateRecurringBillController struct {
	FindRecurringBillByIdRepository usecase.FindRecurringBillByIdRepository
	UpdateRecurringBillRepository   usecase.UpdateRecurringBillRepository
	Validate                        *validator.Validate
}

func NewUpdateRecurringBillController(
	findRecurringBillById usecase.FindRecurringBillByIdRepository,
	updateRecurringBill usecase.UpdateRecurringBillRepository,
) *UpdateRecurringBillController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateRecurringBillController{
		FindRecurringBillByIdRepository: findRecurringBillById,
		UpdateRecurringBillRepository:   updateRecurringBill,
		Validate:                        validate,
	}
}

type UpdateRecurringBillControllerBody struct {
	Title            string  `json:"title" validate:"required,min=2,max=255"`
	Currency         string  `json:"currency" validate:"required,oneof=ARS USD EUR BTC ETH USDT"`
	AmountType       string  `json:"amountType" validate:"required,oneof=FIXED ESTIMATE VARIABLE"`
	Amount           float64 `json:"amount" validate:"min=0"`
	DayOfMonth       int     `json:"dayOfMonth" validate:"required,min=1,max=31"`
	DefaultAccountId string  `json:"defaultAccountId"`
	Notes            string  `json:"notes" validate:"max=1000"`
	Active           *bool   `json:"active" validate:"required"`
}

// Handle replaces the template. Already-generated dues keep the values
// they were generated with.
func (c *UpdateRecurringBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateRecurringBillControllerBody
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

	billId, err := primitive.ObjectIDFromHex(r.Req.PathValue("billId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid recurring bill ID format",
		}, http.StatusBadRequest)
	}

	existing, err := c.FindRecurringBillByIdRepository.Find(billId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recurring bill",
		}, http.StatusInternalServerError)
	}
	if existing == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recurring bill not found",
		}, http.StatusNotFound)
	}

	input := &models.RecurringBillInput{
		UserId:     userId,
		Title:      body.Title,
		Currency:   body.Currency,
		AmountType: body.AmountType,
		Amount:     body.Amount,
		DayOfMonth: body.DayOfMonth,
		Notes:      body.Notes,
		Active:     *body.Active,
	}

	if body.DefaultAccountId != "" {
		accountId, err := primitive.ObjectIDFromHex(body.DefaultAccountId)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid default account ID format",
			}, http.StatusBadRequest)
		}
		input.DefaultAccountId = &accountId
	}

	bill, err := c.UpdateRecurringBillRepository.Update(billId, input)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating recurring bill",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(bill, http.StatusOK)
}
