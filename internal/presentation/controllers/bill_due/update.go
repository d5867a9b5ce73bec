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

type UpdateBillDueController struct {
	FindBillDueByIdRepository usecase.FindBillDueByIdRepository
	UpdateBillDueRepository   usecase.UpdateBillDueRepository
	Validate                  *validator.Validate
}

func NewUpdateBillDueController(
	findBillDueById usecase.FindBillDueByIdRepository,
	updateBillDue usecase.UpdateBillDueRepository,
) *UpdateBillDueController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateBillDueController{
		FindBillDueByIdRepository: findBillDueById,
		UpdateBillDueRepository:   updateBillDue,
		Validate:                  validate,
	}
}

type UpdateBillDueControllerBody struct {
	Title         string  `json:"title" validate:"required,min=2,max=255"`
	AmountPlanned float64 `json:"amountPlanned" validate:"min=0"`
}

// Handle edits a due's title and planned amount. A fully paid due is
// settled history and can no longer be edited; raising its planned
// amount would re-open it with no payment owed. For the rest the
// status is derived again from the new planned amount, so writing the
// real amount on a variable due can flip it straight to PAID.
func (c *UpdateBillDueController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateBillDueControllerBody
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

	due, err := c.FindBillDueByIdRepository.Find(dueId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding due",
		}, http.StatusInternalServerError)
	}
	if due == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "bill due not found",
		}, http.StatusNotFound)
	}

	if due.AmountPlanned > 0 && due.AmountPaid >= due.AmountPlanned {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a fully paid due cannot be edited",
		}, http.StatusConflict)
	}

	status := models.DeriveBillStatus(body.AmountPlanned, due.AmountPaid, due.DueDate, time.Now().UTC())

	updated, err := c.UpdateBillDueRepository.Update(dueId, userId, body.Title, body.AmountPlanned, status)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating due",
		}, http.StatusInternalServerError)
	}
	if updated == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "bill due not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
