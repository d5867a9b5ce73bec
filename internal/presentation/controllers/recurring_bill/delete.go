package recurring_bill

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteRecurringBillController struct {
	FindRecurringBillByIdRepository usecase.FindRecurringBillByIdRepository
	DeleteRecurringBillRepository   usecase.DeleteRecurringBillRepository
}

func NewDeleteRecurringBillController(
	findRecurringBillById usecase.FindRecurringBillByIdRepository,
	deleteRecurringBill usecase.DeleteRecurringBillRepository,
) *DeleteRecurringBillController {
	return &DeleteRecurringBillController{
		FindRecurringBillByIdRepository: findRecurringBillById,
		DeleteRecurringBillRepository:   deleteRecurringBill,
	}
}

// Handle removes the template only. Dues already generated from it stay.
func (c *DeleteRecurringBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	bill, err := c.FindRecurringBillByIdRepository.Find(billId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recurring bill",
		}, http.StatusInternalServerError)
	}
	if bill == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "recurring bill not found",
		}, http.StatusNotFound)
	}

	if err := c.DeleteRecurringBillRepository.Delete(billId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting recurring bill",
		}, http.StatusInternalServerError)
	}

	return &presentationProtocols.HttpResponse{
		StatusCode: http.StatusNoContent,
	}
}
