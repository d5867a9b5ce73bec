package bill_due

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteBillDueController struct {
	FindBillDueByIdRepository usecase.FindBillDueByIdRepository
	DeleteBillDueRepository   usecase.DeleteBillDueRepository
}

func NewDeleteBillDueController(
	findBillDueById usecase.FindBillDueByIdRepository,
	deleteBillDue usecase.DeleteBillDueRepository,
) *DeleteBillDueController {
	return &DeleteBillDueController{
		FindBillDueByIdRepository: findBillDueById,
		DeleteBillDueRepository:   deleteBillDue,
	}
}

// Handle removes a due. Payments already made against it are kept as
// history; balances are not restored.
func (c *DeleteBillDueController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	if err := c.DeleteBillDueRepository.Delete(dueId, userId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting due",
		}, http.StatusInternalServerError)
	}

	return &presentationProtocols.HttpResponse{
		StatusCode: http.StatusNoContent,
	}
}
