package bill_due

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetDuePaymentsController struct {
	FindPaymentsByDueIdRepository usecase.FindPaymentsByDueIdRepository
}

func NewGetDuePaymentsController(
	findPaymentsByDueId usecase.FindPaymentsByDueIdRepository,
) *GetDuePaymentsController {
	return &GetDuePaymentsController{
		FindPaymentsByDueIdRepository: findPaymentsByDueId,
	}
}

func (c *GetDuePaymentsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	payments, err := c.FindPaymentsByDueIdRepository.Find(dueId, userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding payments",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(payments, http.StatusOK)
}
