package recurring_bill

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetRecurringBillsController struct {
	FindRecurringBillsByUserIdRepository usecase.FindRecurringBillsByUserIdRepository
}

func NewGetRecurringBillsController(
	findRecurringBillsByUserId usecase.FindRecurringBillsByUserIdRepository,
) *GetRecurringBillsController {
	return &GetRecurringBillsController{
		FindRecurringBillsByUserIdRepository: findRecurringBillsByUserId,
	}
}

func (c *GetRecurringBillsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	onlyActive := r.Req.URL.Query().Get("active") == "true"

	bills, err := c.FindRecurringBillsByUserIdRepository.Find(userId, onlyActive)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recurring bills",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(bills, http.StatusOK)
}
