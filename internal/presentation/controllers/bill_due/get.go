package bill_due

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMonthDuesController struct {
	FindBillDuesByRangeRepository usecase.FindBillDuesByRangeRepository
}

func NewGetMonthDuesController(
	findBillDuesByRange usecase.FindBillDuesByRangeRepository,
) *GetMonthDuesController {
	return &GetMonthDuesController{
		FindBillDuesByRangeRepository: findBillDuesByRange,
	}
}

func (c *GetMonthDuesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	start, end, err := helpers.ParseMonth(r.Req.PathValue("month"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid month format, expected YYYY-MM",
		}, http.StatusBadRequest)
	}

	dues, err := c.FindBillDuesByRangeRepository.Find(userId, start, end)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding dues",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(dues, http.StatusOK)
}
