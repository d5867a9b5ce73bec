package ledger

import (
	"net/http"
	"strconv"
	"time"

	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetTransactionsController struct {
	FindTransactionsByUserIdRepository usecase.FindTransactionsByUserIdRepository
}

func NewGetTransactionsController(
	findTransactionsByUserId usecase.FindTransactionsByUserIdRepository,
) *GetTransactionsController {
	return &GetTransactionsController{
		FindTransactionsByUserIdRepository: findTransactionsByUserId,
	}
}

// Handle lists the user's transactions newest first. The range can be
// narrowed with a month=YYYY-MM query or explicit from/to RFC 3339
// bounds, and capped with limit.
func (c *GetTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	input := &usecase.FindTransactionsInput{
		UserId: userId,
	}

	query := r.Req.URL.Query()

	if month := query.Get("month"); month != "" {
		start, end, err := helpers.ParseMonth(month)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid month format, expected YYYY-MM",
			}, http.StatusBadRequest)
		}
		input.From = &start
		input.To = &end
	}

	if from := query.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid from date, expected RFC 3339",
			}, http.StatusBadRequest)
		}
		input.From = &t
	}

	if to := query.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid to date, expected RFC 3339",
			}, http.StatusBadRequest)
		}
		input.To = &t
	}

	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.ParseInt(limit, 10, 64)
		if err != nil || n < 1 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "invalid limit, expected a positive integer",
			}, http.StatusBadRequest)
		}
		input.Limit = n
	}

	transactions, err := c.FindTransactionsByUserIdRepository.Find(input)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding transactions",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(transactions, http.StatusOK)
}
