package report

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const summaryCacheTTL = 60 * time.Second

type GetMonthSummaryController struct {
	FindInstitutionsByUserIdRepository usecase.FindInstitutionsByUserIdRepository
	FindAccountsByUserIdRepository     usecase.FindAccountsByUserIdRepository
	FindTransactionsByUserIdRepository usecase.FindTransactionsByUserIdRepository
	FindBillDuesByRangeRepository      usecase.FindBillDuesByRangeRepository
	RedisURL                           string
}

func NewGetMonthSummaryController(
	findInstitutionsByUserId usecase.FindInstitutionsByUserIdRepository,
	findAccountsByUserId usecase.FindAccountsByUserIdRepository,
	findTransactionsByUserId usecase.FindTransactionsByUserIdRepository,
	findBillDuesByRange usecase.FindBillDuesByRangeRepository,
	redisURL string,
) *GetMonthSummaryController {
	return &GetMonthSummaryController{
		FindInstitutionsByUserIdRepository: findInstitutionsByUserId,
		FindAccountsByUserIdRepository:     findAccountsByUserId,
		FindTransactionsByUserIdRepository: findTransactionsByUserId,
		FindBillDuesByRangeRepository:      findBillDuesByRange,
		RedisURL:                           redisURL,
	}
}

// Handle serves the month's per-currency summary. The computed JSON is
// cached in Redis per user and month for a short window, since clients
// poll this while browsing.
func (c *GetMonthSummaryController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid user ID format",
		}, http.StatusBadRequest)
	}

	month := r.Req.PathValue("month")
	start, end, err := helpers.ParseMonth(month)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid month format, expected YYYY-MM",
		}, http.StatusBadRequest)
	}

	cacheKey := fmt.Sprintf("summary:%s:%s", userId.Hex(), month)
	if cached, err := redis_repository.FindByKey(c.RedisURL, cacheKey); err == nil && cached != "" {
		return &presentationProtocols.HttpResponse{
			Body:       io.NopCloser(strings.NewReader(cached)),
			StatusCode: http.StatusOK,
		}
	}

	summary, err := c.buildSummary(userId, month, start, end)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building the summary",
		}, http.StatusInternalServerError)
	}

	encoded, err := json.Marshal(summary)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when encoding the summary",
		}, http.StatusInternalServerError)
	}

	// A stale cache only delays the summary by a minute, so a write
	// failure is not worth failing the request over.
	_ = redis_repository.SaveToRedis(c.RedisURL, cacheKey, string(encoded), summaryCacheTTL)

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(strings.NewReader(string(encoded))),
		StatusCode: http.StatusOK,
	}
}

func (c *GetMonthSummaryController) buildSummary(userId primitive.ObjectID, month string, start, end time.Time) (*models.MonthSummary, error) {
	institutions, err := c.FindInstitutionsByUserIdRepository.Find(userId)
	if err != nil {
		return nil, err
	}

	accounts, err := c.FindAccountsByUserIdRepository.Find(userId)
	if err != nil {
		return nil, err
	}

	transactions, err := c.FindTransactionsByUserIdRepository.Find(&usecase.FindTransactionsInput{
		UserId: userId,
		From:   &start,
		To:     &end,
	})
	if err != nil {
		return nil, err
	}

	dues, err := c.FindBillDuesByRangeRepository.Find(userId, start, end)
	if err != nil {
		return nil, err
	}

	return models.BuildMonthSummary(month, institutions, accounts, transactions, dues), nil
}
