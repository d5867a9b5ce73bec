package bill_due

import (
	"net/http"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GenerateMonthDuesController struct {
	FindRecurringBillsByUserIdRepository usecase.FindRecurringBillsByUserIdRepository
	ExistsBillDueForRangeRepository      usecase.ExistsBillDueForRangeRepository
	CreateBillDueRepository              usecase.CreateBillDueRepository
	FindBillDuesByRangeRepository        usecase.FindBillDuesByRangeRepository
}

func NewGenerateMonthDuesController(
	findRecurringBillsByUserId usecase.FindRecurringBillsByUserIdRepository,
	existsBillDueForRange usecase.ExistsBillDueForRangeRepository,
	createBillDue usecase.CreateBillDueRepository,
	findBillDuesByRange usecase.FindBillDuesByRangeRepository,
) *GenerateMonthDuesController {
	return &GenerateMonthDuesController{
		FindRecurringBillsByUserIdRepository: findRecurringBillsByUserId,
		ExistsBillDueForRangeRepository:      existsBillDueForRange,
		CreateBillDueRepository:              createBillDue,
		FindBillDuesByRangeRepository:        findBillDuesByRange,
	}
}

// Handle materializes the month's dues from the user's active templates
// and answers with the complete list for that month. Running it again
// for the same month creates nothing new: a template that already has a
// due inside the month is skipped, so manual edits survive.
func (c *GenerateMonthDuesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	bills, err := c.FindRecurringBillsByUserIdRepository.Find(userId, true)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding recurring bills",
		}, http.StatusInternalServerError)
	}

	for i := range bills {
		bill := &bills[i]

		exists, err := c.ExistsBillDueForRangeRepository.Exists(userId, bill.Id, start, end)
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when checking existing dues",
			}, http.StatusInternalServerError)
		}
		if exists {
			continue
		}

		_, err = c.CreateBillDueRepository.Create(&models.BillDueInput{
			UserId:        userId,
			BillId:        &bill.Id,
			Title:         bill.Title,
			Currency:      bill.Currency,
			AmountPlanned: bill.PlannedAmount(),
			DueDate:       bill.DueDateFor(start.Year(), start.Month()),
			PlanAccountId: bill.DefaultAccountId,
		})
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when generating dues",
			}, http.StatusInternalServerError)
		}
	}

	dues, err := c.FindBillDuesByRangeRepository.Find(userId, start, end)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding dues",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(dues, http.StatusOK)
}
