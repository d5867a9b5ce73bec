package report

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	"github.com/platahq/plata-backend/internal/infra/db/mongodb/redis_repository"
	"github.com/platahq/plata-backend/internal/presentation/helpers"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const exportCacheTTL = 60 * time.Second

type ExportMonthController struct {
	FindTransactionsByUserIdRepository usecase.FindTransactionsByUserIdRepository
	FindBillDuesByRangeRepository      usecase.FindBillDuesByRangeRepository
	RedisURL                           string
}

func NewExportMonthController(
	findTransactionsByUserId usecase.FindTransactionsByUserIdRepository,
	findBillDuesByRange usecase.FindBillDuesByRangeRepository,
	redisURL string,
) *ExportMonthController {
	return &ExportMonthController{
		FindTransactionsByUserIdRepository: findTransactionsByUserId,
		FindBillDuesByRangeRepository:      findBillDuesByRange,
		RedisURL:                           redisURL,
	}
}

// Handle streams the month's ledger and dues as an xlsx workbook. The
// serialized workbook is cached in Redis so repeated downloads of the
// same month do not rebuild it.
func (c *ExportMonthController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
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

	cacheKey := fmt.Sprintf("export:%s:%s", userId.Hex(), month)
	if cached, err := redis_repository.FindExcelByKey(c.RedisURL, cacheKey); err == nil && cached != nil {
		return excelResponse(cached, month)
	}

	transactions, err := c.FindTransactionsByUserIdRepository.Find(&usecase.FindTransactionsInput{
		UserId: userId,
		From:   &start,
		To:     &end,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding transactions",
		}, http.StatusInternalServerError)
	}

	dues, err := c.FindBillDuesByRangeRepository.Find(userId, start, end)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding dues",
		}, http.StatusInternalServerError)
	}

	file, err := buildWorkbook(transactions, dues)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building the workbook",
		}, http.StatusInternalServerError)
	}

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when serializing the workbook",
		}, http.StatusInternalServerError)
	}

	_ = redis_repository.SaveExcelToRedis(c.RedisURL, cacheKey, file, exportCacheTTL)

	return excelResponse(buf.Bytes(), month)
}

func excelResponse(data []byte, month string) *presentationProtocols.HttpResponse {
	headers := http.Header{}
	headers.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	headers.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", month+".xlsx"))

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(data)),
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}

func buildWorkbook(transactions []models.Transaction, dues []models.BillDue) (*excelize.File, error) {
	file := excelize.NewFile()

	const txSheet = "Transactions"
	if err := file.SetSheetName("Sheet1", txSheet); err != nil {
		return nil, err
	}

	txHeader := []interface{}{"Date", "Type", "Amount", "Currency", "Sell amount", "Sell currency", "Buy amount", "Buy currency", "Rate", "Note"}
	if err := file.SetSheetRow(txSheet, "A1", &txHeader); err != nil {
		return nil, err
	}
	for i, t := range transactions {
		row := []interface{}{
			t.CreatedAt.Format("2006-01-02 15:04"),
			t.Type,
			t.Amount,
			t.Currency,
			t.SellAmount,
			t.SellCurrency,
			t.BuyAmount,
			t.BuyCurrency,
			t.Rate,
			t.Note,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(txSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const dueSheet = "Bill dues"
	if _, err := file.NewSheet(dueSheet); err != nil {
		return nil, err
	}
	dueHeader := []interface{}{"Due date", "Title", "Currency", "Planned", "Paid", "Status"}
	if err := file.SetSheetRow(dueSheet, "A1", &dueHeader); err != nil {
		return nil, err
	}
	for i, d := range dues {
		row := []interface{}{
			d.DueDate.Format("2006-01-02"),
			d.Title,
			d.Currency,
			d.AmountPlanned,
			d.AmountPaid,
			d.Status,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(dueSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return file, nil
}
