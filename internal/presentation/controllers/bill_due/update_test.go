package bill_due

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFindBillDueByIdRepository struct {
	due *models.BillDue
	err error
}

func (f *fakeFindBillDueByIdRepository) Find(id primitive.ObjectID, userId primitive.ObjectID) (*models.BillDue, error) {
	return f.due, f.err
}

type fakeUpdateBillDueRepository struct {
	calls      int
	lastTitle  string
	lastAmount float64
	lastStatus string
	result     *models.BillDue
}

func (f *fakeUpdateBillDueRepository) Update(id primitive.ObjectID, userId primitive.ObjectID, title string, amountPlanned float64, status string) (*models.BillDue, error) {
	f.calls++
	f.lastTitle = title
	f.lastAmount = amountPlanned
	f.lastStatus = status
	return f.result, nil
}

func updateRequest(userId primitive.ObjectID, dueId string, body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPut, "/due/"+dueId, strings.NewReader(body))
	req.SetPathValue("dueId", dueId)
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:   req.Body,
		Header: req.Header,
		Req:    req,
	}
}

func TestUpdateBillDueController(t *testing.T) {
	userId := primitive.NewObjectID()
	dueId := primitive.NewObjectID()

	t.Run("writes the amount on a variable due and derives the status", func(t *testing.T) {
		due := &models.BillDue{
			Id:            dueId,
			UserId:        userId,
			Title:         "Electricity",
			AmountPlanned: 0,
			AmountPaid:    0,
			DueDate:       time.Now().UTC().AddDate(0, 0, 10),
			Status:        models.BillStatusPending,
		}
		findRepo := &fakeFindBillDueByIdRepository{due: due}
		updateRepo := &fakeUpdateBillDueRepository{result: due}
		controller := NewUpdateBillDueController(findRepo, updateRepo)

		response := controller.Handle(updateRequest(userId, dueId.Hex(),
			`{"title":"Electricity","amountPlanned":4200}`))

		require.Equal(t, http.StatusOK, response.StatusCode)
		require.Equal(t, 1, updateRepo.calls)
		assert.Equal(t, 4200.0, updateRepo.lastAmount)
		assert.Equal(t, models.BillStatusPending, updateRepo.lastStatus)
	})

	t.Run("rejects edits on a fully paid due", func(t *testing.T) {
		findRepo := &fakeFindBillDueByIdRepository{due: &models.BillDue{
			Id:            dueId,
			UserId:        userId,
			Title:         "Rent",
			AmountPlanned: 5000,
			AmountPaid:    5000,
			DueDate:       time.Now().UTC().AddDate(0, 0, -5),
			Status:        models.BillStatusPaid,
		}}
		updateRepo := &fakeUpdateBillDueRepository{}
		controller := NewUpdateBillDueController(findRepo, updateRepo)

		response := controller.Handle(updateRequest(userId, dueId.Hex(),
			`{"title":"Rent","amountPlanned":9000}`))

		require.Equal(t, http.StatusConflict, response.StatusCode)
		assert.Equal(t, 0, updateRepo.calls)

		var body presentationProtocols.ErrorResponse
		require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
		assert.Equal(t, "a fully paid due cannot be edited", body.Error)
	})

	t.Run("rejects edits on an overpaid due", func(t *testing.T) {
		findRepo := &fakeFindBillDueByIdRepository{due: &models.BillDue{
			Id:            dueId,
			UserId:        userId,
			Title:         "Internet",
			AmountPlanned: 100,
			AmountPaid:    120,
			DueDate:       time.Now().UTC(),
			Status:        models.BillStatusPaid,
		}}
		updateRepo := &fakeUpdateBillDueRepository{}
		controller := NewUpdateBillDueController(findRepo, updateRepo)

		response := controller.Handle(updateRequest(userId, dueId.Hex(),
			`{"title":"Internet","amountPlanned":150}`))

		require.Equal(t, http.StatusConflict, response.StatusCode)
		assert.Equal(t, 0, updateRepo.calls)
	})

	t.Run("returns not found when the due does not exist", func(t *testing.T) {
		controller := NewUpdateBillDueController(
			&fakeFindBillDueByIdRepository{},
			&fakeUpdateBillDueRepository{},
		)

		response := controller.Handle(updateRequest(userId, dueId.Hex(),
			`{"title":"Rent","amountPlanned":5000}`))

		require.Equal(t, http.StatusNotFound, response.StatusCode)
	})
}
