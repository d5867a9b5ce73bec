package bill_due

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/platahq/plata-backend/internal/domain/models"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeBillStore struct {
	bills []models.RecurringBill
	dues  []models.BillDue
}

func (s *fakeBillStore) Find(userId primitive.ObjectID, onlyActive bool) ([]models.RecurringBill, error) {
	var out []models.RecurringBill
	for _, b := range s.bills {
		if b.UserId != userId {
			continue
		}
		if onlyActive && !b.Active {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeBillStore) Exists(userId, billId primitive.ObjectID, from, to time.Time) (bool, error) {
	for _, d := range s.dues {
		if d.UserId == userId && d.BillId != nil && *d.BillId == billId &&
			!d.DueDate.Before(from) && d.DueDate.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBillStore) Create(input *models.BillDueInput) (*models.BillDue, error) {
	due := models.BillDue{
		Id:            primitive.NewObjectID(),
		UserId:        input.UserId,
		BillId:        input.BillId,
		Title:         input.Title,
		Currency:      input.Currency,
		AmountPlanned: input.AmountPlanned,
		DueDate:       input.DueDate,
		Status:        models.BillStatusPending,
		PlanAccountId: input.PlanAccountId,
	}
	s.dues = append(s.dues, due)
	return &due, nil
}

func (s *fakeBillStore) findByRange(userId primitive.ObjectID, from, to time.Time) ([]models.BillDue, error) {
	var out []models.BillDue
	for _, d := range s.dues {
		if d.UserId == userId && !d.DueDate.Before(from) && d.DueDate.Before(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

type rangeFinderFunc func(userId primitive.ObjectID, from, to time.Time) ([]models.BillDue, error)

func (f rangeFinderFunc) Find(userId primitive.ObjectID, from, to time.Time) ([]models.BillDue, error) {
	return f(userId, from, to)
}

func generateRequest(userId primitive.ObjectID, month string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPost, "/due/generate/"+month, nil)
	req.SetPathValue("month", month)
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:   req.Body,
		Header: req.Header,
		Req:    req,
	}
}

func TestGenerateMonthDues(t *testing.T) {
	userId := primitive.NewObjectID()
	rentId := primitive.NewObjectID()
	internetId := primitive.NewObjectID()
	inactiveId := primitive.NewObjectID()

	newStore := func() *fakeBillStore {
		return &fakeBillStore{
			bills: []models.RecurringBill{
				{Id: rentId, UserId: userId, Title: "Rent", Currency: "USD", AmountType: "FIXED", Amount: 5000, DayOfMonth: 31, Active: true},
				{Id: internetId, UserId: userId, Title: "Internet", Currency: "ARS", AmountType: "VARIABLE", DayOfMonth: 10, Active: true},
				{Id: inactiveId, UserId: userId, Title: "Old gym", Currency: "ARS", AmountType: "FIXED", Amount: 900, DayOfMonth: 5, Active: false},
			},
		}
	}

	t.Run("materializes one due per active template", func(t *testing.T) {
		store := newStore()
		controller := NewGenerateMonthDuesController(store, store, store, rangeFinderFunc(store.findByRange))

		response := controller.Handle(generateRequest(userId, "2024-02"))
		require.Equal(t, http.StatusOK, response.StatusCode)
		require.Len(t, store.dues, 2)

		byTitle := map[string]models.BillDue{}
		for _, d := range store.dues {
			byTitle[d.Title] = d
		}

		rent := byTitle["Rent"]
		assert.Equal(t, 5000.0, rent.AmountPlanned)
		// Day 31 lands on the 28th even in February of a leap year.
		assert.Equal(t, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), rent.DueDate)

		internet := byTitle["Internet"]
		assert.Equal(t, 0.0, internet.AmountPlanned)
		assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), internet.DueDate)
	})

	t.Run("is idempotent across repeated runs", func(t *testing.T) {
		store := newStore()
		controller := NewGenerateMonthDuesController(store, store, store, rangeFinderFunc(store.findByRange))

		response := controller.Handle(generateRequest(userId, "2024-03"))
		require.Equal(t, http.StatusOK, response.StatusCode)
		require.Len(t, store.dues, 2)

		// Manual edit must survive the second run.
		store.dues[0].AmountPlanned = 5500

		response = controller.Handle(generateRequest(userId, "2024-03"))
		require.Equal(t, http.StatusOK, response.StatusCode)
		assert.Len(t, store.dues, 2)
		assert.Equal(t, 5500.0, store.dues[0].AmountPlanned)
	})

	t.Run("distinct months generate their own dues", func(t *testing.T) {
		store := newStore()
		controller := NewGenerateMonthDuesController(store, store, store, rangeFinderFunc(store.findByRange))

		controller.Handle(generateRequest(userId, "2024-03"))
		controller.Handle(generateRequest(userId, "2024-04"))
		assert.Len(t, store.dues, 4)
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		store := newStore()
		controller := NewGenerateMonthDuesController(store, store, store, rangeFinderFunc(store.findByRange))

		response := controller.Handle(generateRequest(userId, "March-2024"))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Empty(t, store.dues)
	})
}
