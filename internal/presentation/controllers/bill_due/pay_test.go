package bill_due

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/platahq/plata-backend/internal/domain/models"
	"github.com/platahq/plata-backend/internal/domain/usecase"
	presentationProtocols "github.com/platahq/plata-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakePayRepository struct {
	lastInput *usecase.PayBillDueInput
	result    *usecase.PayBillDueResult
	err       error
}

func (f *fakePayRepository) Pay(input *usecase.PayBillDueInput) (*usecase.PayBillDueResult, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func payRequest(userId primitive.ObjectID, dueId string, body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPost, "/due/"+dueId+"/pay", strings.NewReader(body))
	req.SetPathValue("dueId", dueId)
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:   req.Body,
		Header: req.Header,
		Req:    req,
	}
}

func TestPayBillDueController(t *testing.T) {
	userId := primitive.NewObjectID()
	dueId := primitive.NewObjectID()
	accountId := primitive.NewObjectID()

	t.Run("pays a due and defaults to partial payments", func(t *testing.T) {
		repo := &fakePayRepository{result: &usecase.PayBillDueResult{
			Due: &models.BillDue{Id: dueId, Status: models.BillStatusPaid},
		}}
		controller := NewPayBillDueController(repo)

		response := controller.Handle(payRequest(userId, dueId.Hex(),
			`{"accountId":"`+accountId.Hex()+`","amount":250}`))

		require.Equal(t, http.StatusOK, response.StatusCode)
		require.NotNil(t, repo.lastInput)
		assert.Equal(t, dueId, repo.lastInput.DueId)
		assert.Equal(t, accountId, repo.lastInput.AccountId)
		assert.Equal(t, 250.0, repo.lastInput.Amount)
		assert.True(t, repo.lastInput.AllowPartial)

		var result usecase.PayBillDueResult
		require.NoError(t, json.NewDecoder(response.Body).Decode(&result))
		assert.Equal(t, models.BillStatusPaid, result.Due.Status)
	})

	t.Run("honors an explicit allowPartial false", func(t *testing.T) {
		repo := &fakePayRepository{result: &usecase.PayBillDueResult{}}
		controller := NewPayBillDueController(repo)

		response := controller.Handle(payRequest(userId, dueId.Hex(),
			`{"accountId":"`+accountId.Hex()+`","amount":250,"allowPartial":false}`))

		require.Equal(t, http.StatusOK, response.StatusCode)
		assert.False(t, repo.lastInput.AllowPartial)
	})

	t.Run("maps domain failures onto statuses", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want int
		}{
			{"missing due", models.ErrDueNotFound, http.StatusNotFound},
			{"missing account", models.ErrAccountNotFound, http.StatusNotFound},
			{"foreign resource", models.ErrAccessDenied, http.StatusForbidden},
			{"currency mismatch", models.ErrCurrencyMismatch, http.StatusConflict},
			{"insufficient balance", models.ErrInsufficientBalance, http.StatusUnprocessableEntity},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				controller := NewPayBillDueController(&fakePayRepository{err: tt.err})
				response := controller.Handle(payRequest(userId, dueId.Hex(),
					`{"accountId":"`+accountId.Hex()+`","amount":250}`))
				assert.Equal(t, tt.want, response.StatusCode)
			})
		}
	})

	t.Run("rejects a non-positive amount before reaching the repository", func(t *testing.T) {
		repo := &fakePayRepository{}
		controller := NewPayBillDueController(repo)

		response := controller.Handle(payRequest(userId, dueId.Hex(),
			`{"accountId":"`+accountId.Hex()+`","amount":-10}`))

		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
		assert.Nil(t, repo.lastInput)
	})

	t.Run("rejects a malformed due id", func(t *testing.T) {
		controller := NewPayBillDueController(&fakePayRepository{})
		response := controller.Handle(payRequest(userId, "not-an-id",
			`{"accountId":"`+accountId.Hex()+`","amount":250}`))
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}
