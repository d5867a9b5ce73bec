package ledger

import (
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

// fakeLedger applies the same domain rules as the Mongo repository,
// against an in-memory account map.
type fakeLedger struct {
	accounts map[primitive.ObjectID]*models.Account
}

func (f *fakeLedger) Transfer(userId, fromAccountId, toAccountId primitive.ObjectID, amount float64) (*models.Transaction, error) {
	from, ok := f.accounts[fromAccountId]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	to, ok := f.accounts[toAccountId]
	if !ok {
		return nil, models.ErrAccountNotFound
	}

	if err := models.ValidateTransfer(from, to, userId, amount); err != nil {
		return nil, err
	}

	from.Balance = models.SubMoney(from.Balance, amount)
	to.Balance = models.AddMoney(to.Balance, amount)

	return models.NewTransferTransaction(userId, from.Id, to.Id, amount, from.Currency, time.Now().UTC()), nil
}

func transferRequest(userId primitive.ObjectID, body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPost, "/transfer", strings.NewReader(body))
	req.Header.Set("UserId", userId.Hex())
	return presentationProtocols.HttpRequest{
		Body:   req.Body,
		Header: req.Header,
		Req:    req,
	}
}

func TestTransferFundsController(t *testing.T) {
	userId := primitive.NewObjectID()

	newLedger := func() (*fakeLedger, primitive.ObjectID, primitive.ObjectID) {
		checkingId := primitive.NewObjectID()
		savingsId := primitive.NewObjectID()
		ledger := &fakeLedger{accounts: map[primitive.ObjectID]*models.Account{
			checkingId: {Id: checkingId, UserId: userId, Name: "Checking", Currency: "USD", Balance: 500},
			savingsId:  {Id: savingsId, UserId: userId, Name: "Savings", Currency: "USD", Balance: 200},
		}}
		return ledger, checkingId, savingsId
	}

	t.Run("moves the amount between accounts", func(t *testing.T) {
		ledger, checkingId, savingsId := newLedger()
		controller := NewTransferFundsController(ledger)

		response := controller.Handle(transferRequest(userId,
			`{"fromAccountId":"`+checkingId.Hex()+`","toAccountId":"`+savingsId.Hex()+`","amount":100}`))

		require.Equal(t, http.StatusCreated, response.StatusCode)
		assert.Equal(t, 400.0, ledger.accounts[checkingId].Balance)
		assert.Equal(t, 300.0, ledger.accounts[savingsId].Balance)
	})

	t.Run("insufficient balance leaves both accounts untouched", func(t *testing.T) {
		ledger, checkingId, savingsId := newLedger()
		controller := NewTransferFundsController(ledger)

		response := controller.Handle(transferRequest(userId,
			`{"fromAccountId":"`+checkingId.Hex()+`","toAccountId":"`+savingsId.Hex()+`","amount":1000}`))

		assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)
		assert.Equal(t, 500.0, ledger.accounts[checkingId].Balance)
		assert.Equal(t, 200.0, ledger.accounts[savingsId].Balance)
	})

	t.Run("cross-currency transfer is a conflict", func(t *testing.T) {
		ledger, checkingId, _ := newLedger()
		cryptoId := primitive.NewObjectID()
		ledger.accounts[cryptoId] = &models.Account{Id: cryptoId, UserId: userId, Name: "Cold wallet", Currency: "BTC", Balance: 1}
		controller := NewTransferFundsController(ledger)

		response := controller.Handle(transferRequest(userId,
			`{"fromAccountId":"`+checkingId.Hex()+`","toAccountId":"`+cryptoId.Hex()+`","amount":50}`))

		assert.Equal(t, http.StatusConflict, response.StatusCode)
	})

	t.Run("someone else's account is forbidden", func(t *testing.T) {
		ledger, checkingId, savingsId := newLedger()
		ledger.accounts[savingsId].UserId = primitive.NewObjectID()
		controller := NewTransferFundsController(ledger)

		response := controller.Handle(transferRequest(userId,
			`{"fromAccountId":"`+checkingId.Hex()+`","toAccountId":"`+savingsId.Hex()+`","amount":50}`))

		assert.Equal(t, http.StatusForbidden, response.StatusCode)
	})

	t.Run("rejects transferring an account into itself", func(t *testing.T) {
		ledger, checkingId, _ := newLedger()
		controller := NewTransferFundsController(ledger)

		response := controller.Handle(transferRequest(userId,
			`{"fromAccountId":"`+checkingId.Hex()+`","toAccountId":"`+checkingId.Hex()+`","amount":50}`))

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		assert.Equal(t, 500.0, ledger.accounts[checkingId].Balance)
	})
}
