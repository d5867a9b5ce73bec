package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMonthSummary(t *testing.T) {
	userId := primitive.NewObjectID()
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	bankId := primitive.NewObjectID()
	walletId := primitive.NewObjectID()
	institutions := []Institution{
		{Id: bankId, UserId: userId, Name: "Galicia", Kind: "BANK_PHYSICAL"},
		{Id: walletId, UserId: userId, Name: "Cash", Kind: "CASH"},
	}

	accounts := []Account{
		{Id: primitive.NewObjectID(), UserId: userId, InstitutionId: bankId, Currency: "USD", Balance: 500},
		{Id: primitive.NewObjectID(), UserId: userId, InstitutionId: bankId, Currency: "USD", Balance: 200},
		{Id: primitive.NewObjectID(), UserId: userId, InstitutionId: walletId, Currency: "ARS", Balance: 90000},
	}

	usdAccount := accounts[0].Id
	arsAccount := accounts[2].Id

	transactions := []Transaction{
		*NewIncomeTransaction(userId, usdAccount, 1000, "USD", "salary", now),
		*NewExpenseTransaction(userId, usdAccount, primitive.NewObjectID(), 300, "USD", "Rent", now),
		*NewTransferTransaction(userId, usdAccount, accounts[1].Id, 100, "USD", now),
		*NewFxTransaction(userId, usdAccount, arsAccount, 50, 50000, 1000, "USD", "ARS", now),
	}

	dues := []BillDue{
		{UserId: userId, Currency: "USD", AmountPlanned: 300, AmountPaid: 300, Status: BillStatusPaid},
		{UserId: userId, Currency: "USD", AmountPlanned: 400, AmountPaid: 0, Status: BillStatusOverdue},
		{UserId: userId, Currency: "ARS", AmountPlanned: 20000, AmountPaid: 5000, Status: BillStatusPartial},
	}

	summary := BuildMonthSummary("2024-03", institutions, accounts, transactions, dues)

	assert.Equal(t, "2024-03", summary.Month)
	assert.Equal(t, 3, summary.DuesTotal)
	assert.Equal(t, 1, summary.DuesPaid)
	assert.Equal(t, 1, summary.DuesOverdue)

	require.Len(t, summary.Flows, 2)

	flows := map[string]CurrencyFlow{}
	for _, f := range summary.Flows {
		flows[f.Currency] = f
	}

	usd := flows["USD"]
	assert.Equal(t, 1000.0, usd.Income)
	// Transfers between own accounts do not count; the FX sold side does.
	assert.Equal(t, 350.0, usd.Expenses)
	assert.Equal(t, 700.0, usd.Balance)
	assert.Equal(t, 700.0, usd.DuePlanned)
	assert.Equal(t, 300.0, usd.DuePaid)

	ars := flows["ARS"]
	assert.Equal(t, 50000.0, ars.Income)
	assert.Equal(t, 0.0, ars.Expenses)
	assert.Equal(t, 90000.0, ars.Balance)
	assert.Equal(t, 20000.0, ars.DuePlanned)
	assert.Equal(t, 5000.0, ars.DuePaid)

	// Currencies come out sorted for stable rendering.
	assert.Equal(t, "ARS", summary.Flows[0].Currency)
	assert.Equal(t, "USD", summary.Flows[1].Currency)

	require.Len(t, summary.Institutions, 2)
	assert.Equal(t, "Galicia", summary.Institutions[0].Name)
	require.Len(t, summary.Institutions[0].Balances, 1)
	assert.Equal(t, CurrencyAmount{Currency: "USD", Amount: 700}, summary.Institutions[0].Balances[0])
	assert.Equal(t, CurrencyAmount{Currency: "ARS", Amount: 90000}, summary.Institutions[1].Balances[0])

	assert.Len(t, summary.Recent, len(transactions))
}

func TestBuildMonthSummaryRecentKeepsTen(t *testing.T) {
	userId := primitive.NewObjectID()
	accountId := primitive.NewObjectID()
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	var transactions []Transaction
	for i := 0; i < 15; i++ {
		transactions = append(transactions, *NewIncomeTransaction(userId, accountId, float64(i+1), "USD", "", now))
	}

	summary := BuildMonthSummary("2024-03", nil, nil, transactions, nil)
	require.Len(t, summary.Recent, 10)
	assert.Equal(t, 1.0, summary.Recent[0].Amount)
}

func TestBuildMonthSummaryEmpty(t *testing.T) {
	summary := BuildMonthSummary("2024-01", nil, nil, nil, nil)
	assert.Empty(t, summary.Flows)
	assert.Empty(t, summary.Institutions)
	assert.Zero(t, summary.DuesTotal)
}
