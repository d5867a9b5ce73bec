package models

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CurrencyFlow is one currency's slice of a month summary: what came
// in, what went out, what the accounts currently hold and how the
// month's dues stand.
type CurrencyFlow struct {
	Currency   string  `json:"currency"`
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Balance    float64 `json:"balance"`
	DuePlanned float64 `json:"duePlanned"`
	DuePaid    float64 `json:"duePaid"`
}

type CurrencyAmount struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type InstitutionBalance struct {
	InstitutionId primitive.ObjectID `json:"institutionId"`
	Name          string             `json:"name"`
	Balances      []CurrencyAmount   `json:"balances"`
}

type MonthSummary struct {
	Month        string               `json:"month"`
	Flows        []CurrencyFlow       `json:"flows"`
	Institutions []InstitutionBalance `json:"institutions"`
	Recent       []Transaction        `json:"recent"`
	DuesTotal    int                  `json:"duesTotal"`
	DuesPaid     int                  `json:"duesPaid"`
	DuesOverdue  int                  `json:"duesOverdue"`
}

const recentTransactionsLimit = 10

// BuildMonthSummary folds the month's accounts, transactions and dues
// into per-currency flows and per-institution balances. Amounts in
// different currencies are never mixed; FX counts the sold side as an
// outflow and the bought side as an inflow of its own currency.
// Transactions are expected newest first; the recent list keeps the
// first ten.
func BuildMonthSummary(month string, institutions []Institution, accounts []Account, transactions []Transaction, dues []BillDue) *MonthSummary {
	flows := make(map[string]*CurrencyFlow)

	flow := func(currency string) *CurrencyFlow {
		if f, ok := flows[currency]; ok {
			return f
		}
		f := &CurrencyFlow{Currency: currency}
		flows[currency] = f
		return f
	}

	for _, a := range accounts {
		f := flow(a.Currency)
		f.Balance = AddMoney(f.Balance, a.Balance)
	}

	for _, t := range transactions {
		switch t.Type {
		case TransactionTypeIncome:
			f := flow(t.Currency)
			f.Income = AddMoney(f.Income, t.Amount)
		case TransactionTypeExpense:
			f := flow(t.Currency)
			f.Expenses = AddMoney(f.Expenses, t.Amount)
		case TransactionTypeFx:
			sell := flow(t.SellCurrency)
			sell.Expenses = AddMoney(sell.Expenses, t.SellAmount)
			buy := flow(t.BuyCurrency)
			buy.Income = AddMoney(buy.Income, t.BuyAmount)
		}
		// Transfers move money between the user's own accounts and do
		// not change what they hold.
	}

	summary := &MonthSummary{Month: month}
	for _, d := range dues {
		f := flow(d.Currency)
		f.DuePlanned = AddMoney(f.DuePlanned, d.AmountPlanned)
		f.DuePaid = AddMoney(f.DuePaid, d.AmountPaid)

		summary.DuesTotal++
		switch d.Status {
		case BillStatusPaid:
			summary.DuesPaid++
		case BillStatusOverdue:
			summary.DuesOverdue++
		}
	}

	currencies := make([]string, 0, len(flows))
	for currency := range flows {
		currencies = append(currencies, currency)
	}
	sort.Strings(currencies)

	for _, currency := range currencies {
		summary.Flows = append(summary.Flows, *flows[currency])
	}

	for _, inst := range institutions {
		byCurrency := make(map[string]float64)
		for _, a := range accounts {
			if a.InstitutionId == inst.Id {
				byCurrency[a.Currency] = AddMoney(byCurrency[a.Currency], a.Balance)
			}
		}

		balance := InstitutionBalance{InstitutionId: inst.Id, Name: inst.Name}
		keys := make([]string, 0, len(byCurrency))
		for currency := range byCurrency {
			keys = append(keys, currency)
		}
		sort.Strings(keys)
		for _, currency := range keys {
			balance.Balances = append(balance.Balances, CurrencyAmount{Currency: currency, Amount: byCurrency[currency]})
		}
		summary.Institutions = append(summary.Institutions, balance)
	}

	limit := recentTransactionsLimit
	if len(transactions) < limit {
		limit = len(transactions)
	}
	summary.Recent = append(summary.Recent, transactions[:limit]...)

	return summary
}
