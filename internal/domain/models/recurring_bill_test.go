package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampDayOfMonth(t *testing.T) {
	assert.Equal(t, 1, ClampDayOfMonth(0))
	assert.Equal(t, 1, ClampDayOfMonth(-3))
	assert.Equal(t, 15, ClampDayOfMonth(15))
	assert.Equal(t, 28, ClampDayOfMonth(28))
	assert.Equal(t, 28, ClampDayOfMonth(31))
}

func TestRecurringBillDueDateFor(t *testing.T) {
	// dayOfMonth 31 clamps so February keeps a valid date.
	bill := &RecurringBill{Title: "Rent", Currency: "ARS", AmountType: "FIXED", Amount: 5000, DayOfMonth: 31}

	dueDate := bill.DueDateFor(2024, time.February)

	assert.Equal(t, time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), dueDate)
	assert.Equal(t, 5000.0, bill.PlannedAmount())
}

func TestRecurringBillPlannedAmount(t *testing.T) {
	tests := []struct {
		amountType string
		amount     float64
		want       float64
	}{
		{"FIXED", 5000, 5000},
		{"ESTIMATE", 1234.5, 1234.5},
		{"VARIABLE", 9999, 0},
	}

	for _, tt := range tests {
		t.Run(tt.amountType, func(t *testing.T) {
			bill := &RecurringBill{AmountType: tt.amountType, Amount: tt.amount}
			assert.Equal(t, tt.want, bill.PlannedAmount())
		})
	}
}
