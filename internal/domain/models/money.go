package models

import "github.com/shopspring/decimal"

// Balances are stored as float64 but every mutation goes through
// decimal arithmetic rounded to 8 places, so repeated operations on
// crypto-sized fractions do not drift.

const moneyPlaces = 8

func AddMoney(a, b float64) float64 {
	v, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(moneyPlaces).Float64()
	return v
}

func SubMoney(a, b float64) float64 {
	v, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(moneyPlaces).Float64()
	return v
}

func MulMoney(a, b float64) float64 {
	v, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(moneyPlaces).Float64()
	return v
}
