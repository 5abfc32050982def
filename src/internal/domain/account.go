package domain

import "github.com/shopspring/decimal"

type Account struct {
	ID      int64
	Number  string
	Balance decimal.Decimal
}
