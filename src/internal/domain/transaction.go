package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionCredit Direction = "abonar"
	DirectionDebit  Direction = "retirar"
)

func (d Direction) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// TransactionRequest lives for a single credit or debit action.
type TransactionRequest struct {
	AccountNumber string
	Amount        decimal.Decimal
	Direction     Direction
}

// NewTransactionRequest checks the selected account first, then the amount,
// matching the order the account screen reports problems in.
func NewTransactionRequest(accountNumber string, amount *decimal.Decimal, direction Direction) (TransactionRequest, error) {
	if !direction.Valid() {
		return TransactionRequest{}, fmt.Errorf("unknown transaction direction %q", direction)
	}
	if strings.TrimSpace(accountNumber) == "" {
		return TransactionRequest{}, ErrNoAccountSelected
	}
	if amount == nil || !amount.IsPositive() {
		return TransactionRequest{}, ErrInvalidAmount
	}

	return TransactionRequest{
		AccountNumber: accountNumber,
		Amount:        *amount,
		Direction:     direction,
	}, nil
}

// Delta is the signed balance change this request asks for.
func (t TransactionRequest) Delta() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
