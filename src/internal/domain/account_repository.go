package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	ListAll(ctx context.Context) ([]Account, error)
	ListByClient(ctx context.Context, dui string) ([]Account, error)
	EnsureClient(ctx context.Context, dui string) error
	Create(ctx context.Context, dui string, account Account) (Account, error)
	Delete(ctx context.Context, dui string, number string) error
	// Adjust applies delta to the balance and fails with ErrInsufficientBalance
	// when the result would be negative.
	Adjust(ctx context.Context, dui string, number string, delta decimal.Decimal) (Account, error)
}
