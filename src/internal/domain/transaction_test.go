package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNewTransactionRequest(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		amount  *decimal.Decimal
		wantErr error
	}{
		{name: "valid", number: "001", amount: amountPtr("10.25")},
		{name: "no account", number: " ", amount: amountPtr("10"), wantErr: ErrNoAccountSelected},
		{name: "unset amount", number: "001", amount: nil, wantErr: ErrInvalidAmount},
		{name: "zero amount", number: "001", amount: amountPtr("0"), wantErr: ErrInvalidAmount},
		{name: "negative amount", number: "001", amount: amountPtr("-5"), wantErr: ErrInvalidAmount},
		{name: "account checked first", number: "", amount: amountPtr("-5"), wantErr: ErrNoAccountSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewTransactionRequest(tt.number, tt.amount, DirectionCredit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.number, req.AccountNumber)
			assert.True(t, req.Amount.Equal(*tt.amount))
		})
	}
}

func TestNewTransactionRequestUnknownDirection(t *testing.T) {
	_, err := NewTransactionRequest("001", amountPtr("1"), Direction("transferir"))
	require.Error(t, err)
}

func TestDelta(t *testing.T) {
	credit, err := NewTransactionRequest("001", amountPtr("7.5"), DirectionCredit)
	require.NoError(t, err)
	debit, err := NewTransactionRequest("001", amountPtr("7.5"), DirectionDebit)
	require.NoError(t, err)

	assert.True(t, credit.Delta().Equal(decimal.RequireFromString("7.5")))
	assert.True(t, debit.Delta().Equal(decimal.RequireFromString("-7.5")))
}

func TestSessionValidate(t *testing.T) {
	assert.Error(t, Session{}.Validate())
	assert.NoError(t, Session{DUI: "12345678-9"}.Validate())
}
