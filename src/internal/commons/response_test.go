package commons

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIgnoresDataOnFailure(t *testing.T) {
	data := []string{"stale"}
	resp := Response[[]string]{Success: false, Message: "cliente no encontrado", Data: &data}

	assert.Nil(t, resp.Value())
}

func TestValueOnSuccess(t *testing.T) {
	resp := SuccessResponse("ok", []string{"001"})
	assert.Equal(t, []string{"001"}, resp.Value())
}

func TestMapKeepsStatusFields(t *testing.T) {
	in := SuccessResponse("abono realizado", 10).WithNewSaldo(decimal.RequireFromString("110.50"))

	out := Map(in, func(v int) string { return "n" })
	require.NotNil(t, out.Data)
	assert.True(t, out.Success)
	assert.Equal(t, "abono realizado", out.Message)
	assert.Equal(t, "n", *out.Data)
	require.NotNil(t, out.NewSaldo)
	assert.True(t, out.NewSaldo.Equal(decimal.RequireFromString("110.5")))
}

func TestMapWithoutData(t *testing.T) {
	out := Map(ErrorResponse[int]("saldo insuficiente"), func(v int) string { return "unused" })
	assert.False(t, out.Success)
	assert.Nil(t, out.Data)
}
