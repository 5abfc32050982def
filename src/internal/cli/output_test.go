package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "x")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitCommandError, "x"))))
	assert.Equal(t, ExitCommandError, GetExitCode(errors.New("unknown flag")))
}

func TestExitErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	err := WrapExitError(ExitCommandError, "load config", cause)
	assert.Equal(t, "load config: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Success(messageOutput{Mensaje: "hola"}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"mensaje": "hola"}, resp.Data)
}

func TestFormatterFail(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	err := f.Fail(ExitFailure, CodeRejected, "saldo insuficiente", nil, nil)
	assert.Equal(t, "Error [E002]: saldo insuficiente\n", buf.String())

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Reported)
	assert.Equal(t, ExitFailure, exitErr.Code)
}

func TestVerboseLogUsesErrWriter(t *testing.T) {
	var out, diag bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &diag, Verbose: true}

	f.VerboseLog("navegando a %s", "/cliente")
	assert.Empty(t, out.String())
	assert.Equal(t, "navegando a /cliente\n", diag.String())
}

func TestFormatMoney(t *testing.T) {
	p := newPrinter()
	assert.Equal(t, "$250.75", formatMoney(p, decimal.RequireFromString("250.75")))
	assert.Equal(t, "$0.50", formatMoney(p, decimal.RequireFromString("0.5")))
}
