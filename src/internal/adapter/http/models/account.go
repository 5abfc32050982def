package models

import (
	"errors"
	"strings"

	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/shopspring/decimal"
)

func init() {
	// The accounts API exchanges saldo and monto as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type AccountResponse struct {
	ID     int64           `json:"id"`
	Numero string          `json:"numero"`
	Saldo  decimal.Decimal `json:"saldo"`
}

func NewAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{ID: a.ID, Numero: a.Number, Saldo: a.Balance}
}

func (r AccountResponse) ToDomain() domain.Account {
	return domain.Account{ID: r.ID, Number: r.Numero, Balance: r.Saldo}
}

func NewAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, NewAccountResponse(a))
	}
	return out
}

func AccountsToDomain(in []AccountResponse) []domain.Account {
	out := make([]domain.Account, 0, len(in))
	for _, r := range in {
		out = append(out, r.ToDomain())
	}
	return out
}

type CreateAccountRequest struct {
	Numero string          `json:"numero" validate:"required"`
	Saldo  decimal.Decimal `json:"saldo"`
}

func (r CreateAccountRequest) Validate() error {
	errs := ValidationErrors{}
	if err := validateStruct(r); err != nil {
		var fieldErrs ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for k, v := range fieldErrs {
			errs[k] = v
		}
	}
	if r.Saldo.IsNegative() {
		errs["saldo"] = "El saldo inicial no puede ser negativo."
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TransactionRequest is the body of abonarefectivo and retirarefectivo.
type TransactionRequest struct {
	Numero string          `json:"numero"`
	Monto  decimal.Decimal `json:"monto"`
}

func (r TransactionRequest) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(r.Numero) == "" {
		errs["numero"] = fieldMessages["numero.required"]
	}
	if !r.Monto.IsPositive() {
		errs["monto"] = "El monto debe ser mayor a 0."
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
