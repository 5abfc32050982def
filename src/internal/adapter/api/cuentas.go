package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/commons"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/shopspring/decimal"
)

func clientPath(dui string) string {
	return "/cuentas/cliente/" + url.PathEscape(dui)
}

// ListAccounts calls GET /cuentas.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var out []models.AccountResponse
	if err := c.do(ctx, call{
		method:    http.MethodGet,
		path:      "/cuentas",
		out:       &out,
		operation: "list accounts",
	}); err != nil {
		return nil, err
	}
	return models.AccountsToDomain(out), nil
}

// ListAccountsByClient calls GET /cuentas/cliente/{dui}.
func (c *Client) ListAccountsByClient(ctx context.Context, dui string) (commons.Response[[]domain.Account], error) {
	var out commons.Response[[]models.AccountResponse]
	if err := c.do(ctx, call{
		method:    http.MethodGet,
		path:      clientPath(dui),
		out:       &out,
		operation: "list client accounts",
	}); err != nil {
		return commons.Response[[]domain.Account]{}, err
	}
	return commons.Map(out, models.AccountsToDomain), nil
}

// CreateAccount calls POST /cuentas/cliente/{dui}.
func (c *Client) CreateAccount(ctx context.Context, dui string, numero string, saldo decimal.Decimal) (commons.Response[domain.Account], error) {
	return c.accountCall(ctx, clientPath(dui), models.CreateAccountRequest{Numero: numero, Saldo: saldo}, "create account")
}

// DeleteAccount calls DELETE /cuentas/cliente/{dui}/{numero}.
func (c *Client) DeleteAccount(ctx context.Context, dui string, numero string) error {
	return c.do(ctx, call{
		method:    http.MethodDelete,
		path:      clientPath(dui) + "/" + url.PathEscape(numero),
		operation: "delete account",
	})
}

// Credit calls POST /cuentas/cliente/{dui}/abonarefectivo.
func (c *Client) Credit(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error) {
	return c.accountCall(ctx, clientPath(dui)+"/abonarefectivo", models.TransactionRequest{Numero: numero, Monto: monto}, "credit account")
}

// Debit calls POST /cuentas/cliente/{dui}/retirarefectivo.
func (c *Client) Debit(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error) {
	return c.accountCall(ctx, clientPath(dui)+"/retirarefectivo", models.TransactionRequest{Numero: numero, Monto: monto}, "debit account")
}

func (c *Client) accountCall(ctx context.Context, path string, body any, operation string) (commons.Response[domain.Account], error) {
	var out commons.Response[models.AccountResponse]
	if err := c.do(ctx, call{
		method:    http.MethodPost,
		path:      path,
		body:      body,
		out:       &out,
		operation: operation,
	}); err != nil {
		return commons.Response[domain.Account]{}, err
	}
	return commons.Map(out, models.AccountResponse.ToDomain), nil
}
