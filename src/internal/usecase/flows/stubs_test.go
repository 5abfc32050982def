package flows

import (
	"context"
	"sync"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/commons"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/shopspring/decimal"
)

type stubCredentialsAPI struct {
	mu     sync.Mutex
	calls  int
	loginF func(ctx context.Context, correo string, contrasena string) (models.LoginResponse, error)
}

func (s *stubCredentialsAPI) Login(ctx context.Context, correo string, contrasena string) (models.LoginResponse, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.loginF(ctx, correo, contrasena)
}

func (s *stubCredentialsAPI) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type transactionCall struct {
	Direction domain.Direction
	DUI       string
	Numero    string
	Monto     decimal.Decimal
}

type stubAccountsAPI struct {
	mu           sync.Mutex
	listCalls    int
	listDUIs     []string
	transactions []transactionCall

	listF   func(ctx context.Context, dui string) (commons.Response[[]domain.Account], error)
	creditF func(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error)
	debitF  func(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error)
}

func (s *stubAccountsAPI) ListAccountsByClient(ctx context.Context, dui string) (commons.Response[[]domain.Account], error) {
	s.mu.Lock()
	s.listCalls++
	s.listDUIs = append(s.listDUIs, dui)
	s.mu.Unlock()
	return s.listF(ctx, dui)
}

func (s *stubAccountsAPI) Credit(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error) {
	s.record(domain.DirectionCredit, dui, numero, monto)
	return s.creditF(ctx, dui, numero, monto)
}

func (s *stubAccountsAPI) Debit(ctx context.Context, dui string, numero string, monto decimal.Decimal) (commons.Response[domain.Account], error) {
	s.record(domain.DirectionDebit, dui, numero, monto)
	return s.debitF(ctx, dui, numero, monto)
}

func (s *stubAccountsAPI) record(direction domain.Direction, dui string, numero string, monto decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, transactionCall{Direction: direction, DUI: dui, Numero: numero, Monto: monto})
}

func (s *stubAccountsAPI) ListCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCalls
}

func (s *stubAccountsAPI) Transactions() []transactionCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]transactionCall(nil), s.transactions...)
}

func demoAccounts() []domain.Account {
	return []domain.Account{
		{ID: 1, Number: "0010001", Balance: decimal.RequireFromString("1500.00")},
		{ID: 2, Number: "0010002", Balance: decimal.RequireFromString("250.75")},
	}
}

func listOK(accounts []domain.Account) func(context.Context, string) (commons.Response[[]domain.Account], error) {
	return func(context.Context, string) (commons.Response[[]domain.Account], error) {
		return commons.SuccessResponse("Cuentas obtenidas", accounts), nil
	}
}

func transactOK(message string) func(context.Context, string, string, decimal.Decimal) (commons.Response[domain.Account], error) {
	return func(_ context.Context, _ string, numero string, _ decimal.Decimal) (commons.Response[domain.Account], error) {
		return commons.SuccessResponse(message, domain.Account{Number: numero}), nil
	}
}
