package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/commons"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/logger"
)

// ErrValidation marks failures the caller can fix by changing the request.
var ErrValidation = errors.New("validation failed")

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) ListAll(ctx context.Context) ([]models.AccountResponse, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		logger.Error("account service list all failed", err, nil)
		return nil, err
	}
	return models.NewAccountResponses(accounts), nil
}

func (s *AccountService) ListByClient(ctx context.Context, dui string) (commons.Response[[]models.AccountResponse], error) {
	dui = strings.TrimSpace(dui)
	logger.Info("account service list by client request", logger.Fields{"dui": dui})

	accounts, err := s.accountRepo.ListByClient(ctx, dui)
	if err != nil {
		logger.Error("account service list by client failed", err, logger.Fields{"dui": dui})
		return commons.ErrorResponse[[]models.AccountResponse](failureMessage(err, "No se pudieron obtener las cuentas")), err
	}

	return commons.SuccessResponse("cuentas obtenidas exitosamente", models.NewAccountResponses(accounts)), nil
}

func (s *AccountService) Create(ctx context.Context, dui string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	dui = strings.TrimSpace(dui)
	logger.Info("account service create account request", logger.Fields{
		"dui":     dui,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), fmt.Errorf("%w: %w", ErrValidation, err)
	}

	created, err := s.accountRepo.Create(ctx, dui, domain.Account{
		Number:  strings.TrimSpace(req.Numero),
		Balance: req.Saldo.Round(2),
	})
	if err != nil {
		logger.Error("account service create account failed", err, logger.Fields{"dui": dui, "numero": req.Numero})
		return commons.ErrorResponse[models.AccountResponse](failureMessage(err, "No se pudo crear la cuenta")), err
	}

	logger.Info("account service create account success", logger.Fields{"dui": dui, "accountId": created.ID})
	return commons.SuccessResponse("cuenta creada exitosamente", models.NewAccountResponse(created)), nil
}

func (s *AccountService) Delete(ctx context.Context, dui string, numero string) error {
	dui = strings.TrimSpace(dui)
	if err := s.accountRepo.Delete(ctx, dui, strings.TrimSpace(numero)); err != nil {
		logger.Error("account service delete account failed", err, logger.Fields{"dui": dui, "numero": numero})
		return err
	}
	logger.Info("account service delete account success", logger.Fields{"dui": dui, "numero": numero})
	return nil
}

// Transact applies a credit or debit. The balance never goes below zero.
func (s *AccountService) Transact(ctx context.Context, dui string, direction domain.Direction, req models.TransactionRequest) (commons.Response[models.AccountResponse], error) {
	dui = strings.TrimSpace(dui)
	logger.Info("account service transaction request", logger.Fields{
		"dui":       dui,
		"direction": string(direction),
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("monto debe ser mayor a 0", err.Error()), fmt.Errorf("%w: %w", ErrValidation, err)
	}

	amount := req.Monto.Round(2)
	tx, err := domain.NewTransactionRequest(strings.TrimSpace(req.Numero), &amount, direction)
	if err != nil {
		return commons.ErrorResponse[models.AccountResponse]("monto debe ser mayor a 0", err.Error()), fmt.Errorf("%w: %w", ErrValidation, err)
	}

	account, err := s.accountRepo.Adjust(ctx, dui, tx.AccountNumber, tx.Delta())
	if err != nil {
		logger.Error("account service transaction failed", err, logger.Fields{
			"dui":       dui,
			"numero":    tx.AccountNumber,
			"direction": string(direction),
		})
		return commons.ErrorResponse[models.AccountResponse](failureMessage(err, "No se pudo completar la transacción")), err
	}

	message := "Abono realizado exitosamente"
	if direction == domain.DirectionDebit {
		message = "Retiro realizado exitosamente"
	}

	logger.Info("account service transaction success", logger.Fields{
		"dui":       dui,
		"numero":    account.Number,
		"direction": string(direction),
		"saldo":     account.Balance.String(),
	})

	return commons.SuccessResponse(message, models.NewAccountResponse(account)).WithNewSaldo(account.Balance), nil
}

// failureMessage surfaces known business errors verbatim and hides the rest.
func failureMessage(err error, fallback string) string {
	for _, known := range []error{
		domain.ErrClientNotFound,
		domain.ErrAccountNotFound,
		domain.ErrInsufficientBalance,
		domain.ErrDuplicateAccount,
		domain.ErrDuplicateUsuario,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return fallback
}
