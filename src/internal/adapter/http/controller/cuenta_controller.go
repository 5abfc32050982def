package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/commons"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/go-chi/chi/v5"
)

type AccountService interface {
	ListAll(ctx context.Context) ([]models.AccountResponse, error)
	ListByClient(ctx context.Context, dui string) (commons.Response[[]models.AccountResponse], error)
	Create(ctx context.Context, dui string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	Delete(ctx context.Context, dui string, numero string) error
	Transact(ctx context.Context, dui string, direction domain.Direction, req models.TransactionRequest) (commons.Response[models.AccountResponse], error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/cuentas", c.listAll)
		r.Get("/cuentas/cliente/{dui}", c.listByClient)
		r.Post("/cuentas/cliente/{dui}", c.create)
		r.Delete("/cuentas/cliente/{dui}/{numero}", c.delete)
		r.Post("/cuentas/cliente/{dui}/abonarefectivo", c.transact(domain.DirectionCredit))
		r.Post("/cuentas/cliente/{dui}/retirarefectivo", c.transact(domain.DirectionDebit))
	})
}

func (c *AccountController) listAll(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accounts, err := c.service.ListAll(r.Context())
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[[]models.AccountResponse]("No se pudieron obtener las cuentas")
		writeJSON(w, http.StatusInternalServerError, response)
		logResponse(r, http.StatusInternalServerError, response, start)
		return
	}

	writeJSON(w, http.StatusOK, accounts)
	logResponse(r, http.StatusOK, nil, start)
}

func (c *AccountController) listByClient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.ListByClient(r.Context(), chi.URLParam(r, "dui"))
	if err != nil {
		status := statusFor(err)
		logError(r, err, logger.Fields{"message": response.Message})
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.Create(r.Context(), chi.URLParam(r, "dui"), req)
	if err != nil {
		status := statusFor(err)
		logError(r, err, logger.Fields{"message": response.Message})
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	if err := c.service.Delete(r.Context(), chi.URLParam(r, "dui"), chi.URLParam(r, "numero")); err != nil {
		status := statusFor(err)
		logError(r, err, nil)
		response := commons.ErrorResponse[models.AccountResponse](err.Error())
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, nil, start)
}

func (c *AccountController) transact(direction domain.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logError(r, err, nil)
			response := commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error())
			writeJSON(w, http.StatusBadRequest, response)
			logResponse(r, http.StatusBadRequest, response, start)
			return
		}
		logRequest(r, req)

		response, err := c.service.Transact(r.Context(), chi.URLParam(r, "dui"), direction, req)
		if err != nil {
			status := statusFor(err)
			logError(r, err, logger.Fields{"message": response.Message, "direction": string(direction)})
			writeJSON(w, status, response)
			logResponse(r, status, response, start)
			return
		}

		writeJSON(w, http.StatusOK, response)
		logResponse(r, http.StatusOK, response, start)
	}
}
