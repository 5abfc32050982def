package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/commons"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/go-chi/chi/v5"
)

type CredentialService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	List(ctx context.Context) ([]models.CredentialResponse, error)
	ListByDUI(ctx context.Context, dui string) ([]models.CredentialResponse, error)
	Create(ctx context.Context, req models.CreateCredentialRequest) (models.CredentialResponse, error)
	Update(ctx context.Context, id int64, req models.UpdateCredentialRequest) (models.CredentialResponse, error)
	Delete(ctx context.Context, id int64) error
}

type CredentialController struct {
	service CredentialService
}

func NewCredentialController(service CredentialService) *CredentialController {
	return &CredentialController{service: service}
}

// RegisterRoutes mounts login unprotected; the administration routes go
// behind authMiddleware when one is given.
func (c *CredentialController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/credenciales/login", c.login)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/credenciales", c.list)
		r.Get("/credenciales/dui/{dui}", c.listByDUI)
		r.Post("/credenciales", c.create)
		r.Put("/credenciales/{id}", c.update)
		r.Delete("/credenciales/{id}", c.delete)
	})
}

func (c *CredentialController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := models.LoginResponse{Success: false, Message: "invalid request body"}
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	response, err := c.service.Login(r.Context(), req)
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

func (c *CredentialController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	credentials, err := c.service.List(r.Context())
	c.respond(w, r, start, http.StatusOK, credentials, err)
}

func (c *CredentialController) listByDUI(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	credentials, err := c.service.ListByDUI(r.Context(), chi.URLParam(r, "dui"))
	c.respond(w, r, start, http.StatusOK, credentials, err)
}

func (c *CredentialController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.CreateCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.badBody(w, r, start, err)
		return
	}
	logRequest(r, req)

	credential, err := c.service.Create(r.Context(), req)
	c.respond(w, r, start, http.StatusCreated, credential, err)
}

func (c *CredentialController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		c.badBody(w, r, start, errors.New("id must be numeric"))
		return
	}

	var req models.UpdateCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.badBody(w, r, start, err)
		return
	}
	logRequest(r, req)

	credential, err := c.service.Update(r.Context(), id, req)
	c.respond(w, r, start, http.StatusOK, credential, err)
}

func (c *CredentialController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		c.badBody(w, r, start, errors.New("id must be numeric"))
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.respond(w, r, start, 0, nil, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, nil, start)
}

// respond writes payload with status on success. Credential endpoints return
// bare resources, so failures use the envelope only to carry a message.
func (c *CredentialController) respond(w http.ResponseWriter, r *http.Request, start time.Time, status int, payload any, err error) {
	if err != nil {
		status = statusFor(err)
		logError(r, err, nil)
		response := commons.ErrorResponse[models.CredentialResponse](errorMessage(err, status))
		writeJSON(w, status, response)
		logResponse(r, status, response, start)
		return
	}

	writeJSON(w, status, payload)
	logResponse(r, status, payload, start)
}

func (c *CredentialController) badBody(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	logError(r, err, nil)
	response := commons.ErrorResponse[models.CredentialResponse]("invalid request body", err.Error())
	writeJSON(w, http.StatusBadRequest, response)
	logResponse(r, http.StatusBadRequest, response, start)
}

func errorMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "Unable to process credential right now"
	}
	var fieldErrs models.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs.Error()
	}
	if status == http.StatusNotFound {
		return "credencial no encontrada"
	}
	return err.Error()
}
