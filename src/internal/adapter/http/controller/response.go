package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/usecase/services"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateAccount), errors.Is(err, domain.ErrDuplicateUsuario):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
