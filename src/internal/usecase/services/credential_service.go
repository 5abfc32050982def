package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CredentialService struct {
	credentialRepo domain.CredentialRepository
	accountRepo    domain.AccountRepository
}

func NewCredentialService(credentialRepo domain.CredentialRepository, accountRepo domain.AccountRepository) *CredentialService {
	return &CredentialService{credentialRepo: credentialRepo, accountRepo: accountRepo}
}

// Login never returns an error for bad credentials; the response carries
// success=false instead.
func (s *CredentialService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	logger.Info("credential service login request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return models.LoginResponse{Success: false, Message: err.Error()}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	credential, err := s.credentialRepo.GetByUsuario(ctx, strings.TrimSpace(req.Correo))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Info("credential service login unknown usuario", logger.Fields{"correo": req.Correo})
			return models.LoginResponse{Success: false, Message: "Credenciales inválidas"}, nil
		}
		logger.Error("credential service login lookup failed", err, nil)
		return models.LoginResponse{Success: false, Message: "No se pudo iniciar sesión"}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.ContrasenaHash), []byte(req.Contrasena)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Info("credential service login mismatch", logger.Fields{"correo": req.Correo})
			return models.LoginResponse{Success: false, Message: "Credenciales inválidas"}, nil
		}
		wrapped := fmt.Errorf("compare contrasena: %w", err)
		logger.Error("credential service login compare failed", wrapped, nil)
		return models.LoginResponse{Success: false, Message: "No se pudo iniciar sesión"}, wrapped
	}

	logger.Info("credential service login success", logger.Fields{
		"credentialId": credential.ID,
		"tipoUsuario":  string(credential.Role),
	})

	return models.LoginResponse{
		Success:     true,
		Message:     "Inicio de sesión exitoso",
		TipoUsuario: string(credential.Role),
		DUI:         credential.DUI,
		Token:       uuid.NewString(),
	}, nil
}

func (s *CredentialService) List(ctx context.Context) ([]models.CredentialResponse, error) {
	credentials, err := s.credentialRepo.List(ctx)
	if err != nil {
		logger.Error("credential service list failed", err, nil)
		return nil, err
	}
	return models.NewCredentialResponses(credentials), nil
}

func (s *CredentialService) ListByDUI(ctx context.Context, dui string) ([]models.CredentialResponse, error) {
	credentials, err := s.credentialRepo.ListByDUI(ctx, dui)
	if err != nil {
		logger.Error("credential service list by dui failed", err, logger.Fields{"dui": dui})
		return nil, err
	}
	return models.NewCredentialResponses(credentials), nil
}

// Create stores a hashed contrasena and registers the owning client.
func (s *CredentialService) Create(ctx context.Context, req models.CreateCredentialRequest) (models.CredentialResponse, error) {
	logger.Info("credential service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return models.CredentialResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := hashContrasena(req.Contrasena)
	if err != nil {
		logger.Error("credential service create hash failed", err, nil)
		return models.CredentialResponse{}, err
	}

	created, err := s.credentialRepo.Create(ctx, domain.Credential{
		DUI:            strings.TrimSpace(req.DUI),
		Usuario:        strings.TrimSpace(req.Usuario),
		ContrasenaHash: hash,
		Role:           req.RoleOrDefault(),
	})
	if err != nil {
		logger.Error("credential service create failed", err, logger.Fields{"dui": req.DUI})
		return models.CredentialResponse{}, err
	}

	if created.Role == domain.RoleCliente {
		if err := s.accountRepo.EnsureClient(ctx, created.DUI); err != nil {
			logger.Error("credential service register client failed", err, logger.Fields{"dui": created.DUI})
			return models.CredentialResponse{}, err
		}
	}

	logger.Info("credential service create success", logger.Fields{"credentialId": created.ID})
	return models.NewCredentialResponse(created), nil
}

func (s *CredentialService) Update(ctx context.Context, id int64, req models.UpdateCredentialRequest) (models.CredentialResponse, error) {
	logger.Info("credential service update request", logger.Fields{
		"credentialId": id,
		"payload":      logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return models.CredentialResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	current, err := s.credentialRepo.GetByID(ctx, id)
	if err != nil {
		return models.CredentialResponse{}, err
	}

	if req.DUI != nil {
		current.DUI = strings.TrimSpace(*req.DUI)
	}
	if req.Usuario != nil {
		current.Usuario = strings.TrimSpace(*req.Usuario)
	}
	if req.TipoUsuario != nil {
		current.Role = domain.Role(*req.TipoUsuario)
	}
	if req.Contrasena != nil {
		hash, err := hashContrasena(*req.Contrasena)
		if err != nil {
			return models.CredentialResponse{}, err
		}
		current.ContrasenaHash = hash
	}

	updated, err := s.credentialRepo.Update(ctx, current)
	if err != nil {
		logger.Error("credential service update failed", err, logger.Fields{"credentialId": id})
		return models.CredentialResponse{}, err
	}
	if updated.Role == domain.RoleCliente {
		if err := s.accountRepo.EnsureClient(ctx, updated.DUI); err != nil {
			return models.CredentialResponse{}, err
		}
	}
	return models.NewCredentialResponse(updated), nil
}

func (s *CredentialService) Delete(ctx context.Context, id int64) error {
	if err := s.credentialRepo.Delete(ctx, id); err != nil {
		logger.Error("credential service delete failed", err, logger.Fields{"credentialId": id})
		return err
	}
	return nil
}

func hashContrasena(contrasena string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash contrasena: %w", err)
	}
	return string(hashed), nil
}
