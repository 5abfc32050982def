package models

import (
	"strings"

	"github.com/api-sage/banco-portal/src/internal/domain"
)

type LoginRequest struct {
	Correo     string `json:"correo" validate:"required,max=25,correo"`
	Contrasena string `json:"contrasena" validate:"required,max=10"`
}

func (r LoginRequest) Validate() error {
	return validateStruct(r)
}

// LoginResponse is the role-based login shape. Token is an opaque placeholder
// that some backends include.
type LoginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	TipoUsuario string `json:"tipoUsuario,omitempty"`
	DUI         string `json:"dui,omitempty"`
	Token       string `json:"token,omitempty"`
}

type CredentialResponse struct {
	ID          int64  `json:"id"`
	DUI         string `json:"dui"`
	Usuario     string `json:"usuario"`
	TipoUsuario string `json:"tipoUsuario,omitempty"`
}

func NewCredentialResponse(c domain.Credential) CredentialResponse {
	return CredentialResponse{ID: c.ID, DUI: c.DUI, Usuario: c.Usuario, TipoUsuario: string(c.Role)}
}

func NewCredentialResponses(in []domain.Credential) []CredentialResponse {
	out := make([]CredentialResponse, 0, len(in))
	for _, c := range in {
		out = append(out, NewCredentialResponse(c))
	}
	return out
}

func (r CredentialResponse) ToDomain() domain.Credential {
	return domain.Credential{ID: r.ID, DUI: r.DUI, Usuario: r.Usuario, Role: domain.Role(r.TipoUsuario)}
}

func CredentialsToDomain(in []CredentialResponse) []domain.Credential {
	out := make([]domain.Credential, 0, len(in))
	for _, r := range in {
		out = append(out, r.ToDomain())
	}
	return out
}

type CreateCredentialRequest struct {
	DUI         string `json:"dui" validate:"required,dui"`
	Usuario     string `json:"usuario" validate:"required,max=25,correo"`
	Contrasena  string `json:"contrasena" validate:"required,max=10"`
	TipoUsuario string `json:"tipoUsuario,omitempty" validate:"omitempty,oneof=cliente administrador"`
}

func (r CreateCredentialRequest) Validate() error {
	return validateStruct(r)
}

// RoleOrDefault returns the requested role, cliente when none was given.
func (r CreateCredentialRequest) RoleOrDefault() domain.Role {
	if strings.TrimSpace(r.TipoUsuario) == "" {
		return domain.RoleCliente
	}
	return domain.Role(r.TipoUsuario)
}

// UpdateCredentialRequest is a partial update; nil fields are left unchanged.
type UpdateCredentialRequest struct {
	DUI         *string `json:"dui,omitempty" validate:"omitempty,dui"`
	Usuario     *string `json:"usuario,omitempty" validate:"omitempty,max=25,correo"`
	Contrasena  *string `json:"contrasena,omitempty" validate:"omitempty,max=10"`
	TipoUsuario *string `json:"tipoUsuario,omitempty" validate:"omitempty,oneof=cliente administrador"`
}

func (r UpdateCredentialRequest) Validate() error {
	return validateStruct(r)
}

func (r UpdateCredentialRequest) Empty() bool {
	return r.DUI == nil && r.Usuario == nil && r.Contrasena == nil && r.TipoUsuario == nil
}
