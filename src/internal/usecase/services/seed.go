package services

import (
	"context"
	"fmt"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/shopspring/decimal"
)

const (
	DemoClientDUI  = "12345678-9"
	DemoCorreo     = "ejemplo@ejemplo.com"
	DemoContrasena = "123456"
	DemoAdminDUI   = "00000000-1"
	DemoAdmin      = "admin@banco.com"
)

// SeedDemoData loads the client, credentials and accounts the stand-in API
// starts with.
func SeedDemoData(ctx context.Context, accounts *AccountService, credentials *CredentialService) error {
	for _, req := range []models.CreateCredentialRequest{
		{DUI: DemoClientDUI, Usuario: DemoCorreo, Contrasena: DemoContrasena},
		{DUI: DemoAdminDUI, Usuario: DemoAdmin, Contrasena: DemoContrasena, TipoUsuario: "administrador"},
	} {
		if _, err := credentials.Create(ctx, req); err != nil {
			return fmt.Errorf("seed credential %s: %w", req.Usuario, err)
		}
	}

	for _, req := range []models.CreateAccountRequest{
		{Numero: "0010001", Saldo: decimal.RequireFromString("1500.00")},
		{Numero: "0010002", Saldo: decimal.RequireFromString("250.75")},
	} {
		if _, err := accounts.Create(ctx, DemoClientDUI, req); err != nil {
			return fmt.Errorf("seed account %s: %w", req.Numero, err)
		}
	}
	return nil
}
