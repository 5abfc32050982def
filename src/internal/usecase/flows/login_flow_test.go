package flows

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/api-sage/banco-portal/src/internal/adapter/api"
	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLoginFlow(t *testing.T, login func(context.Context, string, string) (models.LoginResponse, error)) (*LoginFlow, *stubCredentialsAPI, *[]string) {
	t.Helper()
	logger.Use(zap.NewNop())

	stub := &stubCredentialsAPI{loginF: login}
	var routes []string
	flow := NewLoginFlow(stub, NavigatorFunc(func(route string) {
		routes = append(routes, route)
	}))
	return flow, stub, &routes
}

func clienteLogin(context.Context, string, string) (models.LoginResponse, error) {
	return models.LoginResponse{Success: true, TipoUsuario: "cliente", DUI: "12345678-9", Token: "tok"}, nil
}

func TestLoginInvalidFormNeverCallsAPI(t *testing.T) {
	cases := []struct {
		name       string
		correo     string
		contrasena string
		field      string
		message    string
	}{
		{"empty correo", "", "123456", FieldCorreo, "El correo es obligatorio."},
		{"malformed correo", "ejemplo", "123456", FieldCorreo, "Ingrese un correo válido."},
		{"long correo", strings.Repeat("a", 20) + "@ejemplo.com", "123456", FieldCorreo, "El correo no puede exceder 25 caracteres."},
		{"empty contrasena", "ejemplo@ejemplo.com", "", FieldContrasena, "La contraseña es obligatoria."},
		{"long contrasena", "ejemplo@ejemplo.com", "12345678901", FieldContrasena, "La contraseña no puede exceder 10 caracteres."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow, stub, routes := newLoginFlow(t, clienteLogin)
			flow.SetCorreo(tc.correo)
			flow.SetContrasena(tc.contrasena)

			_, err := flow.Submit(context.Background())
			require.ErrorIs(t, err, ErrInvalidInput)

			var fieldErrs models.ValidationErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tc.message, fieldErrs[tc.field])

			assert.Zero(t, stub.Calls())
			assert.Empty(t, *routes)
			assert.Equal(t, tc.message, flow.Snapshot().FieldErrors[tc.field])
		})
	}
}

func TestLoginSubmitMarksAllFieldsTouched(t *testing.T) {
	flow, _, _ := newLoginFlow(t, clienteLogin)
	assert.Empty(t, flow.Snapshot().FieldErrors)

	_, err := flow.Submit(context.Background())
	require.ErrorIs(t, err, ErrInvalidInput)

	view := flow.Snapshot()
	assert.True(t, view.Touched[FieldCorreo])
	assert.True(t, view.Touched[FieldContrasena])
	assert.Len(t, view.FieldErrors, 2)
}

func TestLoginFieldErrorsOnlyForTouchedFields(t *testing.T) {
	flow, _, _ := newLoginFlow(t, clienteLogin)
	flow.SetCorreo("no-es-correo")

	view := flow.Snapshot()
	assert.Equal(t, "Ingrese un correo válido.", view.FieldErrors[FieldCorreo])
	_, shown := view.FieldErrors[FieldContrasena]
	assert.False(t, shown)
}

func TestLoginClienteNavigates(t *testing.T) {
	var gotCorreo, gotContrasena string
	flow, stub, routes := newLoginFlow(t, func(_ context.Context, correo, contrasena string) (models.LoginResponse, error) {
		gotCorreo, gotContrasena = correo, contrasena
		return clienteLogin(context.Background(), correo, contrasena)
	})
	flow.SetCorreo("ejemplo@ejemplo.com")
	flow.SetContrasena("123456")

	session, err := flow.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stub.Calls())
	assert.Equal(t, "ejemplo@ejemplo.com", gotCorreo)
	assert.Equal(t, "123456", gotContrasena)
	assert.Equal(t, []string{RouteCliente}, *routes)
	assert.Equal(t, domain.Session{DUI: "12345678-9", Usuario: "ejemplo@ejemplo.com", Role: domain.RoleCliente, Token: "tok"}, session)

	view := flow.Snapshot()
	assert.Empty(t, view.Correo)
	assert.Empty(t, view.Contrasena)
	assert.Empty(t, view.Message)
	assert.False(t, view.Submitting)
	assert.Equal(t, RouteCliente, view.Route)

	stored, ok := flow.Session()
	require.True(t, ok)
	assert.Equal(t, session, stored)
}

func TestLoginOtherRoleStaysOnLogin(t *testing.T) {
	flow, _, routes := newLoginFlow(t, func(context.Context, string, string) (models.LoginResponse, error) {
		return models.LoginResponse{Success: true, TipoUsuario: "administrador", DUI: "00000000-1"}, nil
	})
	flow.SetCorreo("admin@banco.com")
	flow.SetContrasena("123456")

	session, err := flow.Submit(context.Background())
	require.ErrorIs(t, err, ErrUnhandledRole)
	assert.Equal(t, domain.RoleAdministrador, session.Role)
	assert.Empty(t, *routes)

	view := flow.Snapshot()
	assert.Equal(t, RouteLogin, view.Route)
	assert.Empty(t, view.Correo)
}

func TestLoginRejectedKeepsInput(t *testing.T) {
	flow, _, routes := newLoginFlow(t, func(context.Context, string, string) (models.LoginResponse, error) {
		return models.LoginResponse{Success: false, Message: "Credenciales inválidas"}, nil
	})
	flow.SetCorreo("ejemplo@ejemplo.com")
	flow.SetContrasena("mala")

	_, err := flow.Submit(context.Background())
	require.ErrorIs(t, err, ErrRejected)
	assert.Empty(t, *routes)

	view := flow.Snapshot()
	assert.Equal(t, "Credenciales inválidas", view.Message)
	assert.Equal(t, "ejemplo@ejemplo.com", view.Correo)
	assert.Equal(t, "mala", view.Contrasena)
}

func TestLoginRejectedWithoutMessage(t *testing.T) {
	flow, _, _ := newLoginFlow(t, func(context.Context, string, string) (models.LoginResponse, error) {
		return models.LoginResponse{Success: false}, nil
	})
	flow.SetCorreo("ejemplo@ejemplo.com")
	flow.SetContrasena("123456")

	_, err := flow.Submit(context.Background())
	require.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "Login fallido", flow.Snapshot().Message)
}

func TestLoginTransportFailure(t *testing.T) {
	transportErr := &api.Error{StatusCode: 500, Message: "Http failure response for http://x/api/credenciales/login: 500 Internal Server Error"}
	flow, _, _ := newLoginFlow(t, func(context.Context, string, string) (models.LoginResponse, error) {
		return models.LoginResponse{}, transportErr
	})
	flow.SetCorreo("ejemplo@ejemplo.com")
	flow.SetContrasena("123456")

	_, err := flow.Submit(context.Background())
	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))

	view := flow.Snapshot()
	assert.Equal(t, "Error de conexión: "+transportErr.Message, view.Message)
	assert.Equal(t, "ejemplo@ejemplo.com", view.Correo)
	assert.False(t, view.Submitting)
}

func TestLoginClienteWithoutDUI(t *testing.T) {
	flow, _, routes := newLoginFlow(t, func(context.Context, string, string) (models.LoginResponse, error) {
		return models.LoginResponse{Success: true, TipoUsuario: "cliente"}, nil
	})
	flow.SetCorreo("ejemplo@ejemplo.com")
	flow.SetContrasena("123456")

	_, err := flow.Submit(context.Background())
	require.ErrorIs(t, err, ErrRejected)
	assert.Empty(t, *routes)
	assert.Equal(t, "No se pudo determinar el cliente autenticado.", flow.Snapshot().Message)

	_, ok := flow.Session()
	assert.False(t, ok)
}

func TestLoginNilNavigator(t *testing.T) {
	logger.Use(zap.NewNop())
	flow := NewLoginFlow(&stubCredentialsAPI{loginF: clienteLogin}, nil)
	flow.SetCorreo("ejemplo@ejemplo.com")
	flow.SetContrasena("123456")

	_, err := flow.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RouteCliente, flow.Snapshot().Route)
}
