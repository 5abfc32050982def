package flows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/api-sage/banco-portal/src/internal/adapter/api"
	"github.com/api-sage/banco-portal/src/internal/adapter/http/models"
	"github.com/api-sage/banco-portal/src/internal/domain"
	"github.com/api-sage/banco-portal/src/internal/logger"
)

const (
	FieldCorreo     = "correo"
	FieldContrasena = "contrasena"
)

const (
	loginFailedMessage    = "Login fallido"
	connectionErrorPrefix = "Error de conexión: "
	missingDUIMessage     = "No se pudo determinar el cliente autenticado."
)

type CredentialsAPI interface {
	Login(ctx context.Context, correo string, contrasena string) (models.LoginResponse, error)
}

// LoginView is a copy of the login screen state.
type LoginView struct {
	Correo     string
	Contrasena string
	Touched    map[string]bool
	// FieldErrors only lists touched fields.
	FieldErrors map[string]string
	Submitting  bool
	Message     string
	Route       string
}

type LoginFlow struct {
	api CredentialsAPI
	nav Navigator

	mu         sync.Mutex
	correo     string
	contrasena string
	touched    map[string]bool
	submitting bool
	message    string
	route      string
	session    *domain.Session
}

func NewLoginFlow(credentials CredentialsAPI, nav Navigator) *LoginFlow {
	if nav == nil {
		nav = noopNavigator{}
	}
	return &LoginFlow{
		api:     credentials,
		nav:     nav,
		touched: map[string]bool{},
		route:   RouteLogin,
	}
}

func (f *LoginFlow) SetCorreo(correo string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.correo = correo
	f.touched[FieldCorreo] = true
}

func (f *LoginFlow) SetContrasena(contrasena string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contrasena = contrasena
	f.touched[FieldContrasena] = true
}

func (f *LoginFlow) Snapshot() LoginView {
	f.mu.Lock()
	defer f.mu.Unlock()

	touched := make(map[string]bool, len(f.touched))
	for k, v := range f.touched {
		touched[k] = v
	}

	fieldErrors := map[string]string{}
	for field, msg := range f.validateLocked() {
		if f.touched[field] {
			fieldErrors[field] = msg
		}
	}

	return LoginView{
		Correo:      f.correo,
		Contrasena:  f.contrasena,
		Touched:     touched,
		FieldErrors: fieldErrors,
		Submitting:  f.submitting,
		Message:     f.message,
		Route:       f.route,
	}
}

// Session returns the session of the last successful login.
func (f *LoginFlow) Session() (domain.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return domain.Session{}, false
	}
	return *f.session, true
}

// Submit validates the form and, when it is valid, logs in. A successful
// login with a role other than cliente returns the session together with
// ErrUnhandledRole and stays on the login screen.
func (f *LoginFlow) Submit(ctx context.Context) (domain.Session, error) {
	f.mu.Lock()
	f.touched[FieldCorreo] = true
	f.touched[FieldContrasena] = true
	if fieldErrs := f.validateLocked(); len(fieldErrs) > 0 {
		f.mu.Unlock()
		return domain.Session{}, fmt.Errorf("%w: %w", ErrInvalidInput, fieldErrs)
	}
	correo, contrasena := f.correo, f.contrasena
	f.submitting = true
	f.message = ""
	f.mu.Unlock()

	logger.Info("login submitted", logger.Fields{"correo": correo})
	resp, err := f.api.Login(ctx, correo, contrasena)

	session, err := f.settle(correo, resp, err)
	if err != nil {
		return session, err
	}

	logger.Info("login succeeded", logger.Fields{"correo": correo, "dui": session.DUI})
	f.nav.Navigate(RouteCliente)
	return session, nil
}

// settle records the outcome of a login call. A nil error means the caller
// should navigate to the client screen.
func (f *LoginFlow) settle(correo string, resp models.LoginResponse, err error) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		f.message = connectionErrorPrefix + api.Detail(err)
		logger.Error("login request failed", err, logger.Fields{"correo": correo})
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	if !resp.Success {
		f.message = strings.TrimSpace(resp.Message)
		if f.message == "" {
			f.message = loginFailedMessage
		}
		logger.Warn("login rejected", logger.Fields{"correo": correo, "message": f.message})
		return domain.Session{}, fmt.Errorf("%w: %s", ErrRejected, f.message)
	}

	session := domain.Session{
		DUI:     strings.TrimSpace(resp.DUI),
		Usuario: correo,
		Role:    domain.Role(resp.TipoUsuario),
		Token:   resp.Token,
	}

	if session.Role == domain.RoleCliente {
		if err := session.Validate(); err != nil {
			f.message = missingDUIMessage
			logger.Warn("login without client dui", logger.Fields{"correo": correo})
			return domain.Session{}, fmt.Errorf("%w: %w", ErrRejected, err)
		}
	}

	f.correo = ""
	f.contrasena = ""
	f.touched = map[string]bool{}
	f.session = &session

	if session.Role != domain.RoleCliente {
		logger.Warn("login role has no screen", logger.Fields{"correo": correo, "tipoUsuario": resp.TipoUsuario})
		return session, fmt.Errorf("%w: %q", ErrUnhandledRole, resp.TipoUsuario)
	}

	f.route = RouteCliente
	return session, nil
}

func (f *LoginFlow) validateLocked() models.ValidationErrors {
	err := models.LoginRequest{Correo: f.correo, Contrasena: f.contrasena}.Validate()
	if err == nil {
		return nil
	}
	var fieldErrs models.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}
	return models.ValidationErrors{FieldCorreo: err.Error()}
}
