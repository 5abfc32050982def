package standin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	NewSaldo *float64        `json:"newSaldo"`
}

func newServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	logger.Use(zap.NewNop())
	opts.Seed = true

	handler, err := NewHandler(context.Background(), opts)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&env)
	}
	return resp, env
}

func TestListClientAccounts(t *testing.T) {
	srv := newServer(t, Options{})

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/cuentas/cliente/12345678-9", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var accounts []struct {
		Numero string  `json:"numero"`
		Saldo  float64 `json:"saldo"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &accounts))
	require.Len(t, accounts, 2)
	assert.Equal(t, 1500.0, accounts[0].Saldo)
}

func TestListUnknownClient(t *testing.T) {
	srv := newServer(t, Options{})

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/cuentas/cliente/99999999-9", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.Equal(t, "cliente no encontrado", env.Message)
}

func TestDebitReportsNewSaldo(t *testing.T) {
	srv := newServer(t, Options{})

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/api/cuentas/cliente/12345678-9/retirarefectivo",
		map[string]any{"numero": "0010002", "monto": 50.75})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, env.NewSaldo)
	assert.Equal(t, 200.0, *env.NewSaldo)

	resp, env = doJSON(t, http.MethodPost, srv.URL+"/api/cuentas/cliente/12345678-9/retirarefectivo",
		map[string]any{"numero": "0010002", "monto": 500})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "saldo insuficiente", env.Message)
}

func TestCreateAndDeleteAccount(t *testing.T) {
	srv := newServer(t, Options{})

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/cuentas/cliente/12345678-9",
		map[string]any{"numero": "0010009", "saldo": 5})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cuentas/cliente/12345678-9",
		map[string]any{"numero": "0010009", "saldo": 5})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/cuentas/cliente/12345678-9/0010009", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	srv := newServer(t, Options{})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/credenciales/login",
		bytes.NewBufferString(`{"correo":"ejemplo@ejemplo.com","contrasena":"123456"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Success     bool   `json:"success"`
		TipoUsuario string `json:"tipoUsuario"`
		DUI         string `json:"dui"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "cliente", body.TipoUsuario)
	assert.Equal(t, "12345678-9", body.DUI)
}

func TestCredentialAdminRequiresChannelAuth(t *testing.T) {
	srv := newServer(t, Options{ChannelID: "portal", ChannelKey: "clave001"})

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/credenciales", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/credenciales", nil)
	require.NoError(t, err)
	req.SetBasicAuth("portal", "clave001")
	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	assert.Equal(t, http.StatusOK, authed.StatusCode)
}

func TestSwaggerServed(t *testing.T) {
	srv := newServer(t, Options{})

	resp, err := http.Get(srv.URL + "/swagger/openapi.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}
