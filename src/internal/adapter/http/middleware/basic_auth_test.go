package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBasicAuth_AllowsValidCredentials(t *testing.T) {
	mw := BasicAuth("portal", "clave001")

	req := httptest.NewRequest(http.MethodGet, "/credenciales", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("portal:clave001")))

	rr := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBasicAuth_RejectsInvalidCredentials(t *testing.T) {
	mw := BasicAuth("portal", "clave001")

	req := httptest.NewRequest(http.MethodGet, "/credenciales", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("portal:otra")))

	rr := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "no autorizado", body.Message)
}

func TestBasicAuth_MissingConfiguration(t *testing.T) {
	rr := httptest.NewRecorder()
	BasicAuth("", "")(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/credenciales", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
