package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizePayloadMasksSecrets(t *testing.T) {
	payload := map[string]any{
		"correo":     "ejemplo@ejemplo.com",
		"contrasena": "123456",
		"nested": map[string]any{
			"Authorization": "Bearer abc",
			"items":         []any{map[string]any{"token": "t"}},
		},
	}

	got, ok := SanitizePayload(payload).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ejemplo@ejemplo.com", got["correo"])
	assert.Equal(t, "******", got["contrasena"])

	nested := got["nested"].(map[string]any)
	assert.Equal(t, "******", nested["Authorization"])
	item := nested["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "******", item["token"])
}

func TestSanitizePayloadUnmarshalable(t *testing.T) {
	assert.Equal(t, "<unavailable>", SanitizePayload(make(chan int)))
}

func TestLogWritesSanitizedFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))
	t.Cleanup(func() { Use(zap.NewNop()) })

	Info("login request", Fields{"correo": "a@b.co", "contrasena": "x"})
	Error("login failed", errors.New("boom"), Fields{"status": 500})

	entries := logs.All()
	require.Len(t, entries, 2)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "a@b.co", ctx["correo"])
	assert.Equal(t, "******", ctx["contrasena"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, zapcore.WarnLevel, level.Level())
	require.NoError(t, SetLevel("info"))

	assert.Error(t, SetLevel("loud"))
}
