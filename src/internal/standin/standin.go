// Package standin assembles the in-memory version of the remote banking API
// used for local runs and tests.
package standin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/api-sage/banco-portal/src/internal/adapter/http/controller"
	"github.com/api-sage/banco-portal/src/internal/adapter/http/middleware"
	"github.com/api-sage/banco-portal/src/internal/adapter/http/router"
	"github.com/api-sage/banco-portal/src/internal/adapter/repository/memory"
	"github.com/api-sage/banco-portal/src/internal/usecase/services"
)

type Options struct {
	ChannelID  string
	ChannelKey string
	// Seed loads the demo client, credentials and accounts.
	Seed bool
}

func NewHandler(ctx context.Context, opts Options) (http.Handler, error) {
	accountRepo := memory.NewAccountRepository()
	credentialRepo := memory.NewCredentialRepository()

	accountService := services.NewAccountService(accountRepo)
	credentialService := services.NewCredentialService(credentialRepo, accountRepo)

	if opts.Seed {
		if err := services.SeedDemoData(ctx, accountService, credentialService); err != nil {
			return nil, fmt.Errorf("seed stand-in data: %w", err)
		}
	}

	var adminAuth func(http.Handler) http.Handler
	if opts.ChannelID != "" && opts.ChannelKey != "" {
		adminAuth = middleware.BasicAuth(opts.ChannelID, opts.ChannelKey)
	}

	return router.New(
		controller.NewAccountController(accountService),
		controller.NewCredentialController(credentialService),
		adminAuth,
	), nil
}
