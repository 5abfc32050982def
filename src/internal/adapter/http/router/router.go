package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIPrefix is where the stand-in mounts the accounts and credentials
// resources, matching the default client base URL.
const APIPrefix = "/api"

type RouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

func New(
	accountController RouteRegistrar,
	credentialController RouteRegistrar,
	adminAuth func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	registerSwaggerRoutes(r)

	r.Route(APIPrefix, func(api chi.Router) {
		if accountController != nil {
			accountController.RegisterRoutes(api, nil)
		}
		if credentialController != nil {
			credentialController.RegisterRoutes(api, adminAuth)
		}
	})

	return r
}
