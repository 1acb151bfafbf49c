package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/auth"
	appconfig "github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/web"
)

func RegisterRoutes(r *chi.Mux, cfg *appconfig.Config, authHandler *auth.AuthHandler, pageHandler *PageHandler, registrationHandler *RegistrationHandler, adminHandler *AdminHandler) http.Handler {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Sommerfest Anmeldung", "1.0.0")
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/static/*", http.FileServer(http.FS(web.Static)))

	r.Get("/", pageHandler.HandleIndex)
	r.Get("/confirmation", pageHandler.HandleConfirmation)
	r.Get("/login", pageHandler.HandleLogin)
	r.Post("/login", authHandler.HandleLogin)
	r.Get("/logout", authHandler.HandleLogout)

	// The form controller posts its JSON submission to the page's own path.
	huma.Post(api, "/", registrationHandler.HandleSubmit)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(authHandler.AuthMiddleware)
		r.Get("/admin", adminHandler.HandleDashboard)
		r.Post("/confirm-mail/{id}", adminHandler.HandleConfirm)
		r.Post("/delete-entry/{id}", adminHandler.HandleDelete)
		r.Post("/delete-all-entries", adminHandler.HandleDeleteAll)
		r.Get("/export-excel", adminHandler.HandleExport)
	})

	// Every state-changing request passes the CSRF check: admin forms carry
	// the csrf_token field, the JSON submission the X-CSRFToken header.
	protect := csrf.Protect([]byte(cfg.CSRFKey),
		csrf.FieldName("csrf_token"),
		csrf.RequestHeader("X-CSRFToken"),
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
	)
	return protect(r)
}
