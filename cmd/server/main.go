package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/auth"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/config"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/database"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/handlers"
	"github.com/tsv-bitzfeld/sommerfest-anmeldung/internal/notifier"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Notifiers
	var registrationNotifier notifier.Notifier
	if discordNotifier, err := notifier.NewDiscordNotifier(cfg); err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		registrationNotifier = discordNotifier
	}

	var mailer notifier.Mailer
	if smtpMailer, err := notifier.NewSMTPMailer(cfg); err != nil {
		log.Printf("Mailer not initialized: %v", err)
	} else {
		mailer = smtpMailer
	}

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg)
	pageHandler := handlers.NewPageHandler()
	registrationHandler := handlers.NewRegistrationHandler(db, registrationNotifier)
	adminHandler := handlers.NewAdminHandler(db, mailer)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handler := handlers.RegisterRoutes(r, cfg, authHandler, pageHandler, registrationHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), handler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
