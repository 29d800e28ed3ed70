package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rajnish018/portfolio-admin-backend/auth"
	"github.com/rajnish018/portfolio-admin-backend/config"
	"github.com/rajnish018/portfolio-admin-backend/database"
	"github.com/rajnish018/portfolio-admin-backend/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := config.GetStringSlice(router.config, "ACCEPTED_ORIGINS")
	if len(acceptedOrigins) == 0 {
		acceptedOrigins = []string{"*"}
	}
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	secret := []byte(config.GetString(router.config, "JWT_SECRET", ""))
	if len(secret) == 0 {
		log.Warn().Msg("JWT_SECRET is not set; admin logins will fail")
	}
	tokenTTL := time.Duration(config.GetInt(router.config, "JWT_EXPIRATION_HOURS", 0)) * time.Hour
	if tokenTTL <= 0 {
		tokenTTL = auth.DefaultTokenTTL
	}

	images, err := services.NewImageStore(context.Background(), router.config)
	if err != nil {
		log.Warn().Msgf("Image store unavailable, uploads disabled: %v", err)
		images = nil
	}

	notifier := services.NewContactNotifier(router.config)
	if !notifier.Enabled() {
		log.Info().Msg("Contact notification emails are disabled")
	}

	handlers := initializeHandlers(database, images, notifier, secret, tokenTTL)

	authMiddleware := newAuthMiddleware(secret)

	setupRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
