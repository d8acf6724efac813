package handler

import (
	"net/http"

	"doc-processor/internal/config"
	"doc-processor/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api").Subrouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-processor"}`))
	}).Methods("GET")

	// Initialize handlers
	authHandler := NewAuthHandler(container.AuthService, container.Logger)
	documentHandler := NewDocumentHandler(
		container.ProcessingService,
		container.PanRepository,
		container.VoterIDRepository,
		container.PassportRepository,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)
	logHandler := NewLogHandler(container.DocumentLogRepository, container.Logger)

	// Public auth routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")

	// Protected routes (require authentication); role checks are per route
	protected := api.PathPrefix("").Subrouter()
	protected.Use(AuthMiddleware(container.AuthService, container.Logger))

	superadminOnly := RequireRoles(domain.RoleSuperAdmin)
	uploaders := RequireRoles(domain.RoleUser, domain.RoleAdmin)
	adminOnly := RequireRoles(domain.RoleAdmin)

	protected.Handle("/auth/create-user", superadminOnly(http.HandlerFunc(authHandler.CreateUser))).Methods("POST")
	protected.Handle("/documents/upload", uploaders(http.HandlerFunc(documentHandler.Upload))).Methods("POST")
	protected.Handle("/documents/pan/{id}", adminOnly(http.HandlerFunc(documentHandler.GetPanByID))).Methods("GET")
	protected.Handle("/documents/voter-id/{id}", adminOnly(http.HandlerFunc(documentHandler.GetVoterIDByID))).Methods("GET")
	protected.Handle("/documents/passport/{id}", adminOnly(http.HandlerFunc(documentHandler.GetPassportByID))).Methods("GET")
	protected.Handle("/logs", adminOnly(http.HandlerFunc(logHandler.List))).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
		MaxAge: 3600,
	})

	return c.Handler(router)
}
