package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spiderxog/hub/internal/api/handler"
	"github.com/spiderxog/hub/internal/api/middleware"
	"github.com/spiderxog/hub/internal/api/sse"
	"github.com/spiderxog/hub/internal/services/chat"
	"github.com/spiderxog/hub/internal/services/dashboard"
	"github.com/spiderxog/hub/internal/services/ledger"
	"github.com/spiderxog/hub/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	SessionManager   *session.Manager
	Ledger           *ledger.Service
	ChatLog          *chat.Log
	DashboardService *dashboard.Service
	Hub              *sse.Hub
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.SessionManager)
	announcementHandler := handler.NewAnnouncementHandler(cfg.Ledger)
	chatHandler := handler.NewChatHandler(cfg.ChatLog)
	adminHandler := handler.NewAdminHandler(cfg.DashboardService)
	eventsHandler := handler.NewEventsHandler(cfg.Hub)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.SessionManager)
	adminMiddleware := middleware.RequireAdmin()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (register/login need no session)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authed := api.PathPrefix("/auth").Subrouter()
	authed.Use(authMiddleware)
	authed.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Announcement routes (all require a session; mutation is admin only)
	announcements := api.PathPrefix("/announcements").Subrouter()
	announcements.Use(authMiddleware)
	announcements.HandleFunc("", announcementHandler.List).Methods(http.MethodGet)
	announcements.HandleFunc("/{id}/vote", announcementHandler.Vote).Methods(http.MethodPost)

	announcementsAdmin := api.PathPrefix("/announcements").Subrouter()
	announcementsAdmin.Use(authMiddleware, adminMiddleware)
	announcementsAdmin.HandleFunc("", announcementHandler.Create).Methods(http.MethodPost)
	announcementsAdmin.HandleFunc("/{id}", announcementHandler.Delete).Methods(http.MethodDelete)

	// Chat routes
	chatRoutes := api.PathPrefix("/chat").Subrouter()
	chatRoutes.Use(authMiddleware)
	chatRoutes.HandleFunc("", chatHandler.List).Methods(http.MethodGet)
	chatRoutes.HandleFunc("", chatHandler.Send).Methods(http.MethodPost)

	// Admin dashboard routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMiddleware, adminMiddleware)
	admin.HandleFunc("/overview", adminHandler.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/members", adminHandler.Members).Methods(http.MethodGet)

	// Change event stream
	eventRoutes := api.PathPrefix("/events").Subrouter()
	eventRoutes.Use(authMiddleware)
	eventRoutes.HandleFunc("", eventsHandler.Stream).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
