package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DenysFlnk/playerroster/internal/api/handler"
	"github.com/DenysFlnk/playerroster/internal/middleware"
	"github.com/DenysFlnk/playerroster/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	PlayerService *player.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Player routes. Count must register before the {id} routes so
	// "count" is not captured as an id.
	r.HandleFunc("/players/count", playerHandler.Count).Methods(http.MethodGet)
	r.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPost)
	r.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
