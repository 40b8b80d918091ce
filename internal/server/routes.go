package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// WebSocket method channel
	mux.HandleFunc("/ws", s.app.ChannelSocket.HandleWebSocket)

	// API routes - Method channel over HTTP
	mux.HandleFunc("/api/channel/", s.app.ChannelHandler.CallHandler) // POST /{method}

	// API routes - Status
	mux.HandleFunc("/api/status", s.app.StatusHandler.GetStatusHandler)
	mux.HandleFunc("/api/health", s.app.StatusHandler.HealthHandler)

	// API routes - Key storage
	mux.HandleFunc("/api/keys", s.app.KVHandler.ListKVHandler) // GET - masked list
	mux.HandleFunc("/api/keys/", s.app.KVHandler.KeyHandler)   // GET/PUT/DELETE /{key}

	// 404 handler for unmatched API routes
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.app.Logger.Debug().Str("path", r.URL.Path).Msg("Route not found")
	http.Error(w, "Not found", http.StatusNotFound)
}
