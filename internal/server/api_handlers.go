package server

import (
	"net/http"
	"strconv"

	"rainbot/internal/database"
	"rainbot/internal/logging"
	"rainbot/internal/system"
	"rainbot/internal/version"
)

// StatusResponse is the JSON payload of /api/v1/status
type StatusResponse struct {
	Version  version.Info      `json:"version"`
	Mode     string            `json:"mode"`
	Vitals   *system.Vitals    `json:"vitals,omitempty"`
	LastPost *database.PostLog `json:"last_post,omitempty"`
}

// handleAPIStatus handles GET /api/v1/status
func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	mode := "test"
	if s.runner.Live() {
		mode = "live"
	}

	response := StatusResponse{
		Version: s.version,
		Mode:    mode,
	}

	vitals, err := system.GetVitals()
	if err != nil {
		logging.Error("Failed to get system vitals: %v", err)
		// Vitals are informational; report status without them
	} else {
		response.Vitals = vitals
	}

	lastPost, err := database.GetLatestPost()
	if err != nil {
		logging.Error("Failed to get latest post: %v", err)
	} else {
		response.LastPost = lastPost
	}

	writeJSON(w, http.StatusOK, response)
}

// handleAPIPosts handles GET /api/v1/posts
func (s *Server) handleAPIPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}

	posts, err := database.GetRecentPosts(limit)
	if err != nil {
		logging.Error("Failed to get recent posts: %v", err)
		http.Error(w, "Failed to get recent posts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}
