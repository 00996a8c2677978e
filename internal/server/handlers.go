package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"rainbot/internal/database"
	"rainbot/internal/logging"
)

// TaskResponse is the JSON payload of /run-tweet-task
type TaskResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	City    string `json:"city,omitempty"`
}

// handleHome handles the liveness page
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	// Only handle exact path match
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	mode := "TEST MODE"
	if s.runner.Live() {
		mode = "LIVE MODE"
	}

	lastCity := "N/A"
	lastReset := "N/A"
	state, err := database.GetBotState()
	if err != nil {
		logging.Error("Failed to load bot state for home page: %v", err)
	} else {
		if state.LastPostedCity != "" {
			lastCity = state.LastPostedCity
		}
		if state.HasReset {
			lastReset = state.LastCycleReset.Format("2006-01-02T15:04:05Z")
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Weather Tweet Bot is alive! Current mode: %s. Last posted city: %s. Last cycle reset (UTC): %s",
		mode, lastCity, lastReset)
}

// handleHealthz handles the health check endpoint
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

// handleRunTweetTask triggers one weather tweet run. Both GET and POST
// are accepted so any scheduler can call it.
func (s *Server) handleRunTweetTask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	logging.Info("'/run-tweet-task' endpoint triggered by a request.")

	result, err := s.runner.Run(r.Context())
	if err != nil {
		logging.Error("Tweet task failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, TaskResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, TaskResponse{
		Status:  "success",
		Message: fmt.Sprintf("Tweet task executed successfully for %s.", result.City),
		City:    result.City,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("Failed to encode response: %v", err)
	}
}
