package main

import (
	"encoding/json"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	maxListLimit    = 100
	maxSessionBytes = 1 << 20
)

// listSessions responds with the most recently played games.
func (app *application) listSessions(w http.ResponseWriter, r *http.Request) {
	limit := repositories.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, maxListLimit)
	}
	sessions, err := app.sessions.List(r.Context(), limit)
	if err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "list sessions", errors.SlogError(err))
		app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch game sessions"})
		return
	}
	if sessions == nil {
		sessions = []models.GameSession{}
	}
	app.writeJSON(w, r, http.StatusOK, sessions)
}

// createSession stores a game summary posted by an external client.
func (app *application) createSession(w http.ResponseWriter, r *http.Request) {
	var (
		session models.NewGameSession
		stored  *models.GameSession
		err     error
	)
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSessionBytes))
	if err = decoder.Decode(&session); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Invalid game session data"})
		return
	}
	if stored, err = app.sessions.Create(r.Context(), session); err != nil {
		if errors.Is(err, models.ErrInvalidSession) {
			app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "Invalid game session data"})
			return
		}
		app.logger.LogAttrs(r.Context(), slog.LevelError, "create session", errors.SlogError(err))
		app.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "Failed to save game session"})
		return
	}
	app.writeJSON(w, r, http.StatusCreated, stored)
}
