package main

import (
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"net/http"
)

type homeTemplateData struct {
	BaseTemplateData
	Sessions []models.GameSession
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	sessions, err := app.sessions.List(r.Context(), repositories.DefaultListLimit)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list sessions"))
		return
	}
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Sessions:         sessions,
	}

	app.render(w, r, http.StatusOK, "home", "", data)
}
