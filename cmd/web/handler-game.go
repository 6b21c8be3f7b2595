package main

import (
	"github.com/jamesungureanu/LifeTune/internal/contexthelpers"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/game"
	"github.com/jamesungureanu/LifeTune/internal/tables"
	"log/slog"
	"net/http"
)

type gameTemplateData struct {
	BaseTemplateData
	View *game.View
}

// game renders the board of the browser's table, or an invitation to start one.
func (app *application) game(w http.ResponseWriter, r *http.Request) {
	data := gameTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		View:             nil,
	}
	if id := contexthelpers.TableID(r.Context()); id != "" {
		if v, ok := app.tables.View(id); ok {
			data.View = &v
		}
	}
	partial := ""
	if app.htmx.NewHandler(w, r).Request().HxRequest {
		partial = "board"
	}
	app.render(w, r, http.StatusOK, "game", partial, data)
}

// newGame opens a table for the browser or restarts the one it already has.
func (app *application) newGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if id := contexthelpers.TableID(ctx); id != "" {
		err := app.tables.Reset(id)
		if err == nil {
			app.logger.LogAttrs(ctx, slog.LevelInfo, "restarted game")
			app.showBoard(w, r, id)
			return
		}
		if !errors.Is(err, tables.ErrNotFound) {
			app.serverError(w, r, errors.Wrap(err, "reset table"))
			return
		}
	}

	id, err := app.tables.Create()
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "create table"))
		return
	}
	if err = app.sessionManager.RenewToken(ctx); err != nil {
		app.serverError(w, r, errors.Wrap(err, "renew session token"))
		return
	}
	app.sessionManager.Put(ctx, string(tableIDSessionKey), id)
	r = contexthelpers.SetTableID(r, id)
	app.logger.LogAttrs(ctx, slog.LevelInfo, "opened table", slog.String("table_id", id))
	app.showBoard(w, r, id)
}

// gameAction applies one player input. Inputs the game declines leave the board as it was.
func (app *application) gameAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := contexthelpers.TableID(ctx)
	if id == "" {
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	action, err := game.ParseAction(r.PathValue("action"), r.PostForm.Get("value"))
	if err != nil {
		if errors.Is(err, game.ErrUnknownAction) {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		app.serverError(w, r, errors.Wrap(err, "parse action"))
		return
	}

	if _, err = app.tables.Apply(ctx, id, action); errors.Is(err, tables.ErrNotFound) {
		app.sessionManager.Remove(ctx, string(tableIDSessionKey))
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}
	app.showBoard(w, r, id)
}

// showBoard answers a game post. htmx requests get the board fragment, regular form posts are redirected so
// that reloading the page does not resubmit the input.
func (app *application) showBoard(w http.ResponseWriter, r *http.Request, id string) {
	if !app.htmx.NewHandler(w, r).Request().HxRequest {
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}
	v, ok := app.tables.View(id)
	if !ok {
		app.notFound(w, r)
		return
	}
	app.render(w, r, http.StatusOK, "game", "board", gameTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		View:             &v,
	})
}
