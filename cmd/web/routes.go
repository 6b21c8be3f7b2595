package main

import (
	"github.com/donseba/go-htmx/middleware"
	"github.com/jamesungureanu/LifeTune/ui"
	"github.com/justinas/alice"
	"io/fs"
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	static, err := fs.Sub(ui.Files, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", cacheForeverHeaders(http.StripPrefix("/static", http.FileServerFS(static))))

	session := alice.New(app.sessionManager.LoadAndSave)
	page := session.Append(noSurf, commonContext, middleware.MiddleWare, app.seat)

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("GET /api/sessions", app.listSessions)
	mux.HandleFunc("POST /api/sessions", app.createSession)
	mux.Handle("GET /metrics", app.metrics.Handler())

	mux.Handle("GET /{$}", page.ThenFunc(app.home))
	mux.Handle("GET /game", page.ThenFunc(app.game))
	mux.Handle("POST /game/new", page.ThenFunc(app.newGame))
	mux.Handle("POST /game/{action}", page.ThenFunc(app.gameAction))

	standard := alice.New(app.recoverPanic, app.logRequest, secureHeaders)
	return standard.Then(timeoutHandler(mux, defaultTimeout))
}
