package main

import (
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"net/http"
	"time"
)

type sessionKey string

// tableIDSessionKey binds a browser to the table it plays on.
const tableIDSessionKey = sessionKey("tableID")

func newSessionManager(dbs *sqlite.Database, lifetime time.Duration) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite.DB, 24*time.Hour) //nolint:mnd // daily
	sessionManager.Lifetime = lifetime
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = true
	return sessionManager
}
