package contexthelpers

import (
	"context"
	"net/http"
)

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, currentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), csrfTokenContextKey, csrfToken))
}

func SetCSPNonce(r *http.Request, nonce string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), cspNonceContextKey, nonce))
}

func SetTableID(r *http.Request, tableID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), tableIDContextKey, tableID))
}
