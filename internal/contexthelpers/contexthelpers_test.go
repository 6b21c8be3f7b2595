package contexthelpers_test

import (
	"github.com/jamesungureanu/LifeTune/internal/contexthelpers"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSetters(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/game", nil)
	require.Empty(t, contexthelpers.TableID(r.Context()))
	require.Empty(t, contexthelpers.CSPNonce(r.Context()))

	r = contexthelpers.SetCurrentPath(r, "/game")
	r = contexthelpers.SetCSRFToken(r, "token")
	r = contexthelpers.SetCSPNonce(r, "nonce")
	r = contexthelpers.SetTableID(r, "table")

	ctx := r.Context()
	require.Equal(t, "/game", contexthelpers.CurrentPath(ctx))
	require.Equal(t, "token", contexthelpers.CSRFToken(ctx))
	require.Equal(t, "nonce", contexthelpers.CSPNonce(ctx))
	require.Equal(t, "table", contexthelpers.TableID(ctx))
}
