package main

import (
	"context"
	"encoding/json"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type failingStore struct{}

func (failingStore) Create(context.Context, models.NewGameSession) (*models.GameSession, error) {
	return nil, errors.New("disk full")
}

func (failingStore) List(context.Context, int) ([]models.GameSession, error) {
	return nil, errors.New("disk full")
}

func validSession() models.NewGameSession {
	return models.NewGameSession{
		Players: []models.PlayerSummary{{
			Name:             "Player 1",
			Job:              "Blue Collar",
			Goal:             "Tycoon",
			GoalMet:          false,
			Insurance:        true,
			Money:            1500,
			Investments:      []string{"Bank Deposit"},
			Rolls:            []int{4},
			LiquidationValue: decimal.NewFromInt(200),
			GoalBonus:        decimal.Zero,
			FinalMoney:       decimal.NewFromInt(1700),
			Rank:             1,
		}},
		Winner:   "Player 1",
		PlayedAt: "2026-10-16T12:00:00Z",
	}
}

func TestSessionsAPI(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	server := startTestServer(t, testConfig())
	client := server.Client()

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"valid", validSession(), http.StatusCreated},
		{"no players", models.NewGameSession{Players: nil, Winner: "x", PlayedAt: "2026-10-16T12:00:00Z"},
			http.StatusBadRequest},
		{"bad timestamp", models.NewGameSession{Players: validSession().Players, Winner: "Player 1",
			PlayedAt: "yesterday"}, http.StatusBadRequest},
		{"not an object", []int{1, 2, 3}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp, err := client.PostJSON(ctx, "/api/sessions", tt.body)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.status, resp.StatusCode, tt.name)
		if tt.status == http.StatusCreated {
			var stored models.GameSession
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
			require.Positive(t, stored.ID)
			require.Equal(t, "Player 1", stored.Winner)
			require.True(t, decimal.NewFromInt(1700).Equal(stored.Players[0].FinalMoney))
		}
		_ = resp.Body.Close()
	}

	var sessions []models.GameSession
	require.NoError(t, client.GetJSON(ctx, "/api/sessions?limit=5", &sessions))
	require.Len(t, sessions, 1)
	require.Equal(t, []int{4}, sessions[0].Players[0].Rolls)

	resp, err := client.Get(ctx, "/api/sessions?limit=zero")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSessionsAPI_storageFailure(t *testing.T) {
	t.Parallel()
	app := &application{ //nolint:exhaustruct // only the session endpoints are exercised
		logger:   testhelpers.NewTestLogger(t),
		sessions: failingStore{},
	}

	body, err := json.Marshal(validSession())
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	app.createSession(rr, httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(string(body))))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.JSONEq(t, `{"error":"Failed to save game session"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	app.listSessions(rr, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	got, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Failed to fetch game sessions"}`, string(got))
}

func TestHealthyAndMetrics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	server := startTestServer(t, testConfig())
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/")
	require.NoError(t, err)
	require.Equal(t, "LIFEtune", doc.Find(".intro h1").Text())
	require.Equal(t, 1, doc.Find(".recent-sessions .empty").Length())

	_, err = client.SubmitForm(ctx, "/", "/game/new", nil)
	require.NoError(t, err)

	resp, err := client.Get(ctx, "/metrics")
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "lifetune_active_tables 1")
}
