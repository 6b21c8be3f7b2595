package main

import (
	"context"
	"github.com/jamesungureanu/LifeTune/internal/e2etest"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/logging"
	"log/slog"
	"net/url"
	"os"
	"time"
)

// TestGameSetup opens a table and seats two players, which exercises sessions, CSRF and the game engine.
func TestGameSetup(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	doc, err := client.SubmitForm(ctx, "/", "/game/new", nil)
	if err != nil {
		return errors.Wrap(err, "open table")
	}
	if doc, err = client.Submit(ctx, doc, "/game/players", url.Values{"value": {"2"}}); err != nil {
		return errors.Wrap(err, "choose player count")
	}
	for range 2 {
		if doc, err = client.Submit(ctx, doc, "/game/job", nil); err != nil {
			return errors.Wrap(err, "choose job")
		}
	}
	if doc.Find("form[action='/game/collect']").Length() != 1 {
		return errors.New("game did not start")
	}
	var sessions []any
	if err = client.GetJSON(ctx, "/api/sessions", &sessions); err != nil {
		return errors.Wrap(err, "list sessions")
	}
	return nil
}

func main() {
	logger := logging.New(os.Stdout, slog.LevelDebug, false)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		baseURL  = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", baseURL))

	if client, err = e2etest.NewClient(baseURL); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestGameSetup(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing game setup", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
