// Package sessions inspects stored games.
package sessions

import (
	"context"
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/logging"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
)

var Group = &cobra.Group{
	ID:    "sessions",
	Title: "Stored games",
}

var Command = &cobra.Command{
	Use:     "sessions",
	GroupID: "sessions",
	Short:   "Inspect stored games",
}

func init() {
	list.Flags().String("sqlite-url", "./lifetune.sqlite3", "SQLite URL")
	list.Flags().Int("limit", repositories.DefaultListLimit, "number of games to show")
	Command.AddCommand(list)
}

var list = &cobra.Command{
	Use:   "list",
	Short: "List the most recent games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			sqliteURL string
			limit     int
			err       error
		)
		if sqliteURL, err = cmd.Flags().GetString("sqlite-url"); err != nil {
			return errors.Wrap(err, "sqlite-url flag")
		}
		if limit, err = cmd.Flags().GetInt("limit"); err != nil {
			return errors.Wrap(err, "limit flag")
		}
		return List(cmd.Context(), cmd.OutOrStdout(), sqliteURL, limit)
	},
}

// List prints the most recent games stored in the database at sqliteURL.
func List(ctx context.Context, w io.Writer, sqliteURL string, limit int) error {
	logger := logging.New(os.Stderr, slog.LevelWarn, false)
	dbs, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", sqliteURL))
	}
	defer func() {
		_ = dbs.Close()
	}()
	sessions, err := repositories.NewSessionRepository(dbs, logger).List(ctx, limit)
	if err != nil {
		return errors.Wrap(err, "list sessions")
	}
	return Print(w, sessions)
}

// Print writes one line per game.
func Print(w io.Writer, sessions []models.GameSession) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "no games stored yet")
		if err != nil {
			return errors.Wrap(err, "write")
		}
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // padding
	_, _ = fmt.Fprintln(tw, "ID\tPLAYED\tWINNER\tPLAYERS")
	for _, s := range sessions {
		players := make([]string, 0, len(s.Players))
		for _, p := range s.Players {
			players = append(players, fmt.Sprintf("%s $%s", p.Name, p.FinalMoney.StringFixed(0)))
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.PlayedAt, s.Winner, strings.Join(players, ", "))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush sessions")
	}
	return nil
}
