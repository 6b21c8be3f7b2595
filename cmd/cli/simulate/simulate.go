// Package simulate plays whole games with computer players.
package simulate

import (
	"context"
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/game"
	"github.com/jamesungureanu/LifeTune/internal/logging"
	"github.com/jamesungureanu/LifeTune/internal/random"
	"github.com/jamesungureanu/LifeTune/internal/repositories"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"github.com/spf13/cobra"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"
)

// maxInputs bounds a simulated game. A full game takes a few hundred inputs.
const maxInputs = 5000

var ErrStuck = errors.NewSentinel("simulation did not finish")

var Group = &cobra.Group{
	ID:    "simulate",
	Title: "Simulation",
}

func init() {
	Command.Flags().Int("players", 2, "number of players") //nolint:mnd // smallest table
	Command.Flags().Uint64("seed", 1, "random seed, the same seed replays the same game")
	Command.Flags().String("sqlite-url", "", "store the finished game in this database")
}

var Command = &cobra.Command{
	Use:     "simulate",
	GroupID: "simulate",
	Short:   "Play a game with computer players",
	Long:    `Plays a full game with a cautious computer strategy and prints the standings.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			players   int
			seed      uint64
			sqliteURL string
			g         *game.Game
			err       error
		)
		flags := cmd.Flags()
		if players, err = flags.GetInt("players"); err != nil {
			return errors.Wrap(err, "players flag")
		}
		if seed, err = flags.GetUint64("seed"); err != nil {
			return errors.Wrap(err, "seed flag")
		}
		if sqliteURL, err = flags.GetString("sqlite-url"); err != nil {
			return errors.Wrap(err, "sqlite-url flag")
		}

		if g, err = Play(catalog.Standard(), players, seed); err != nil {
			return err
		}
		result, _ := g.Result()
		if err = PrintResult(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		if sqliteURL == "" {
			return nil
		}
		return store(cmd.Context(), cmd.OutOrStdout(), sqliteURL, g)
	},
}

// Play runs a game to the end. The jobs are handed out in catalog order.
func Play(c *catalog.Catalog, players int, seed uint64) (*game.Game, error) {
	rng := random.NewSeededRand(seed, ^seed)
	g, err := game.New(c, game.DefaultRules(), rng)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}
	jobID := func(player int) string {
		return c.Jobs[player%len(c.Jobs)].ID
	}
	for range maxInputs {
		a, ok := game.NextAction(g.View(), jobID)
		if !ok {
			return g, nil
		}
		if a.Kind == game.ActionPlayers {
			a.Players = players
		}
		if err = g.Apply(a); err != nil && !errors.Is(err, game.ErrRejected) {
			return nil, errors.Wrap(err, "apply", slog.String("action", string(a.Kind)))
		}
		if a.Kind == game.ActionPlayers && g.State() == game.StateSetupCount {
			return nil, errors.Wrap(game.ErrRejected, "player count", slog.Int("players", players))
		}
	}
	return nil, ErrStuck
}

// PrintResult writes the standings as a table.
func PrintResult(w io.Writer, result game.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // padding
	_, _ = fmt.Fprintln(tw, "RANK\tPLAYER\tJOB\tCASH\tROLLS\tINVESTMENTS\tGOAL\tFINAL")
	for _, s := range result.Standings {
		goal := s.Goal
		if s.GoalMet {
			goal += " +$" + s.Bonus.StringFixed(0)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t$%d\t%v\t$%s\t%s\t$%s\n",
			s.Rank, s.Name, s.Job, s.Cash, s.Rolls, s.LiquidationTotal.StringFixed(0), goal, s.FinalMoney.StringFixed(0))
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "flush standings")
	}
	if _, err := fmt.Fprintf(w, "\n%s wins!\n", result.Winner()); err != nil {
		return errors.Wrap(err, "write winner")
	}
	return nil
}

func store(ctx context.Context, w io.Writer, sqliteURL string, g *game.Game) error {
	logger := logging.New(os.Stderr, slog.LevelWarn, false)
	dbs, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open database", slog.String("url", sqliteURL))
	}
	defer func() {
		_ = dbs.Close()
	}()
	summary, err := g.Summary(time.Now())
	if err != nil {
		return errors.Wrap(err, "summarise game")
	}
	session, err := repositories.NewSessionRepository(dbs, logger).Create(ctx, summary)
	if err != nil {
		return errors.Wrap(err, "store game")
	}
	if _, err = fmt.Fprintf(w, "stored as session %d\n", session.ID); err != nil {
		return errors.Wrap(err, "write session id")
	}
	return nil
}
