package repositories_test

import (
	"context"
	"github.com/jamesungureanu/LifeTune/internal/sqlite"
	"github.com/jamesungureanu/LifeTune/internal/testhelpers"
	"io"
	"testing"
)

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *sqlite.Database {
	t.Helper()
	var (
		dbs *sqlite.Database
		err error
	)
	if dbs, err = sqlite.NewDatabase(context.Background(), ":memory:", testhelpers.NewLogger(io.Discard)); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err = dbs.Close(); err != nil {
			t.Error(err)
		}
	})
	return dbs
}
