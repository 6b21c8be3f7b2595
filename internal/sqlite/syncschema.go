package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/random"
	"github.com/jmoiron/sqlx"
	"log/slog"
	"strings"
)

// migrateTo ensures that the db schema matches the target schema.
//
// We employ a very simple declarative schema migration that:
//
// 1. Drops indexes and triggers that were removed or changed,
// 2. Drops deleted tables,
// 3. Creates new tables,
// 4. Migrates changed tables following https://www.sqlite.org/lang_altertable.html#otheralter,
// 5. Creates missing indexes and triggers.
//
// Inspired by https://david.rothlis.net/declarative-schema-migration-for-sqlite/
func (db *Database) migrateTo(ctx context.Context, schemaDefinition string) error {
	var (
		conn *sqlx.Conn
		err  error
	)
	// PRAGMAs and ATTACH are connection state and cannot run inside a transaction, so everything happens on one
	// connection.
	if conn, err = db.ReadWrite.Connx(ctx); err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "close migration connection",
				errors.SlogError(errors.Wrap(closeErr, "close connection")))
		}
	}()

	for _, pragma := range []string{"PRAGMA foreign_keys = OFF", "PRAGMA legacy_alter_table = ON"} {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			return errors.Wrap(err, "prepare connection", slog.String("pragma", pragma))
		}
	}
	defer func() {
		for _, pragma := range []string{"PRAGMA legacy_alter_table = OFF", "PRAGMA foreign_keys = ON"} {
			if _, resetErr := conn.ExecContext(ctx, pragma); resetErr != nil {
				// The connection must not go back to the pool without foreign key enforcement.
				_ = conn.Raw(func(any) error { return driver.ErrBadConn })
				db.logger.LogAttrs(ctx, slog.LevelError, "restore connection",
					errors.SlogError(errors.Wrap(resetErr, "reset pragma", slog.String("pragma", pragma))))
			}
		}
	}()

	// Create the target schema in a temporary database so that we know what has changed.
	var (
		randomID     string
		dbNameLength uint = 20
		target       *sqlx.DB
	)
	if randomID, err = random.Letters(dbNameLength); err != nil {
		return errors.Wrap(err, "generate random ID")
	}
	targetDSN := fmt.Sprintf("file:%s?mode=memory&cache=shared", randomID)
	if target, err = sqlx.Open("sqlite3", targetDSN); err != nil {
		return errors.Wrap(err, "open schema target database")
	}
	defer func() {
		if closeErr := target.Close(); closeErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "close schema target database",
				errors.SlogError(errors.Wrap(closeErr, "close schema target")))
		}
	}()
	// Keep the in-memory database alive until it has been attached.
	target.SetMaxIdleConns(1)
	if _, err = target.ExecContext(ctx, schemaDefinition); err != nil {
		return errors.Wrap(err, "create schema target database")
	}

	if _, err = conn.ExecContext(ctx, "ATTACH DATABASE ? AS schemaTarget", targetDSN); err != nil {
		return errors.Wrap(err, "attach schema target database")
	}
	defer func() {
		if _, detachErr := conn.ExecContext(ctx, "DETACH DATABASE schemaTarget"); detachErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "detach schema target database",
				errors.SlogError(errors.Wrap(detachErr, "detach")))
		}
	}()

	var tx *sqlx.Tx
	if tx, err = conn.BeginTxx(ctx, nil); err != nil {
		return errors.Wrap(err, "start transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			db.logger.LogAttrs(ctx, slog.LevelError, "rollback schema migration",
				errors.SlogError(errors.Wrap(rollbackErr, "rollback")))
		}
	}()

	if err = db.dropStaleObjects(ctx, tx); err != nil {
		return errors.Wrap(err, "drop stale indexes and triggers")
	}
	if err = db.migrateTables(ctx, tx); err != nil {
		return errors.Wrap(err, "migrate tables")
	}
	if err = db.createMissingObjects(ctx, tx); err != nil {
		return errors.Wrap(err, "create indexes and triggers")
	}

	var violations []string
	if err = tx.SelectContext(ctx, &violations, `SELECT "table" FROM pragma_foreign_key_check`); err != nil {
		return errors.Wrap(err, "foreign key check")
	}
	if len(violations) > 0 {
		return errors.New("foreign key violations", slog.String("tables", strings.Join(violations, ",")))
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

type schemaObject struct {
	Type string `db:"type"`
	Name string `db:"name"`
}

// dropStaleObjects drops indexes and triggers that are gone from the target schema or whose definition changed.
func (db *Database) dropStaleObjects(ctx context.Context, tx *sqlx.Tx) error {
	var (
		stale []schemaObject
		err   error
	)
	if err = tx.SelectContext(ctx, &stale, `SELECT current.type AS type, current.name AS name
FROM main.sqlite_schema AS current
         LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type IN ('index', 'trigger')
  AND current.sql IS NOT NULL
  AND current.name NOT LIKE 'sqlite_%'
  AND (target.sql IS NULL OR target.sql <> current.sql)`); err != nil {
		return errors.Wrap(err, "query stale objects")
	}
	for _, obj := range stale {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping schema object",
			slog.String("type", obj.Type), slog.String("name", obj.Name))
		stmt := fmt.Sprintf(`DROP %s IF EXISTS "%s"`, strings.ToUpper(obj.Type), obj.Name)
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "drop schema object", slog.String("query", stmt))
		}
	}
	return nil
}

// createMissingObjects creates indexes and triggers of the target schema that the database lacks. This includes
// the ones lost when a changed table was rebuilt.
func (db *Database) createMissingObjects(ctx context.Context, tx *sqlx.Tx) error {
	var (
		missing []string
		err     error
	)
	if err = tx.SelectContext(ctx, &missing, `SELECT target.sql
FROM schemaTarget.sqlite_schema AS target
         LEFT JOIN main.sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type IN ('index', 'trigger')
  AND target.sql IS NOT NULL
  AND target.name NOT LIKE 'sqlite_%'
  AND current.name IS NULL`); err != nil {
		return errors.Wrap(err, "query missing objects")
	}
	for _, stmt := range missing {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating schema object", slog.String("query", stmt))
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "create schema object", slog.String("query", stmt))
		}
	}
	return nil
}

type changedTable struct {
	Name       string `db:"name"`
	CurrentSQL string `db:"current_sql"`
	NewSQL     string `db:"new_sql"`
}

// migrateTables ensures table schema is synchronized between databases.
func (db *Database) migrateTables(ctx context.Context, tx *sqlx.Tx) error {
	var err error

	var deletedTables []string
	if err = tx.SelectContext(ctx, &deletedTables, `SELECT current.name
FROM main.sqlite_schema AS current
         LEFT JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = 'table' AND target.type IS NULL AND current.name NOT LIKE 'sqlite_%'`); err != nil {
		return errors.Wrap(err, "query deleted tables")
	}
	for _, table := range deletedTables {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping table", slog.String("table", table))
		if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE "%s"`, table)); err != nil {
			return errors.Wrap(err, "drop table", slog.String("table", table))
		}
	}

	var newTableSQLs []string
	if err = tx.SelectContext(ctx, &newTableSQLs, `SELECT target.sql
FROM schemaTarget.sqlite_schema AS target
         LEFT JOIN main.sqlite_schema AS current ON current.name = target.name AND current.type = target.type
WHERE target.type = 'table' AND current.type IS NULL AND target.name NOT LIKE 'sqlite_%'`); err != nil {
		return errors.Wrap(err, "query new tables")
	}
	for _, newTableSQL := range newTableSQLs {
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating table", slog.String("query", newTableSQL))
		if _, err = tx.ExecContext(ctx, newTableSQL); err != nil {
			return errors.Wrap(err, "create table", slog.String("query", newTableSQL))
		}
	}

	var changedTables []changedTable
	if err = tx.SelectContext(ctx, &changedTables, `SELECT current.name AS name,
       current.sql  AS current_sql,
       target.sql   AS new_sql
FROM main.sqlite_schema AS current
         JOIN schemaTarget.sqlite_schema AS target ON current.name = target.name AND current.type = target.type
WHERE current.type = 'table' AND current.name NOT LIKE 'sqlite_%' AND current.sql <> target.sql`); err != nil {
		return errors.Wrap(err, "query changed tables")
	}
	for _, table := range changedTables {
		if err = db.rebuildTable(ctx, tx, table); err != nil {
			return errors.Wrap(err, "rebuild table", slog.String("table", table.Name))
		}
	}
	return nil
}

// rebuildTable moves the old table aside, creates the new definition verbatim and copies the common columns over.
// Creating the table from the target SQL keeps sqlite_schema identical to the schema file, so the next startup sees
// no difference.
func (db *Database) rebuildTable(ctx context.Context, tx *sqlx.Tx, table changedTable) error {
	var (
		commonColumns []string
		err           error
	)
	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrating table",
		slog.String("table", table.Name),
		slog.String("current_sql", table.CurrentSQL),
		slog.String("new_sql", table.NewSQL))

	// Column names are quoted to handle SQLite keywords.
	if err = tx.SelectContext(ctx, &commonColumns, `SELECT '"' || target.name || '"'
FROM pragma_table_info(:table_name) AS current
         JOIN pragma_table_info(:table_name, 'schemaTarget') AS target ON target.name = current.name`,
		sql.Named("table_name", table.Name)); err != nil {
		return errors.Wrap(err, "query common columns")
	}

	oldName := table.Name + "_migration_old"
	stmts := []string{fmt.Sprintf(`ALTER TABLE "%s" RENAME TO "%s"`, table.Name, oldName), table.NewSQL}
	if len(commonColumns) > 0 {
		common := strings.Join(commonColumns, ", ")
		stmts = append(stmts, fmt.Sprintf(`INSERT INTO "%s" (%s) SELECT %s FROM "%s"`, //nolint:gosec // we trust the query.
			table.Name, common, common, oldName))
	}
	stmts = append(stmts, fmt.Sprintf(`DROP TABLE "%s"`, oldName))

	for _, stmt := range stmts {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "exec", slog.String("query", stmt))
		}
	}
	return nil
}
