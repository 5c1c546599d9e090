package geopkg

import "database/sql"

// WithForeignKeysDisabled turns off foreign-key enforcement for the
// duration of fn, restoring it afterward regardless of fn's outcome.
// Go has no context-manager syntax, so this takes the closure the
// reference implementation's ForeignKeys context manager would have
// wrapped.
func WithForeignKeysDisabled(db *sql.DB, fn func() error) error {
	if _, err := db.Exec(`PRAGMA foreign_keys = false`); err != nil {
		return err
	}
	defer db.Exec(`PRAGMA foreign_keys = true`)
	return fn()
}

// BatchInsert runs query once per row inside a single transaction,
// rolling back on the first failure. rows are passed through as-is to
// (*sql.Stmt).Exec, so geometry columns should already be wrapped in
// driver.Geometry or driver.NamedGeometry.
func BatchInsert(db *sql.DB, query string, rows [][]any) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
