package database

import (
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx so query functions can be
// used inside or outside a transaction.
type DBTX interface {
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	NamedExec(query string, arg interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Rebind(query string) string
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// NowStamp is the timestamp format stored in updated_at / created_at
// columns. RFC3339Nano sorts lexicographically within a single process.
func NowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
