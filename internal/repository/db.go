package repository

import (
    "context"
    "database/sql"
    "strings"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx.
// Repositories are bound to a DBTX so the same methods run either
// standalone or inside a transaction opened by the store.
type DBTX interface {
    ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
    QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
    QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// MySQL DATETIME / DATE formats used when writing time values.
const (
    dbTimeLayout = "2006-01-02 15:04:05"
    dbDateLayout = "2006-01-02"
)

// placeholders returns "?, ?, ..." for n arguments.
func placeholders(n int) string {
    if n <= 0 {
        return ""
    }
    return strings.Repeat("?,", n-1) + "?"
}

// uint64Args converts ids into a driver argument slice.
func uint64Args(ids []uint64) []interface{} {
    args := make([]interface{}, 0, len(ids))
    for _, id := range ids {
        args = append(args, id)
    }
    return args
}
