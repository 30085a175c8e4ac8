package db

import (
	"context"
)

type Err string

func (e Err) Error() string {
	return string(e)
}

const (
	ErrNoRows = Err("err_no_rows")
)

// RDB is the parameterized query execution surface consumed by the repo
// layer. Queries use standard $1-style positional placeholders; the M
// variants accept named ${param} markers rebound by the adapter.
type RDB interface {
	DbExec(ctx context.Context, sql string, args ...any) error
	DbQuery(ctx context.Context, sql string, args ...any) (RDBRows, error)
	DbQueryRow(ctx context.Context, sql string, args ...any) RDBRow
	DbExecM(ctx context.Context, sql string, argMap map[string]any) error
	DbQueryM(ctx context.Context, sql string, argMap map[string]any) (RDBRows, error)
	DbQueryRowM(ctx context.Context, sql string, argMap map[string]any) RDBRow
	HErr(err error) error
}

type RDBRows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}

type RDBRow interface {
	Scan(dest ...any) error
}
