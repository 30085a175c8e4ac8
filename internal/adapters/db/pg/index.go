package pg

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib" // driver

	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/adapters/logger"
)

type St struct {
	debug bool
	lg    logger.WarnAndError

	Con *pgxpool.Pool
}

func New(debug bool, lg logger.WarnAndError, opts OptionsSt) (*St, error) {
	opts.mergeWithDefaults()

	cfg, err := pgxpool.ParseConfig(opts.Dsn)
	if err != nil {
		lg.Errorw(ErrPrefix+": Fail to parse dsn", err)
		return nil, err
	}

	cfg.ConnConfig.RuntimeParams["timezone"] = opts.Timezone
	cfg.MaxConns = opts.MaxConns
	cfg.MinConns = opts.MinConns
	cfg.MaxConnLifetime = opts.MaxConnLifetime
	cfg.MaxConnIdleTime = opts.MaxConnIdleTime
	cfg.HealthCheckPeriod = opts.HealthCheckPeriod
	cfg.LazyConnect = true

	dbPool, err := pgxpool.ConnectConfig(context.Background(), cfg)
	if err != nil {
		lg.Errorw(ErrPrefix+": Fail to connect to db", err)
		return nil, err
	}

	return &St{
		debug: debug,
		lg:    lg,
		Con:   dbPool,
	}, nil
}

func (d *St) HErr(err error) error {
	switch {
	case err == nil:
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, sql.ErrNoRows):
		err = db.ErrNoRows
	default:
		d.lg.Errorw(ErrPrefix, err)
	}

	return err
}

// query

func (d *St) DbExec(ctx context.Context, sql string, args ...any) error {
	_, err := d.Con.Exec(ctx, sql, args...)
	return d.HErr(err)
}

func (d *St) DbQuery(ctx context.Context, sql string, args ...any) (db.RDBRows, error) {
	rows, err := d.Con.Query(ctx, sql, args...)
	return rowsSt{Rows: rows, db: d}, d.HErr(err)
}

func (d *St) DbQueryRow(ctx context.Context, sql string, args ...any) db.RDBRow {
	return rowSt{Row: d.Con.QueryRow(ctx, sql, args...), db: d}
}

func (d *St) queryRebindNamed(sql string, argMap map[string]any) (string, []any) {
	resultQuery := sql
	args := make([]any, 0, len(argMap))

	for k, v := range argMap {
		if strings.Contains(resultQuery, "${"+k+"}") {
			args = append(args, v)
			resultQuery = strings.ReplaceAll(resultQuery, "${"+k+"}", "$"+strconv.Itoa(len(args)))
		}
	}

	if d.debug {
		if strings.Contains(resultQuery, "${") {
			for _, x := range queryParamRegexp.FindAllString(resultQuery, 1) {
				d.lg.Errorw(ErrPrefix+": missing param", nil, "param", x, "query", resultQuery)
			}
		}
	}

	return resultQuery, args
}

func (d *St) DbExecM(ctx context.Context, sql string, argMap map[string]any) error {
	rbSql, args := d.queryRebindNamed(sql, argMap)

	return d.DbExec(ctx, rbSql, args...)
}

func (d *St) DbQueryM(ctx context.Context, sql string, argMap map[string]any) (db.RDBRows, error) {
	rbSql, args := d.queryRebindNamed(sql, argMap)

	return d.DbQuery(ctx, rbSql, args...)
}

func (d *St) DbQueryRowM(ctx context.Context, sql string, argMap map[string]any) db.RDBRow {
	rbSql, args := d.queryRebindNamed(sql, argMap)

	return d.DbQueryRow(ctx, rbSql, args...)
}
