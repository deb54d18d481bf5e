package datasource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

func init() {
	Register(SourcePostgres, func(ctx context.Context, cfg Config) (Adapter, error) {
		dsn := os.Getenv(cfg.DSNEnv)
		if dsn == "" {
			return nil, fmt.Errorf("environment variable %s is empty", cfg.DSNEnv)
		}
		return NewPostgresAdapter(ctx, dsn, cfg.MaxConcurrentQueries)
	})
}

// defaultRowLimit caps result rows when the caller does not set one.
const defaultRowLimit = 1000

// PostgresAdapter executes read-only queries against a PostgreSQL (or
// wire-compatible) warehouse via a pgx connection pool.
type PostgresAdapter struct {
	pool          *pgxpool.Pool
	maxConcurrent int
}

// NewPostgresAdapter connects a pool and verifies the connection.
func NewPostgresAdapter(ctx context.Context, dsn string, maxConcurrent int) (*PostgresAdapter, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, NewAdapterError(ErrConnectionFailed, "invalid connection string", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, NewAdapterError(ErrConnectionFailed, "failed to create connection pool", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, classifyPostgresError("connection check failed", err)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &PostgresAdapter{pool: pool, maxConcurrent: maxConcurrent}, nil
}

// ExecuteQuery runs the query with a per-call timeout and truncates the
// result at opts.Limit rows.
func (a *PostgresAdapter) ExecuteQuery(ctx context.Context, sql string, opts QueryOptions) (*QueryResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultRowLimit
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := a.pool.Query(ctx, sql, opts.Params...)
	if err != nil {
		return nil, classifyPostgresError("query failed", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]Column, len(fields))
	for i, f := range fields {
		columns[i] = Column{Name: f.Name, DataType: normalizePostgresOID(f.DataTypeOID)}
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		if result.RowCount >= limit {
			result.Truncated = true
			break
		}
		values, err := rows.Values()
		if err != nil {
			return nil, classifyPostgresError("failed to read row", err)
		}
		row := make(map[string]any, len(columns))
		for i, c := range columns {
			row[c.Name] = values[i]
		}
		result.Rows = append(result.Rows, row)
		result.RowCount++
	}
	if err := rows.Err(); err != nil && !result.Truncated {
		return nil, classifyPostgresError("query failed", err)
	}
	result.ExecutionTimeMS = time.Since(start).Milliseconds()
	return result, nil
}

// GetSchema discovers all user tables via information_schema.
func (a *PostgresAdapter) GetSchema(ctx context.Context) (*SchemaResponse, error) {
	const q = `
		SELECT table_schema, table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
		ORDER BY table_schema, table_name, ordinal_position`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, NewAdapterError(ErrSchemaFetchFailed, "failed to query information_schema", err)
	}
	defer rows.Close()

	resp := &SchemaResponse{}
	index := map[string]int{}
	for rows.Next() {
		var schema, table, column, dataType string
		if err := rows.Scan(&schema, &table, &column, &dataType); err != nil {
			return nil, NewAdapterError(ErrSchemaFetchFailed, "failed to scan schema row", err)
		}
		key := schema + "." + table
		i, ok := index[key]
		if !ok {
			resp.Tables = append(resp.Tables, Table{Schema: schema, Name: table})
			i = len(resp.Tables) - 1
			index[key] = i
		}
		resp.Tables[i].Columns = append(resp.Tables[i].Columns, Column{
			Name:     column,
			DataType: normalizePostgresType(dataType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, NewAdapterError(ErrSchemaFetchFailed, "schema discovery interrupted", err)
	}
	return resp, nil
}

// MaxConcurrentQueries returns the declared concurrency bound.
func (a *PostgresAdapter) MaxConcurrentQueries() int { return a.maxConcurrent }

// Close releases the connection pool.
func (a *PostgresAdapter) Close() error {
	a.pool.Close()
	return nil
}

// classifyPostgresError maps pgx errors onto the closed error-code set.
func classifyPostgresError(msg string, err error) *AdapterError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewAdapterError(ErrQueryTimeout, msg, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "42601" || pgErr.Code == "42P01" || pgErr.Code == "42703":
			// syntax error, undefined table, undefined column
			return NewAdapterError(ErrQuerySyntax, pgErr.Message, err)
		case pgErr.Code == "42501":
			return NewAdapterError(ErrAccessDenied, pgErr.Message, err)
		case pgErr.Code == "28P01" || pgErr.Code == "28000":
			return NewAdapterError(ErrAuthenticationFailed, pgErr.Message, err)
		case pgErr.Code == "57014":
			// statement cancelled (statement_timeout)
			return NewAdapterError(ErrQueryTimeout, pgErr.Message, err)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return NewAdapterError(ErrInternal, msg, err)
	}
	return NewAdapterError(ErrConnectionFailed, msg, err)
}

// normalizePostgresType maps information_schema data_type strings onto
// the normalized column type set.
func normalizePostgresType(t string) ColumnType {
	switch strings.ToLower(t) {
	case "text", "character varying", "character", "varchar", "char", "name", "uuid":
		return TypeString
	case "smallint", "integer", "bigint", "smallserial", "serial", "bigserial":
		return TypeInteger
	case "real", "double precision":
		return TypeFloat
	case "numeric", "decimal", "money":
		return TypeDecimal
	case "boolean":
		return TypeBoolean
	case "date":
		return TypeDate
	case "time", "time without time zone", "time with time zone":
		return TypeTime
	case "timestamp without time zone":
		return TypeDatetime
	case "timestamp with time zone", "timestamp":
		return TypeTimestamp
	case "bytea":
		return TypeBinary
	case "json", "jsonb":
		return TypeJSON
	case "array":
		return TypeArray
	default:
		if strings.HasPrefix(strings.ToLower(t), "array") || strings.HasSuffix(t, "[]") {
			return TypeArray
		}
		return TypeUnknown
	}
}

// normalizePostgresOID maps common pg type OIDs for result columns.
// Anything unrecognized is "unknown" — result rendering tolerates it.
func normalizePostgresOID(oid uint32) ColumnType {
	switch oid {
	case 25, 1043, 1042, 19, 2950: // text, varchar, bpchar, name, uuid
		return TypeString
	case 20, 21, 23: // int8, int2, int4
		return TypeInteger
	case 700, 701: // float4, float8
		return TypeFloat
	case 1700: // numeric
		return TypeDecimal
	case 16: // bool
		return TypeBoolean
	case 1082: // date
		return TypeDate
	case 1083, 1266: // time, timetz
		return TypeTime
	case 1114: // timestamp
		return TypeDatetime
	case 1184: // timestamptz
		return TypeTimestamp
	case 17: // bytea
		return TypeBinary
	case 114, 3802: // json, jsonb
		return TypeJSON
	default:
		return TypeUnknown
	}
}
