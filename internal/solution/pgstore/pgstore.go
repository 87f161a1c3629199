// Package pgstore provides a PostgreSQL implementation of solution.Store.
package pgstore

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linnemanlabs/trisolve/internal/layout"
	"github.com/linnemanlabs/trisolve/internal/solution"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

var tracer = otel.Tracer("github.com/linnemanlabs/trisolve/internal/solution/pgstore")

//go:embed schema.sql
var schema string

// Store persists solution records in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// New applies the schema on pool and returns a ready Store. The caller owns
// the pool.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

const solutionColumns = `id, case_name, given, status, triangle, layout, error_kind, error,
	explanation, explainer, created_at, duration_s`

// Get retrieves a solution record by ID.
func (s *Store) Get(ctx context.Context, id string) (*solution.Record, bool, error) {
	ctx, span := startSpan(ctx, "pgstore.Get", "SELECT")
	defer span.End()

	query := `SELECT ` + solutionColumns + ` FROM triangle_solutions WHERE id = $1`
	r, err := scanRecord(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		recordError(span, err)
		return nil, false, err
	}
	return r, true, nil
}

// Put inserts or updates a solution record.
func (s *Store) Put(ctx context.Context, r *solution.Record) error {
	ctx, span := startSpan(ctx, "pgstore.Put", "UPSERT")
	defer span.End()

	given, err := json.Marshal(r.Given)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("marshal given: %w", err)
	}
	tri, err := marshalOptional(r.Triangle)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("marshal triangle: %w", err)
	}
	lay, err := marshalOptional(r.Layout)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("marshal layout: %w", err)
	}

	query := `INSERT INTO triangle_solutions (` + solutionColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	ON CONFLICT (id) DO UPDATE SET
		status      = EXCLUDED.status,
		triangle    = EXCLUDED.triangle,
		layout      = EXCLUDED.layout,
		error_kind  = EXCLUDED.error_kind,
		error       = EXCLUDED.error,
		explanation = EXCLUDED.explanation,
		explainer   = EXCLUDED.explainer,
		duration_s  = EXCLUDED.duration_s`

	_, err = s.pool.Exec(ctx, query,
		r.ID, string(r.Case), given, string(r.Status), tri, lay,
		string(r.ErrorKind), r.Error, r.Explanation, r.Explainer,
		r.CreatedAt, r.Duration,
	)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("upsert solution: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*solution.Record, error) {
	ctx, span := startSpan(ctx, "pgstore.Recent", "SELECT")
	defer span.End()

	query := `SELECT ` + solutionColumns + ` FROM triangle_solutions
	ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var out []*solution.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			recordError(span, err)
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("iterate recent: %w", err)
	}
	span.SetAttributes(attribute.Int("db.rows", len(out)))
	return out, nil
}

func startSpan(ctx context.Context, name, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation.name", op),
	))
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// marshalOptional encodes v as JSON, or returns nil for SQL NULL.
func marshalOptional[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// scanRecord scans a single row into a solution.Record. pgx.ErrNoRows is
// returned unwrapped.
func scanRecord(row pgx.Row) (*solution.Record, error) {
	var (
		r                      solution.Record
		caseName, status, kind string
		given, tri, lay        []byte
	)

	err := row.Scan(
		&r.ID, &caseName, &given, &status, &tri, &lay, &kind, &r.Error,
		&r.Explanation, &r.Explainer, &r.CreatedAt, &r.Duration,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan: %w", err)
	}

	r.Case = triangle.Case(caseName)
	r.Status = solution.Status(status)
	r.ErrorKind = triangle.Kind(kind)

	if err := json.Unmarshal(given, &r.Given); err != nil {
		return nil, fmt.Errorf("unmarshal given: %w", err)
	}
	if tri != nil {
		r.Triangle = new(triangle.Triangle)
		if err := json.Unmarshal(tri, r.Triangle); err != nil {
			return nil, fmt.Errorf("unmarshal triangle: %w", err)
		}
	}
	if lay != nil {
		r.Layout = new(layout.Layout)
		if err := json.Unmarshal(lay, r.Layout); err != nil {
			return nil, fmt.Errorf("unmarshal layout: %w", err)
		}
	}
	return &r, nil
}

var _ solution.Store = (*Store)(nil)
