package postgres

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/linnemanlabs/go-core/log"
)

var queryObserver atomic.Pointer[queryObserverHolder]

type ctxKey string

const (
	ctxKeyQuery      ctxKey = "pgx.query"
	ctxKeyHTTPMethod ctxKey = "http.method"
)

type queryObserverHolder struct{ QueryObserver }

// queryStart is stashed in the context between TraceQueryStart and
// TraceQueryEnd.
type queryStart struct {
	sql   string
	start time.Time
}

// QueryObserver receives per-query metrics (wired by main for Prometheus).
type QueryObserver interface {
	ObserveQuery(ctx context.Context, method, route, outcome string, dur time.Duration)
}

// QueryObserverFunc adapts a plain function to QueryObserver.
type QueryObserverFunc func(ctx context.Context, method, route, outcome string, dur time.Duration)

// ObserveQuery implements QueryObserver.
func (f QueryObserverFunc) ObserveQuery(ctx context.Context, method, route, outcome string, dur time.Duration) {
	f(ctx, method, route, outcome, dur)
}

// SetQueryObserver sets the global query observer. nil disables observation.
func SetQueryObserver(o QueryObserver) {
	if o == nil {
		queryObserver.Store(nil)
		return
	}
	queryObserver.Store(&queryObserverHolder{QueryObserver: o})
}

func getQueryObserver() QueryObserver {
	h := queryObserver.Load()
	if h == nil {
		return nil
	}
	return h.QueryObserver
}

// WithHTTPMethod stores the HTTP method in the context for query metrics labelling.
func WithHTTPMethod(ctx context.Context, method string) context.Context {
	if method == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKeyHTTPMethod, method)
}

func httpMethodFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyHTTPMethod).(string); ok && v != "" {
		return v
	}
	return "UNKNOWN"
}

func routePatternFromContext(ctx context.Context) string {
	if rc := chi.RouteContext(ctx); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unknown"
}

// loggingTracer wraps another pgx.QueryTracer (otelpgx) and adds a
// structured log line and a metrics observation for every query.
type loggingTracer struct {
	inner pgx.QueryTracer
}

func wrapQueryTracer(inner pgx.QueryTracer) pgx.QueryTracer {
	return loggingTracer{inner: inner}
}

func (t loggingTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	if t.inner != nil {
		ctx = t.inner.TraceQueryStart(ctx, conn, data)
	}
	return context.WithValue(ctx, ctxKeyQuery, queryStart{sql: data.SQL, start: time.Now()})
}

func (t loggingTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	// inner first so its span ends with the query
	if t.inner != nil {
		t.inner.TraceQueryEnd(ctx, conn, data)
	}

	qs, _ := ctx.Value(ctxKeyQuery).(queryStart)
	var dur time.Duration
	if !qs.start.IsZero() {
		dur = time.Since(qs.start)
	}

	outcome := "ok"
	if data.Err != nil {
		outcome = "error"
	}
	if obs := getQueryObserver(); obs != nil && dur > 0 {
		obs.ObserveQuery(ctx, httpMethodFromContext(ctx), routePatternFromContext(ctx), outcome, dur)
	}

	L := log.FromContext(ctx)
	if L == nil {
		return
	}
	fields := queryFields(qs.sql, dur, data)
	if data.Err != nil {
		L.Error(ctx, data.Err, "db query failed", fields...)
	} else {
		L.Info(ctx, "db query", fields...)
	}
}

// queryFields builds the log fields for a finished query.
func queryFields(sql string, dur time.Duration, data pgx.TraceQueryEndData) []any {
	fields := []any{
		"db.statement", compactSQL(sql),
		"db.duration", dur.Seconds(),
	}
	if tag := strings.TrimSpace(data.CommandTag.String()); tag != "" {
		fields = append(fields, "db.operation.name", strings.ToUpper(strings.Fields(tag)[0]))
		if rows := data.CommandTag.RowsAffected(); rows >= 0 {
			fields = append(fields, "db.rows", rows)
		}
	}
	var pgErr *pgconn.PgError
	if errors.As(data.Err, &pgErr) {
		fields = append(fields,
			"db.error_code", pgErr.Code,
			"db.error_constraint", pgErr.ConstraintName,
		)
	}
	return fields
}

// compactSQL collapses runs of whitespace so multi-line statements log on
// one line.
func compactSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
