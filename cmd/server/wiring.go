package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/linnemanlabs/go-core/httpmw"
	"github.com/linnemanlabs/go-core/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	tc "github.com/linnemanlabs/trisolve/internal/cfg"
	"github.com/linnemanlabs/trisolve/internal/llm/claude"
	"github.com/linnemanlabs/trisolve/internal/postgres"
	"github.com/linnemanlabs/trisolve/internal/solution"
	"github.com/linnemanlabs/trisolve/internal/solution/memstore"
	"github.com/linnemanlabs/trisolve/internal/solution/pgstore"
	"github.com/linnemanlabs/trisolve/internal/solveapi"
)

// openStore returns the postgres store when databaseURL is set and the
// in-memory store otherwise. The returned func releases the pool.
func openStore(ctx context.Context, databaseURL string, L log.Logger) (solution.Store, func(), error) {
	if databaseURL == "" {
		L.Info(ctx, "using in-memory store (no database-url configured)")
		return memstore.New(), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres pool: %w", err)
	}
	store, err := pgstore.New(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pgstore init: %w", err)
	}
	L.Info(ctx, "using postgres store")
	return store, pool.Close, nil
}

// newExplainer picks Claude when an API key is configured. nil selects the
// service's built-in step explainer.
func newExplainer(appCfg tc.Config, L log.Logger) solution.Explainer {
	if appCfg.ClaudeAPIKey == "" {
		L.Info(context.Background(), "using built-in step explainer")
		return nil
	}
	L.Info(context.Background(), "initialized explainer", "provider", "claude", "model", appCfg.ClaudeModel)
	return claude.New(appCfg.ClaudeAPIKey, appCfg.ClaudeModel)
}

type handlerDeps struct {
	logger       log.Logger
	svc          solveapi.SolutionService
	apiToken     string
	maxBodyBytes int64
	httpmwCfg    httpmw.Config
	healthz      http.HandlerFunc
	readyz       http.HandlerFunc
	instrument   func(http.Handler) http.Handler
}

// newHandler builds the API router and wraps it in the middleware stack.
// Wrappers are applied inside out: the last one applied sees the raw
// request first.
func newHandler(d handlerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Compress(5, "application/json"))

	// names the logger and span after the chi route pattern
	r.Use(httpmw.AnnotateHTTPRoute)

	// method label for DB query metrics
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(postgres.WithHTTPMethod(req.Context(), req.Method)))
		})
	})

	r.Use(httpmw.AccessLog())
	// hard ceiling, then the configured limit
	r.Use(httpmw.MaxBody(tc.MaxBodyLimit))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, d.maxBodyBytes)
	})

	r.Get("/-/healthy", d.healthz)
	r.Get("/-/ready", d.readyz)

	solveapi.New(d.logger, d.svc, d.apiToken).RegisterRoutes(r)

	var h http.Handler = r
	h = httpmw.WithLogger(d.logger)(h)
	h = httpmw.TraceResponseHeaders("X-Trace-Id", "X-Span-Id")(h)
	h = otelhttp.NewHandler(h, "http.server",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/-/healthy" && r.URL.Path != "/-/ready"
		}),
		// AnnotateHTTPRoute renames the span to the route pattern later
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithPublicEndpointFn(func(_ *http.Request) bool { return true }),
	)
	if d.instrument != nil {
		h = d.instrument(h)
	}
	h = httpmw.ClientIPWithOptions(httpmw.ClientIPOptions{
		TrustedHops: d.httpmwCfg.TrustedProxyHops,
	})(h)
	h = httpmw.RequestID("X-Request-Id")(h)
	h = httpmw.Recover(d.logger, nil)(h)
	h = httpmw.SecurityHeaders(h)
	return h
}
