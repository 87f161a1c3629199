package solution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/linnemanlabs/go-core/xerrors"
	"github.com/oklog/ulid/v2"

	"github.com/linnemanlabs/trisolve/internal/layout"
	"github.com/linnemanlabs/trisolve/internal/triangle"
)

const (
	// DefaultRecentLimit is used by Recent when no limit is given.
	DefaultRecentLimit = 20

	// MaxRecentLimit caps the number of records Recent returns.
	MaxRecentLimit = 100
)

var (
	// ErrNotFound is returned when no record exists for an ID.
	ErrNotFound = errors.New("solution not found")

	// ErrNotSolved is returned when explaining a rejected record.
	ErrNotSolved = errors.New("solution was rejected, nothing to explain")
)

// Service is the business boundary for solve operations.
type Service struct {
	store     Store
	explainer Explainer
	logger    log.Logger
	metrics   *Metrics
}

// NewService creates a new solution service. A nil explainer falls back to
// the built-in step-by-step explainer; metrics may be nil.
func NewService(store Store, explainer Explainer, logger log.Logger, metrics *Metrics) *Service {
	if store == nil {
		panic(xerrors.New("solution store is required"))
	}
	if explainer == nil {
		explainer = Steps{}
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Service{
		store:     store,
		explainer: explainer,
		logger:    logger,
		metrics:   metrics,
	}
}

// Solve solves the requested triangle, lays it out and records the outcome.
// Invalid input yields a rejected Record, not an error; errors are reserved
// for store failures.
func (s *Service) Solve(ctx context.Context, req Request) (*Record, error) {
	start := time.Now()
	if c, err := triangle.ParseCase(string(req.Case)); err == nil {
		req.Case = c
	}

	id := ulid.Make().String()
	L := s.logger.With("solution_id", id, "case", string(req.Case))
	ctx = log.WithContext(ctx, L)

	rec := &Record{
		ID:        id,
		Case:      req.Case,
		Given:     req.Given,
		CreatedAt: start.UTC(),
	}

	tri, err := triangle.Solve(req.Case, req.Given)
	if err != nil {
		rec.Status = StatusRejected
		rec.ErrorKind = triangle.KindOf(err)
		rec.Error = err.Error()
	} else {
		lay := layout.Project(ctx, tri)
		rec.Status = StatusSolved
		rec.Triangle = &tri
		rec.Layout = &lay
	}
	rec.Duration = time.Since(start).Seconds()

	if err := s.store.Put(ctx, rec); err != nil {
		L.Error(ctx, err, "failed to persist solution")
		return nil, fmt.Errorf("store solution: %w", err)
	}
	s.metrics.observeSolve(rec)

	if rec.Status == StatusSolved {
		L.Info(ctx, "triangle solved", "triangle", tri.String(), "duration", rec.Duration)
	} else {
		L.Info(ctx, "triangle rejected", "error_kind", string(rec.ErrorKind), "reason", rec.Error)
	}
	return rec, nil
}

// Get retrieves a solution record by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, bool, error) {
	return s.store.Get(ctx, id)
}

// Recent returns the newest records. limit is clamped to
// [1, MaxRecentLimit]; zero or negative means DefaultRecentLimit.
func (s *Service) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)
	return s.store.Recent(ctx, limit)
}

// Explain attaches a step-by-step explanation to a solved record and
// returns the updated record. Explanations are generated once and reused.
// If the configured explainer fails, the built-in explainer is used.
func (s *Service) Explain(ctx context.Context, id string) (*Record, error) {
	rec, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	if rec.Status != StatusSolved || rec.Triangle == nil {
		return nil, ErrNotSolved
	}
	if rec.Explanation != "" {
		return rec, nil
	}

	L := s.logger.With("solution_id", id, "explainer", s.explainer.Name())

	text, err := s.explainer.Explain(ctx, rec)
	s.metrics.observeExplanation(s.explainer.Name(), err)
	explainer := s.explainer.Name()
	if err != nil {
		L.Warn(ctx, "explainer failed, using built-in steps", "error", err)
		fallback := Steps{}
		text, err = fallback.Explain(ctx, rec)
		s.metrics.observeExplanation(fallback.Name(), err)
		if err != nil {
			return nil, fmt.Errorf("explain solution: %w", err)
		}
		explainer = fallback.Name()
	}

	rec.Explanation = text
	rec.Explainer = explainer
	if err := s.store.Put(ctx, rec); err != nil {
		L.Error(ctx, err, "failed to persist explanation")
		return nil, fmt.Errorf("store explanation: %w", err)
	}

	L.Info(ctx, "solution explained", "chars", len(text))
	return rec, nil
}
