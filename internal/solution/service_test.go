package solution

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/linnemanlabs/go-core/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// mockStore implements Store for testing.
type mockStore struct {
	mu      sync.Mutex
	records map[string]*Record
	putErr  error
	getErr  error
	puts    int
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[string]*Record)}
}

func (m *mockStore) Get(_ context.Context, id string) (*Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	r, ok := m.records[id]
	if !ok {
		return nil, false, nil
	}
	return r.Clone(), true, nil
}

func (m *mockStore) Put(_ context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.records[r.ID] = r.Clone()
	return nil
}

func (m *mockStore) Recent(_ context.Context, limit int) ([]*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Record, 0, limit)
	for _, r := range m.records {
		if len(out) == limit {
			break
		}
		out = append(out, r.Clone())
	}
	return out, nil
}

// mockExplainer returns a fixed text or error.
type mockExplainer struct {
	text  string
	err   error
	calls int
}

func (m *mockExplainer) Name() string { return "mock" }

func (m *mockExplainer) Explain(_ context.Context, _ *Record) (string, error) {
	m.calls++
	return m.text, m.err
}

func newTestService(t *testing.T, store Store, explainer Explainer) (*Service, *Metrics) {
	t.Helper()
	m := NewMetrics(prometheus.NewRegistry())
	return NewService(store, explainer, log.Nop(), m), m
}

func TestNewService_NilStore_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("NewService(nil, ...) did not panic")
		}
	}()
	NewService(nil, nil, nil, nil)
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewService(newMockStore(), nil, nil, nil)
	if svc.logger == nil {
		t.Error("logger left nil; expected Nop logger")
	}
	if _, ok := svc.explainer.(Steps); !ok {
		t.Errorf("explainer = %T, want Steps", svc.explainer)
	}
}

func TestSolve_Solved(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc, m := newTestService(t, store, nil)

	rec, err := svc.Solve(context.Background(), Request{
		Case:  "sss",
		Given: triangle.Given{A: 3, B: 4, C: 5},
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if rec.ID == "" {
		t.Error("ID is empty")
	}
	if rec.Case != triangle.SSS {
		t.Errorf("Case = %q, want normalized %q", rec.Case, triangle.SSS)
	}
	if rec.Status != StatusSolved {
		t.Fatalf("Status = %q, want %q (error %q)", rec.Status, StatusSolved, rec.Error)
	}
	if rec.Triangle == nil || math.Abs(rec.Triangle.Gamma-90) > 1e-9 {
		t.Errorf("Triangle = %v, want gamma 90", rec.Triangle)
	}
	if rec.Layout == nil {
		t.Fatal("Layout is nil for a solved triangle")
	}
	if rec.Layout.C.X != 4 {
		t.Errorf("Layout.C = %v, want (4, 0)", rec.Layout.C)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	stored, ok, _ := store.Get(context.Background(), rec.ID)
	if !ok {
		t.Fatal("record not persisted")
	}
	if stored.Status != StatusSolved {
		t.Errorf("stored Status = %q, want %q", stored.Status, StatusSolved)
	}

	if got := testutil.ToFloat64(m.SolvesTotal.WithLabelValues("SSS", "solved")); got != 1 {
		t.Errorf("solves_total{SSS,solved} = %v, want 1", got)
	}
}

func TestSolve_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      Request
		wantKind triangle.Kind
		wantMsg  string
	}{
		{
			"triangle inequality",
			Request{Case: triangle.SSS, Given: triangle.Given{A: 1, B: 1, C: 3}},
			triangle.KindInvalidInput,
			"invalid triangle: sides violate triangle inequality",
		},
		{
			"angle sum",
			Request{Case: triangle.ASA, Given: triangle.Given{Alpha: 100, Beta: 80, C: 7}},
			triangle.KindInvalidInput,
			triangle.ErrAngleSide.Msg,
		},
		{
			"unknown case",
			Request{Case: "SSA", Given: triangle.Given{A: 1, B: 2, Alpha: 30}},
			triangle.KindInvalidInput,
			triangle.ErrUnknownCase.Msg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, m := newTestService(t, newMockStore(), nil)
			rec, err := svc.Solve(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Solve returned error %v; rejections must be recorded, not returned", err)
			}
			if rec.Status != StatusRejected {
				t.Errorf("Status = %q, want %q", rec.Status, StatusRejected)
			}
			if rec.ErrorKind != tt.wantKind {
				t.Errorf("ErrorKind = %q, want %q", rec.ErrorKind, tt.wantKind)
			}
			if rec.Error != tt.wantMsg {
				t.Errorf("Error = %q, want %q", rec.Error, tt.wantMsg)
			}
			if rec.Triangle != nil || rec.Layout != nil {
				t.Errorf("rejected record carries results: %v %v", rec.Triangle, rec.Layout)
			}
			if got := testutil.CollectAndCount(m.SolvesTotal); got != 1 {
				t.Errorf("solves_total series = %d, want 1", got)
			}
		})
	}
}

func TestSolve_UnknownCaseLabel(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t, newMockStore(), nil)
	if _, err := svc.Solve(context.Background(), Request{Case: "whatever"}); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if got := testutil.ToFloat64(m.SolvesTotal.WithLabelValues("unknown", "rejected")); got != 1 {
		t.Errorf("solves_total{unknown,rejected} = %v, want 1", got)
	}
}

func TestSolve_StoreError(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	store.putErr = errors.New("disk full")
	svc, _ := newTestService(t, store, nil)

	_, err := svc.Solve(context.Background(), Request{Case: triangle.SSS, Given: triangle.Given{A: 3, B: 4, C: 5}})
	if err == nil {
		t.Fatal("expected error when store fails")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error = %q, want wrapped store error", err)
	}
}

func TestRecent_ClampsLimit(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc, _ := newTestService(t, store, nil)
	for range MaxRecentLimit + 5 {
		if _, err := svc.Solve(context.Background(), Request{Case: triangle.SSS, Given: triangle.Given{A: 1, B: 1, C: 1}}); err != nil {
			t.Fatalf("Solve: %v", err)
		}
	}

	tests := []struct{ limit, want int }{
		{0, DefaultRecentLimit},
		{-3, DefaultRecentLimit},
		{5, 5},
		{MaxRecentLimit + 50, MaxRecentLimit},
	}
	for _, tt := range tests {
		got, err := svc.Recent(context.Background(), tt.limit)
		if err != nil {
			t.Fatalf("Recent(%d): %v", tt.limit, err)
		}
		if len(got) != tt.want {
			t.Errorf("Recent(%d) len = %d, want %d", tt.limit, len(got), tt.want)
		}
	}
}

func TestExplain_UsesExplainerOnce(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	exp := &mockExplainer{text: "because trigonometry"}
	svc, m := newTestService(t, store, exp)

	rec, err := svc.Solve(context.Background(), Request{Case: triangle.SAS, Given: triangle.Given{B: 6, Gamma: 60, A: 7}})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	got, err := svc.Explain(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if got.Explanation != "because trigonometry" || got.Explainer != "mock" {
		t.Errorf("Explanation, Explainer = %q, %q", got.Explanation, got.Explainer)
	}

	if _, err := svc.Explain(context.Background(), rec.ID); err != nil {
		t.Fatalf("second Explain: %v", err)
	}
	if exp.calls != 1 {
		t.Errorf("explainer calls = %d, want 1 (cached)", exp.calls)
	}
	if v := testutil.ToFloat64(m.ExplanationsTotal.WithLabelValues("mock", "success")); v != 1 {
		t.Errorf("explanations_total{mock,success} = %v, want 1", v)
	}
}

func TestExplain_FallsBackToSteps(t *testing.T) {
	t.Parallel()

	exp := &mockExplainer{err: errors.New("rate limited")}
	svc, m := newTestService(t, newMockStore(), exp)

	rec, err := svc.Solve(context.Background(), Request{Case: triangle.SSS, Given: triangle.Given{A: 3, B: 4, C: 5}})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	got, err := svc.Explain(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Explain: %v", err)
	}
	if got.Explainer != "steps" {
		t.Errorf("Explainer = %q, want steps", got.Explainer)
	}
	if !strings.Contains(got.Explanation, "Law of Cosines") {
		t.Errorf("Explanation = %q, want Law of Cosines steps", got.Explanation)
	}
	if v := testutil.ToFloat64(m.ExplanationsTotal.WithLabelValues("mock", "error")); v != 1 {
		t.Errorf("explanations_total{mock,error} = %v, want 1", v)
	}
}

func TestExplain_Errors(t *testing.T) {
	t.Parallel()

	store := newMockStore()
	svc, _ := newTestService(t, store, nil)

	if _, err := svc.Explain(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Explain(missing) = %v, want %v", err, ErrNotFound)
	}

	rec, err := svc.Solve(context.Background(), Request{Case: triangle.SSS, Given: triangle.Given{A: 1, B: 1, C: 3}})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if _, err := svc.Explain(context.Background(), rec.ID); !errors.Is(err, ErrNotSolved) {
		t.Errorf("Explain(rejected) = %v, want %v", err, ErrNotSolved)
	}

	store.getErr = errors.New("connection reset")
	if _, err := svc.Explain(context.Background(), rec.ID); err == nil {
		t.Error("expected store error to propagate")
	}
}

func TestSteps_AllCases(t *testing.T) {
	t.Parallel()

	reqs := []Request{
		{Case: triangle.SSS, Given: triangle.Given{A: 5, B: 6, C: 7}},
		{Case: triangle.SAS, Given: triangle.Given{B: 6, Gamma: 60, A: 7}},
		{Case: triangle.ASA, Given: triangle.Given{Beta: 60, C: 7, Alpha: 50}},
		{Case: triangle.AAS, Given: triangle.Given{Alpha: 50, Beta: 60, A: 6}},
	}
	want := map[triangle.Case]string{
		triangle.SSS: "triangle inequality",
		triangle.SAS: "c = √(a² + b² − 2ab·cos γ)",
		triangle.ASA: "a = c·sin α / sin γ",
		triangle.AAS: "b = a·sin β / sin α",
	}

	for _, req := range reqs {
		tri, err := triangle.Solve(req.Case, req.Given)
		if err != nil {
			t.Fatalf("Solve(%s): %v", req.Case, err)
		}
		rec := &Record{Case: req.Case, Status: StatusSolved, Triangle: &tri, CreatedAt: time.Now()}
		text, err := Steps{}.Explain(context.Background(), rec)
		if err != nil {
			t.Fatalf("Steps.Explain(%s): %v", req.Case, err)
		}
		if !strings.Contains(text, want[req.Case]) {
			t.Errorf("%s explanation missing %q:\n%s", req.Case, want[req.Case], text)
		}
		if !strings.Contains(text, "α + β + γ = 180.0000°") {
			t.Errorf("%s explanation missing angle sum check:\n%s", req.Case, text)
		}
	}
}

func TestRecordClone(t *testing.T) {
	t.Parallel()

	tri := triangle.Triangle{A: 1, B: 1, C: 1, Alpha: 60, Beta: 60, Gamma: 60}
	r := &Record{ID: "x", Triangle: &tri}
	cp := r.Clone()
	cp.Triangle.A = 2
	if r.Triangle.A != 1 {
		t.Error("Clone shares the Triangle pointer")
	}
}
