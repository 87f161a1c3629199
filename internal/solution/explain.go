package solution

import (
	"context"
	"fmt"
	"strings"

	"github.com/linnemanlabs/trisolve/internal/triangle"
)

// Explainer turns a solved record into a worked explanation for students.
type Explainer interface {
	Name() string
	Explain(ctx context.Context, r *Record) (string, error)
}

// Steps is the built-in Explainer. It writes out the formulas used by the
// solver for the record's case with the numbers substituted.
type Steps struct{}

// Name implements Explainer.
func (Steps) Name() string { return "steps" }

// Explain implements Explainer.
func (Steps) Explain(_ context.Context, r *Record) (string, error) {
	if r.Triangle == nil {
		return "", ErrNotSolved
	}
	t := *r.Triangle

	var b strings.Builder
	step := 0
	line := func(format string, args ...any) {
		step++
		fmt.Fprintf(&b, "%d. ", step)
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	switch r.Case {
	case triangle.SSS:
		line("Given three sides a = %.4f, b = %.4f, c = %.4f.", t.A, t.B, t.C)
		line("Check the triangle inequality: a + b > c, a + c > b and b + c > a all hold.")
		line("Law of Cosines: α = arccos((b² + c² − a²) / 2bc) = %.4f°.", t.Alpha)
		line("Law of Cosines: β = arccos((a² + c² − b²) / 2ac) = %.4f°.", t.Beta)
		line("Law of Cosines: γ = arccos((a² + b² − c²) / 2ab) = %.4f°.", t.Gamma)
	case triangle.SAS:
		line("Given sides a = %.4f, b = %.4f and the included angle γ = %.4f°.", t.A, t.B, t.Gamma)
		line("Law of Cosines: c = √(a² + b² − 2ab·cos γ) = %.4f.", t.C)
		line("Law of Cosines: α = arccos((b² + c² − a²) / 2bc) = %.4f°.", t.Alpha)
		line("Law of Cosines: β = arccos((a² + c² − b²) / 2ac) = %.4f°.", t.Beta)
	case triangle.ASA:
		line("Given angles α = %.4f°, β = %.4f° and the included side c = %.4f.", t.Alpha, t.Beta, t.C)
		line("Angle sum: γ = 180° − α − β = %.4f°.", t.Gamma)
		line("Law of Sines: a = c·sin α / sin γ = %.4f.", t.A)
		line("Law of Sines: b = c·sin β / sin γ = %.4f.", t.B)
	case triangle.AAS:
		line("Given angles α = %.4f°, β = %.4f° and side a = %.4f opposite α.", t.Alpha, t.Beta, t.A)
		line("Angle sum: γ = 180° − α − β = %.4f°.", t.Gamma)
		line("Law of Sines: b = a·sin β / sin α = %.4f.", t.B)
		line("Law of Sines: c = a·sin γ / sin α = %.4f.", t.C)
	default:
		return "", fmt.Errorf("explain: unsupported case %q", r.Case)
	}
	line("Check: α + β + γ = %.4f°.", t.Alpha+t.Beta+t.Gamma)
	line("Area (Heron's formula) = %.4f, perimeter = %.4f.", t.Area(), t.Perimeter())

	return b.String(), nil
}
