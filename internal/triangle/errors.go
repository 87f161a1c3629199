package triangle

import "errors"

// Kind classifies a solver failure.
type Kind string

const (
	// KindInvalidInput means the given quantities cannot describe a triangle.
	KindInvalidInput Kind = "invalid_input"

	// KindCalculation means the input looked valid but the computation
	// produced values outside the domain of a trigonometric function or an
	// inconsistent result.
	KindCalculation Kind = "calculation"
)

// Error is returned by every solver in this package.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

var (
	// ErrInequality is returned when the sides cannot close a triangle.
	ErrInequality = &Error{KindInvalidInput, "invalid triangle: sides violate triangle inequality"}

	// ErrSAS rejects SAS input outside the valid ranges.
	ErrSAS = &Error{KindInvalidInput, "invalid input: sides must be positive and angle between 0 and 180"}

	// ErrAngleSide rejects ASA and AAS input, including angle sums of 180 or more.
	ErrAngleSide = &Error{KindInvalidInput, "invalid input: side must be positive, angles between 0 and 180, and sum < 180"}

	// ErrUnknownCase is returned for a case name other than SSS, SAS, ASA or AAS.
	ErrUnknownCase = &Error{KindInvalidInput, "invalid input: unknown case, want one of SSS, SAS, ASA, AAS"}

	// ErrNotSolved is returned by Verify for values that are not a solved triangle.
	ErrNotSolved = &Error{KindInvalidInput, "invalid input: values do not form a solved triangle"}

	// ErrDistance rejects a non-positive horizontal distance.
	ErrDistance = &Error{KindInvalidInput, "distance must be positive"}

	// ErrHeight rejects a NaN or infinite height.
	ErrHeight = &Error{KindInvalidInput, "height must be a finite number"}

	// ErrElevationRange rejects HeightFromElevation input.
	ErrElevationRange = &Error{KindInvalidInput, "distance must be positive, angle between 0 and 90 exclusive"}

	// ErrAcosDomain is returned when a Law of Cosines argument leaves [-1, 1].
	ErrAcosDomain = &Error{KindCalculation, "calculation error: invalid value for acos"}

	// ErrAngleSum is returned when computed angles miss 180 beyond tolerance.
	ErrAngleSum = &Error{KindCalculation, "calculation error: angles do not sum to 180"}

	// ErrDegenerate is returned when a computed side or angle collapses to zero.
	ErrDegenerate = &Error{KindCalculation, "calculation error: triangle is degenerate"}
)

// KindOf reports the Kind of err, or the empty Kind if err is not an *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}
