package unitcircle

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		deg    float64
		want   int
		wantOK bool
	}{
		{0, 0, true},
		{30, 30, true},
		{360, 0, true},
		{-90, 270, true},
		{405, 45, true},
		{720.0000000000001, 0, true},
		{29.5, 0, false},
		{math.NaN(), 0, false},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.deg)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%v) ok = %v, want %v", tt.deg, ok, tt.wantOK)
			continue
		}
		if ok && got.Degrees != tt.want {
			t.Errorf("Lookup(%v) = %d, want %d", tt.deg, got.Degrees, tt.want)
		}
	}
}

func TestEntriesMatchMath(t *testing.T) {
	t.Parallel()

	for _, e := range Entries() {
		rad := float64(e.Degrees) * math.Pi / 180
		sin, cos := math.Sincos(rad)
		if math.Abs(sin-e.SinVal) > 1e-12 || math.Abs(cos-e.CosVal) > 1e-12 {
			t.Errorf("%d°: table (%v, %v), math (%v, %v)", e.Degrees, e.CosVal, e.SinVal, cos, sin)
		}
	}
}

func TestEntriesIsCopy(t *testing.T) {
	t.Parallel()

	es := Entries()
	es[0].Cos = "changed"
	if e, _ := Lookup(0); e.Cos != "1" {
		t.Errorf("table mutated through Entries(): cos 0 = %q", e.Cos)
	}
}

func TestTan(t *testing.T) {
	t.Parallel()

	e, _ := Lookup(45)
	if v, ok := e.Tan(); !ok || math.Abs(v-1) > 1e-12 {
		t.Errorf("tan 45 = %v, %v; want 1, true", v, ok)
	}
	e, _ = Lookup(90)
	if _, ok := e.Tan(); ok {
		t.Error("tan 90 reported as defined")
	}
}

func TestReference(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want float64 }{
		{30, 30}, {150, 30}, {210, 30}, {330, 30}, {-30, 30}, {390, 30}, {90, 90}, {180, 0},
	}
	for _, tt := range tests {
		if got := Reference(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Reference(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
