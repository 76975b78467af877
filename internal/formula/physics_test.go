package formula

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sivchari/calc/internal/arith"
)

func TestPhysics_Eval(t *testing.T) {
	tests := []struct {
		key    string
		values []float64
		want   float64
		unit   string
	}{
		{"velocity", []float64{100, 8}, 12.5, "m/s"},
		{"displacement", []float64{3, 4}, 12, "m"},
		{"force", []float64{10, 9.8}, 98, "N"},
		{"kinetic", []float64{2, 3}, 9, "J"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			p, err := LookupPhysics(tt.key)
			if err != nil {
				t.Fatalf("LookupPhysics(%q) error: %v", tt.key, err)
			}

			got, err := p.Eval(tt.values...)
			if err != nil {
				t.Fatalf("Eval() unexpected error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Eval(%v) = %v, want %v", tt.values, got, tt.want)
			}

			if p.Unit != tt.unit {
				t.Errorf("unit = %s, want %s", p.Unit, tt.unit)
			}
		})
	}
}

func TestPhysics_Errors(t *testing.T) {
	velocity, err := LookupPhysics("velocity")
	if err != nil {
		t.Fatalf("LookupPhysics() error: %v", err)
	}

	if _, err := velocity.Eval(10, 0); !errors.Is(err, arith.ErrDivisionByZero) {
		t.Errorf("Eval(10, 0) error = %v, want ErrDivisionByZero", err)
	}

	if _, err := velocity.Eval(10); err == nil {
		t.Error("Eval with one value should fail")
	}

	if _, err := LookupPhysics("momentum"); !errors.Is(err, ErrUnknownFormula) {
		t.Errorf("LookupPhysics(momentum) error = %v, want ErrUnknownFormula", err)
	}
}

func TestPhysicsFormulas(t *testing.T) {
	var keys []string
	for _, p := range PhysicsFormulas() {
		keys = append(keys, p.Key)
	}

	want := []string{"velocity", "displacement", "force", "kinetic"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("formulas mismatch (-want +got):\n%s", diff)
	}
}
