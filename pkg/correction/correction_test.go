package correction

import (
	"errors"
	"math"
	"testing"
)

func TestBonferroni(t *testing.T) {
	raw := map[string]float64{"a": 0.01, "b": 0.5, "c": 0.02, "d": 0.3}

	adjusted, err := Bonferroni(raw)
	if err != nil {
		t.Fatalf("Bonferroni failed: %v", err)
	}

	if adjusted["a"] != 0.04 {
		t.Errorf("a = %v, want 0.04", adjusted["a"])
	}
	if adjusted["b"] != 1.0 {
		t.Errorf("b = %v, want 1.0 (clamped)", adjusted["b"])
	}
	if adjusted["c"] != 0.08 {
		t.Errorf("c = %v, want 0.08", adjusted["c"])
	}
}

func TestBenjaminiHochberg(t *testing.T) {
	raw := map[string]float64{"a": 0.01, "b": 0.02, "c": 0.03, "d": 0.5}

	adjusted, err := BenjaminiHochberg(raw)
	if err != nil {
		t.Fatalf("BenjaminiHochberg failed: %v", err)
	}

	want := map[string]float64{"a": 0.04, "b": 0.04, "c": 0.04, "d": 0.5}
	for key, expected := range want {
		if math.Abs(adjusted[key]-expected) > 1e-12 {
			t.Errorf("%s = %v, want %v", key, adjusted[key], expected)
		}
	}
}

func TestBenjaminiHochbergMonotone(t *testing.T) {
	raw := map[int]float64{0: 0.001, 1: 0.008, 2: 0.039, 3: 0.041, 4: 0.042, 5: 0.06, 6: 0.074, 7: 0.205}

	adjusted, err := BenjaminiHochberg(raw)
	if err != nil {
		t.Fatalf("BenjaminiHochberg failed: %v", err)
	}

	// Adjusted values preserve the order of the raw values.
	for i := 1; i < len(raw); i++ {
		if adjusted[i] < adjusted[i-1]-1e-12 {
			t.Errorf("adjusted[%d] = %v < adjusted[%d] = %v", i, adjusted[i], i-1, adjusted[i-1])
		}
	}
	// Every adjusted value is at least its raw value and at most 1.
	for key, p := range raw {
		if adjusted[key] < p || adjusted[key] > 1 {
			t.Errorf("adjusted[%d] = %v outside [%v, 1]", key, adjusted[key], p)
		}
	}
}

func TestBenjaminiYekutieliDominatesBH(t *testing.T) {
	raw := map[string]float64{"a": 0.01, "b": 0.02, "c": 0.03, "d": 0.5}

	bh, err := BenjaminiHochberg(raw)
	if err != nil {
		t.Fatalf("BenjaminiHochberg failed: %v", err)
	}
	by, err := BenjaminiYekutieli(raw)
	if err != nil {
		t.Fatalf("BenjaminiYekutieli failed: %v", err)
	}

	// c(4) = 1 + 1/2 + 1/3 + 1/4 = 25/12
	scale := 1.0 + 0.5 + 1.0/3.0 + 0.25
	for key := range raw {
		expected := math.Min(bh[key]*scale, 1.0)
		if math.Abs(by[key]-expected) > 1e-9 {
			t.Errorf("%s: BY = %v, want %v", key, by[key], expected)
		}
		if by[key] < bh[key] {
			t.Errorf("%s: BY = %v below BH = %v", key, by[key], bh[key])
		}
	}
}

func TestSingleHypothesisUnchanged(t *testing.T) {
	raw := map[string]float64{"only": 0.037}

	for name, procedure := range map[string]Procedure[string]{
		"Bonferroni":         Bonferroni[string],
		"BenjaminiHochberg":  BenjaminiHochberg[string],
		"BenjaminiYekutieli": BenjaminiYekutieli[string],
	} {
		adjusted, err := procedure(raw)
		if err != nil {
			t.Fatalf("%s failed: %v", name, err)
		}
		if adjusted["only"] != 0.037 {
			t.Errorf("%s: single p-value changed to %v", name, adjusted["only"])
		}
	}
}

func TestInvalidPValues(t *testing.T) {
	for name, raw := range map[string]map[string]float64{
		"NaN":      {"a": math.NaN()},
		"negative": {"a": -0.1},
		"above 1":  {"a": 1.5},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := BenjaminiHochberg(raw); !errors.Is(err, ErrInvalidPValue) {
				t.Errorf("expected ErrInvalidPValue, got %v", err)
			}
			if _, err := Bonferroni(raw); !errors.Is(err, ErrInvalidPValue) {
				t.Errorf("expected ErrInvalidPValue, got %v", err)
			}
		})
	}
}

func TestEmptyBatch(t *testing.T) {
	adjusted, err := BenjaminiHochberg(map[string]float64{})
	if err != nil {
		t.Fatalf("BenjaminiHochberg failed on empty batch: %v", err)
	}
	if len(adjusted) != 0 {
		t.Errorf("expected empty result, got %v", adjusted)
	}
}

func TestParse(t *testing.T) {
	if _, err := Parse[string](""); err != nil {
		t.Errorf("Parse(\"\") failed: %v", err)
	}
	for _, name := range []string{"Bonferroni", "Benjamini-Hochberg", "Benjamini-Yekutieli"} {
		if _, err := Parse[string](name); err != nil {
			t.Errorf("Parse(%q) failed: %v", name, err)
		}
	}
	if _, err := Parse[string]("Holm"); !errors.Is(err, ErrUnknownProcedure) {
		t.Errorf("expected ErrUnknownProcedure, got %v", err)
	}
}
