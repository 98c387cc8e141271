package parallel

import "testing"

func TestMapPreservesOrder(t *testing.T) {
	inputs := make([]int, 100)
	for i := range inputs {
		inputs[i] = i
	}

	outputs, err := Map(8, inputs, func(n int) int { return n * n })
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}

	if len(outputs) != len(inputs) {
		t.Fatalf("Expected %d outputs, got %d", len(inputs), len(outputs))
	}
	for i, got := range outputs {
		if got != i*i {
			t.Errorf("outputs[%d] = %d, want %d", i, got, i*i)
		}
	}
}

func TestMapEmptyInput(t *testing.T) {
	outputs, err := Map(4, nil, func(n int) int { return n })
	if err != nil {
		t.Fatalf("Map failed: %v", err)
	}
	if len(outputs) != 0 {
		t.Errorf("Expected no outputs, got %d", len(outputs))
	}
}
