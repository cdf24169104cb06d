package gacore

import "testing"

func TestFormulaIsFixedAndFixedBit(t *testing.T) {
	f := NewFormula(3, 2)
	f.Fix[2] = true
	f.FixedValue[2] = true

	if f.IsFixed(1) {
		t.Errorf("IsFixed(1) = true, want false")
	}
	if !f.IsFixed(2) {
		t.Errorf("IsFixed(2) = false, want true")
	}
	if got := f.FixedBit(2); got != 1 {
		t.Errorf("FixedBit(2) = %d, want 1", got)
	}
}

func TestNewFormulaAllocatesIndexZero(t *testing.T) {
	f := NewFormula(5, 1)
	if len(f.Fix) != 6 || len(f.FixedValue) != 6 {
		t.Fatalf("len(Fix)=%d len(FixedValue)=%d, want 6,6", len(f.Fix), len(f.FixedValue))
	}
}
