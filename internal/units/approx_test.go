package units

import "testing"

func TestAmountToApproxQuarterClampsToOne(t *testing.T) {
	if got := AmountToApproxQuarter(1, 1000); got != Quarter(1) {
		t.Fatalf("got %v, want 1 (clamped)", got)
	}
}

func TestAmountToApproxQuarterZeroDivisor(t *testing.T) {
	if got := AmountToApproxQuarter(50, 0); got != Quarter(0) {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestToApproxUnitI18nSalt(t *testing.T) {
	ing := NewIngredient(Salt, MilliGram(50))
	amt, ok := ing.ToApproxUnitI18n()
	if !ok {
		t.Fatal("expected ok")
	}
	if amt.TemplateCode() != "tsp" {
		t.Fatalf("got %s, want tsp", amt.TemplateCode())
	}
	if amt.RawInt() != 4 {
		t.Fatalf("got %d quarters, want 4", amt.RawInt())
	}
}

func TestGetWeightPerPerimeterCarrot60cm(t *testing.T) {
	amt, ok := GetWeightPerPerimeter(Carrot, 60.0)
	if !ok {
		t.Fatal("expected ok")
	}
	if amt.RawInt() != 1000 {
		t.Fatalf("got %d, want 1000", amt.RawInt())
	}
}

func TestGetWeightPerPerimeterUnsupportedIngredient(t *testing.T) {
	if _, ok := GetWeightPerPerimeter(Onion, 60.0); ok {
		t.Fatal("expected not ok for onion")
	}
}
