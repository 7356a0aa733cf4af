package units

import (
	"errors"
	"testing"

	"github.com/noxowl/smartspeaker/internal/message"
)

func TestAmountAddSameTag(t *testing.T) {
	sum, err := MilliGram(100).Add(MilliGram(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.RawInt() != 150 {
		t.Fatalf("got %d, want 150", sum.RawInt())
	}
}

func TestAmountAddMismatchedTag(t *testing.T) {
	_, err := MilliGram(100).Add(MilliLiter(50))
	if !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("got %v, want ErrUnitMismatch", err)
	}
}

func TestAmountSubMismatchedTag(t *testing.T) {
	_, err := Tbsp(Quarter(4)).Sub(Tsp(Quarter(1)))
	if !errors.Is(err, ErrUnitMismatch) {
		t.Fatalf("got %v, want ErrUnitMismatch", err)
	}
}

func TestQuarterI18nSpecialCases(t *testing.T) {
	cases := []struct {
		q    Quarter
		want string
	}{
		{1, "a quarter"},
		{2, "half"},
		{3, "three quarters"},
		{4, "1"},
		{5, "1 and a quarter"},
		{6, "1 and half"},
		{8, "2"},
	}
	for _, c := range cases {
		if got := c.q.I18n().For(message.LangEN); got != c.want {
			t.Errorf("Quarter(%d).I18n().EN() = %q, want %q", c.q, got, c.want)
		}
	}
}

func TestAmountTemplateCode(t *testing.T) {
	if MilliGram(1).TemplateCode() != "mg" {
		t.Fatal("MilliGram should be mg")
	}
	if Tsp(Quarter(1)).TemplateCode() != "tsp" {
		t.Fatal("Tsp should be tsp")
	}
}

func TestAmountI18nTeaspoon(t *testing.T) {
	got := Tsp(Quarter(4)).I18n().For(message.LangEN)
	if got != "1 teaspoon" {
		t.Fatalf("got %q, want %q", got, "1 teaspoon")
	}
}
