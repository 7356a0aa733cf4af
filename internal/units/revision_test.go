package units

import (
	"testing"

	"github.com/noxowl/smartspeaker/internal/message"
)

func TestCalcComponentsAmountByMainRevisionScenario(t *testing.T) {
	link := NewCookingIngredientLinkComponent(
		NewIngredient(Carrot, MilliGram(1000)),
		[]Ingredient{
			NewIngredient(Salt, MilliGram(50)),
			NewIngredient(Pepper, MilliGram(50)),
			NewIngredient(SesameOil, MilliLiter(5)),
		},
	)

	result := link.CalcComponentsAmountByMainRevision(SubRevision(NewIngredient(Carrot, MilliGram(250))))

	want := map[IngredientName]int32{Salt: 38, Pepper: 38, SesameOil: 4}
	for _, ing := range result {
		if got := ing.Amount.RawInt(); got != want[ing.Name] {
			t.Errorf("%s: got %d, want %d", ing.Name, got, want[ing.Name])
		}
	}
}

func TestCalcComponentsAmountByMainRevisionFullSubtractionZeroesComponents(t *testing.T) {
	link := NewCookingIngredientLinkComponent(
		NewIngredient(Carrot, MilliGram(1000)),
		[]Ingredient{NewIngredient(Salt, MilliGram(80))},
	)

	result := link.CalcComponentsAmountByMainRevision(SubRevision(NewIngredient(Carrot, MilliGram(1000))))

	if len(result) != 1 || result[0].Amount.RawInt() != 0 {
		t.Fatalf("expected components scaled to 0, got %+v", result)
	}
}

func TestCalcComponentsAmountByMainRevisionIgnoresMismatchedIngredient(t *testing.T) {
	link := NewCookingIngredientLinkComponent(
		NewIngredient(Carrot, MilliGram(1000)),
		[]Ingredient{NewIngredient(Salt, MilliGram(50))},
	)

	result := link.CalcComponentsAmountByMainRevision(SubRevision(NewIngredient(Onion, MilliGram(100))))

	if result[0].Amount.RawInt() != 50 {
		t.Fatalf("expected unchanged amount, got %d", result[0].Amount.RawInt())
	}
}

func TestCalcTimeByRevisionScenario(t *testing.T) {
	base := NewCookingIngredientTime(NewIngredient(Carrot, MilliGram(1000)), 100)

	revised, ok := base.CalcTimeByRevision(AddRevision(NewIngredient(Carrot, MilliGram(1000))))
	if !ok {
		t.Fatal("expected ok")
	}
	if revised.Time != 30 {
		t.Fatalf("got %d, want 30 (clamped)", revised.Time)
	}
	if got := revised.ToHumanTime().For(message.LangEN); got != "3 minutes" {
		t.Fatalf("got %q, want %q", got, "3 minutes")
	}
}

func TestCalcTimeByRevisionOutOfRangeIsClamped(t *testing.T) {
	base := NewCookingIngredientTime(NewIngredient(Carrot, MilliGram(1000)), 10)

	revised, ok := base.CalcTimeByRevision(SubRevision(NewIngredient(Carrot, MilliGram(999))))
	if !ok {
		t.Fatal("expected ok")
	}
	if revised.Time < 30 || revised.Time > 300 {
		t.Fatalf("time %d out of bounds [30,300]", revised.Time)
	}
}

func TestToHumanTimeWithSecondsRemainder(t *testing.T) {
	ci := NewCookingIngredientTime(NewIngredient(Carrot, MilliGram(1000)), 63)
	got := ci.ToHumanTime().For(message.LangEN)
	if got != "6 minutes 20 seconds" {
		t.Fatalf("got %q", got)
	}
}
