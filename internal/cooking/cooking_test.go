package cooking

import (
	"strings"
	"testing"

	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/task"
	"github.com/noxowl/smartspeaker/internal/units"
)

func nextIntent() task.Content {
	return task.IntentContentEnvelope{Content: message.IntentContent{Action: message.IntentNext}}
}

func TestCookingStepBuilderCarrotSaladFirstStepMentionsMenuAndOkBoilerplate(t *testing.T) {
	steps := NewCookingStepBuilder(false).Build(message.MenuCarrotSalad)
	first := steps[0]
	first.Feed(nextIntent(), nil)
	r := first.Execute()

	ja := r.TTS.For(message.LangJA)
	if !strings.Contains(ja, "にんじんサラダ") {
		t.Fatalf("got %q, want it to mention the menu name", ja)
	}
	if !strings.Contains(ja, "オッケー") {
		t.Fatalf("got %q, want it to mention the ok answer", ja)
	}
}

func TestExplainNonMutableIngredientRendersSolidsWithUnitAndOthersByNameAlone(t *testing.T) {
	r := RecipeFor(message.MenuCarrotSalad)
	a := NewExplainRecipeAction(r.Ingredients, ExplainNonMutableIngredientDetail(), ingredientsIntroText())
	a.Feed(nextIntent(), nil)
	result := a.Execute()

	en := result.TTS.For(message.LangEN)
	if !strings.Contains(en, "piece carrot") {
		t.Fatalf("got %q, want a piece-based carrot description", en)
	}
	if !strings.Contains(en, "salt") || !strings.Contains(en, "pepper") || !strings.Contains(en, "sesame oil") {
		t.Fatalf("got %q, want every ingredient named", en)
	}
}

func TestExplainMutableIngredientScalesComponentsByMainRevision(t *testing.T) {
	r := RecipeFor(message.MenuCarrotSalad)
	link := r.seasoningLink()
	a := NewExplainRecipeAction(r.Ingredients, ExplainMutableIngredientDetail(link), r.SeasonTemplate)

	rev := units.SubRevision(units.NewIngredient(units.Carrot, units.MilliGram(250)))
	a.Feed(nextIntent(), &rev)
	result := a.Execute()

	wantComponents := link.CalcComponentsAmountByMainRevision(rev)
	saltIngredient, _ := findIngredient(wantComponents, units.Salt)
	saltAmt, _ := saltIngredient.ToApproxUnitI18n()
	wantSalt := saltAmt.I18n().For(message.LangEN)

	en := result.TTS.For(message.LangEN)
	if !strings.Contains(en, wantSalt) {
		t.Fatalf("got %q, want it to contain the revised salt amount %q", en, wantSalt)
	}
}

func TestExplainMutableTimeRecalculatesHumanTimeFromRevision(t *testing.T) {
	r := RecipeFor(message.MenuCarrotSalad)
	a := NewExplainRecipeAction([]units.Ingredient{r.mainIngredient()}, ExplainMutableTimeDetail(r.BoilTime), boilText(r))

	rev := units.AddRevision(units.NewIngredient(units.Carrot, units.MilliGram(1000)))
	a.Feed(nextIntent(), &rev)
	result := a.Execute()

	updated, ok := r.BoilTime.CalcTimeByRevision(rev)
	if !ok {
		t.Fatalf("expected the revision to apply to the boil time")
	}
	want := updated.ToHumanTime().For(message.LangEN)

	en := result.TTS.For(message.LangEN)
	if !strings.Contains(en, want) {
		t.Fatalf("got %q, want it to contain the recalculated time %q", en, want)
	}
}

func TestVisionBasedIngredientMeasureActionDerivesRevisionFromPerimeter(t *testing.T) {
	r := RecipeFor(message.MenuCarrotSalad)
	main := r.mainIngredient()
	a := NewVisionBasedIngredientMeasureAction(
		[]units.Ingredient{main},
		MeasureWholeIngredientDetail(),
		message.VisionObjectDetectionWithAruco,
		checkedText(),
	)

	content := message.VisionContent{
		Action: message.VisionObjectDetectionWithAruco,
		Object: message.ObjectCarrot,
		Slots: []message.VisionSlot{
			message.VisionObject{Object: message.ObjectCarrot, Size: message.ObjectSize{Perimeter: 60, Width: 20, Height: 10}},
		},
	}
	a.Feed(task.VisionContentEnvelope{Content: content}, nil)
	result := a.Execute()

	if result.Code != task.StepSuccess {
		t.Fatalf("got code %v, want StepSuccess", result.Code)
	}
	if result.Revision == nil {
		t.Fatalf("expected a revision to be derived from the measurement")
	}
	measured, _ := units.GetWeightPerPerimeter(units.Carrot, 60)
	wantDiff := measured.RawInt() - main.Amount.RawInt()
	if wantDiff >= 0 && (result.Revision.Kind != units.RevisionAdd || result.Revision.Ingredient.Amount.RawInt() != wantDiff) {
		t.Fatalf("got revision %+v, want Add(%d)", result.Revision, wantDiff)
	}
}

func TestVisionBasedIngredientMeasureActionFailsWithoutContent(t *testing.T) {
	a := NewVisionBasedIngredientMeasureAction(nil, MeasureWholeIngredientDetail(), message.VisionObjectDetectionWithAruco, checkedText())
	result := a.Execute()
	if result.Code != task.StepFailed {
		t.Fatalf("got code %v, want StepFailed when no content has been fed", result.Code)
	}
}

func TestCookingStepBuilderInsertsMeasurementStepsOnlyWhenVisionEnabled(t *testing.T) {
	withoutVision := NewCookingStepBuilder(false).Build(message.MenuCarrotSalad)
	withVision := NewCookingStepBuilder(true).Build(message.MenuCarrotSalad)

	if len(withVision) <= len(withoutVision) {
		t.Fatalf("expected vision-enabled build to add steps: got %d vs %d", len(withVision), len(withoutVision))
	}

	var measureSteps int
	for _, s := range withVision {
		if _, ok := s.(*VisionBasedIngredientMeasureAction); ok {
			measureSteps++
		}
	}
	if measureSteps != 2 {
		t.Fatalf("got %d VisionBasedIngredientMeasureAction steps, want 2 (whole + cut)", measureSteps)
	}
}

func TestCookingStepBuilderBuildsPotatoSaladWithItsOwnIngredients(t *testing.T) {
	steps := NewCookingStepBuilder(false).Build(message.MenuPotatoSalad)
	first := steps[0]
	first.Feed(nextIntent(), nil)
	r := first.Execute()

	en := r.TTS.For(message.LangEN)
	if !strings.Contains(en, "Potato salad") {
		t.Fatalf("got %q, want it to mention Potato salad", en)
	}
}
