package cooking

import (
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/task"
	"github.com/noxowl/smartspeaker/internal/units"
)

// VisionBasedIngredientMeasureAction pauses the task until the vision
// pipeline reports a detection, then derives a CookingRevision describing
// how far the measured ingredient departs from the recipe's expectation.
type VisionBasedIngredientMeasureAction struct {
	task.BaseAction

	ingredients  []units.Ingredient
	detail       ActionDetail
	visionAction message.VisionAction
	script       message.I18nText

	hasContent bool
	content    message.VisionContent
	revision   *units.CookingRevision
}

func NewVisionBasedIngredientMeasureAction(ingredients []units.Ingredient, detail ActionDetail, visionAction message.VisionAction, script message.I18nText) *VisionBasedIngredientMeasureAction {
	return &VisionBasedIngredientMeasureAction{ingredients: ingredients, detail: detail, visionAction: visionAction, script: script}
}

func (a *VisionBasedIngredientMeasureAction) Execute() task.Result {
	if r, stop := a.CheckControlFlags(task.TaskVision); stop {
		return r
	}
	if !a.hasContent {
		return task.Result{TaskType: task.TaskVision, Code: task.StepFailed}.WithTTS(a.script)
	}
	if a.content.Action == message.VisionNone {
		return task.Result{TaskType: task.TaskVision, Code: task.StepSuccess}.WithTTS(a.script)
	}
	return a.measure()
}

// measure looks up the detected object against this action's expected
// ingredient and derives an Add/Sub revision from the difference between
// the expected amount and the measured perimeter-to-weight estimate.
func (a *VisionBasedIngredientMeasureAction) measure() task.Result {
	fail := task.Result{TaskType: task.TaskVision, Code: task.StepFailed}.WithTTS(a.script)

	obj, ok := a.content.ObjectSlot()
	if !ok {
		return fail
	}
	name, ok := ingredientForDetectedObject(obj.Object)
	if !ok {
		return fail
	}
	expected, ok := findIngredient(a.ingredients, name)
	if !ok {
		return fail
	}
	measured, ok := units.GetWeightPerPerimeter(name, obj.Size.Perimeter)
	if !ok {
		return fail
	}

	diff := measured.RawInt() - expected.Amount.RawInt()
	var rev units.CookingRevision
	if diff >= 0 {
		rev = units.AddRevision(units.NewIngredient(name, units.MilliGram(diff)))
	} else {
		rev = units.SubRevision(units.NewIngredient(name, units.MilliGram(-diff)))
	}

	r := task.Result{TaskType: task.TaskVision, Code: task.StepSuccess, Revision: &rev}
	return r.WithTTS(a.script)
}

func ingredientForDetectedObject(o message.DetectableObject) (units.IngredientName, bool) {
	switch o {
	case message.ObjectCarrot:
		return units.Carrot, true
	case message.ObjectPotato:
		return units.Potato, true
	case message.ObjectOnion:
		return units.Onion, true
	default:
		return 0, false
	}
}

func findIngredient(ingredients []units.Ingredient, name units.IngredientName) (units.Ingredient, bool) {
	for _, i := range ingredients {
		if i.Name == name {
			return i, true
		}
	}
	return units.Ingredient{}, false
}

func (a *VisionBasedIngredientMeasureAction) Feed(content task.Content, revision *units.CookingRevision) {
	a.FeedControlIntent(content)
	if env, ok := content.(task.VisionContentEnvelope); ok {
		a.content, a.hasContent = env.Content, true
	}
	if revision != nil {
		a.revision = revision
	}
}

func (a *VisionBasedIngredientMeasureAction) TriggerType() task.TriggerType {
	return task.VisionTrigger([]message.VisionAction{a.visionAction})
}

func (a *VisionBasedIngredientMeasureAction) ExposeTTSScript() (message.I18nText, bool) {
	return a.script, true
}

func (a *VisionBasedIngredientMeasureAction) ExposeVisionActions() ([]message.VisionAction, bool) {
	return []message.VisionAction{a.visionAction}, true
}
