package cooking

import (
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/task"
	"github.com/noxowl/smartspeaker/internal/units"
)

// ExplainRecipeAction speaks a (possibly templated) line of recipe
// narration. Most steps carry DetailNone and simply speak their script
// verbatim; the remaining detail kinds substitute ingredient amounts or a
// cook time into the script's {{.placeholders}}.
type ExplainRecipeAction struct {
	task.BaseAction

	ingredients []units.Ingredient
	detail      ActionDetail
	script      message.I18nText

	hasContent bool
	content    message.IntentContent
	revision   *units.CookingRevision
}

func NewExplainRecipeAction(ingredients []units.Ingredient, detail ActionDetail, script message.I18nText) *ExplainRecipeAction {
	return &ExplainRecipeAction{ingredients: ingredients, detail: detail, script: script}
}

func (a *ExplainRecipeAction) Execute() task.Result {
	if r, stop := a.CheckControlFlags(task.TaskNonVision); stop {
		return r
	}
	if !a.hasContent {
		return task.Result{TaskType: task.TaskNonVision, Code: task.StepFailed}.WithTTS(a.script)
	}
	return task.Result{TaskType: task.TaskNonVision, Code: task.StepSuccess}.WithTTS(a.render())
}

func (a *ExplainRecipeAction) Feed(content task.Content, revision *units.CookingRevision) {
	a.FeedControlIntent(content)
	if env, ok := content.(task.IntentContentEnvelope); ok {
		a.content, a.hasContent = env.Content, true
	}
	if revision != nil {
		a.revision = revision
	}
}

func (a *ExplainRecipeAction) TriggerType() task.TriggerType { return task.ConfirmTrigger() }

func (a *ExplainRecipeAction) ExposeTTSScript() (message.I18nText, bool) { return a.script, true }

func (a *ExplainRecipeAction) ExposeVisionActions() ([]message.VisionAction, bool) { return nil, false }

func (a *ExplainRecipeAction) render() message.I18nText {
	switch a.detail.Kind {
	case DetailExplainNonMutableIngredient:
		return a.renderNonMutableIngredient()
	case DetailExplainMutableIngredient:
		return a.renderMutableIngredient()
	case DetailExplainMutableTime:
		return a.renderMutableTime()
	default:
		return a.script
	}
}

// renderNonMutableIngredient builds the additional_explain variable by
// describing every ingredient: solids get their approximate unit prefixed
// (English/Korean) or suffixed (Japanese/Chinese), everything else is
// spoken by name alone.
func (a *ExplainRecipeAction) renderNonMutableIngredient() message.I18nText {
	build := func(l message.Lang) string {
		parts := make([]string, 0, len(a.ingredients))
		for _, ing := range a.ingredients {
			name := ing.Name.I18nName().For(l)
			if ing.Name.MaterialProperty() != units.Solid {
				parts = append(parts, name)
				continue
			}
			amt, _ := ing.ToApproxUnitI18n()
			unit := amt.I18n().For(l)
			if l == message.LangEN || l == message.LangKO {
				parts = append(parts, unit+" "+name)
			} else {
				parts = append(parts, name+" "+unit)
			}
		}
		out := ""
		for i, p := range parts {
			if i > 0 {
				out += joinSeparator(l)
			}
			out += p
		}
		return out
	}
	vars := map[message.Lang]map[string]string{}
	for _, l := range allLangs {
		vars[l] = map[string]string{"additional_explain": build(l)}
	}
	return renderI18n(a.script, vars)
}

// renderMutableIngredient substitutes each component's ingredient-name-keyed
// placeholder with its approximate unit, scaled by the current revision
// when one names the link's main ingredient.
func (a *ExplainRecipeAction) renderMutableIngredient() message.I18nText {
	link := a.detail.Link
	components := link.Components
	if a.revision != nil {
		components = link.CalcComponentsAmountByMainRevision(*a.revision)
	}
	vars := map[message.Lang]map[string]string{}
	for _, l := range allLangs {
		vars[l] = map[string]string{}
	}
	for _, c := range components {
		amt, _ := c.ToApproxUnitI18n()
		unit := amt.I18n()
		key := c.Name.String()
		for _, l := range allLangs {
			vars[l][key] = unit.For(l)
		}
	}
	return renderI18n(a.script, vars)
}

// renderMutableTime substitutes {{.time}} with the human-readable cook time,
// recalculated via the unit algebra when a revision alters the time's base
// ingredient amount.
func (a *ExplainRecipeAction) renderMutableTime() message.I18nText {
	t := a.detail.Time
	if a.revision != nil {
		if updated, ok := t.CalcTimeByRevision(*a.revision); ok {
			t = updated
		}
	}
	human := t.ToHumanTime()
	vars := map[message.Lang]map[string]string{}
	for _, l := range allLangs {
		vars[l] = map[string]string{"time": human.For(l)}
	}
	return renderI18n(a.script, vars)
}
