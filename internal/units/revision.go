package units

import (
	"fmt"
	"math"

	"github.com/noxowl/smartspeaker/internal/message"
)

// RevisionKind discriminates a CookingRevision entry: Add and Sub are the
// only variants the propagation formulas consume; Replace exists for
// enum completeness (spec Open Question: out of contract, see DESIGN.md).
type RevisionKind int

const (
	RevisionAdd RevisionKind = iota
	RevisionSub
	RevisionReplace
)

// CookingRevision is a single entity-level adjustment: add, remove
// (subtract), or replace an ingredient's amount.
type CookingRevision struct {
	Kind       RevisionKind
	Ingredient Ingredient
}

func AddRevision(i Ingredient) CookingRevision     { return CookingRevision{Kind: RevisionAdd, Ingredient: i} }
func SubRevision(i Ingredient) CookingRevision     { return CookingRevision{Kind: RevisionSub, Ingredient: i} }
func ReplaceRevision(i Ingredient) CookingRevision { return CookingRevision{Kind: RevisionReplace, Ingredient: i} }

// CookingIngredientLinkComponent links a main ingredient to the seasoning
// components whose amounts scale with it.
type CookingIngredientLinkComponent struct {
	Main       Ingredient
	Components []Ingredient
}

func NewCookingIngredientLinkComponent(main Ingredient, components []Ingredient) CookingIngredientLinkComponent {
	return CookingIngredientLinkComponent{Main: main, Components: components}
}

// CalcComponentsAmountByMainRevision scales every MilliGram, MilliLiter and
// Piece component amount by the fractional change the revision applies to
// the main ingredient; Tbsp, Tsp and Cup components are left as they are. Revisions
// naming a different ingredient than Main, or a Replace revision, leave the
// components unchanged.
func (c CookingIngredientLinkComponent) CalcComponentsAmountByMainRevision(rev CookingRevision) []Ingredient {
	if rev.Kind == RevisionReplace || rev.Ingredient.Name != c.Main.Name {
		return c.Components
	}

	mainAmount := c.Main.Value()
	if mainAmount == 0 {
		return c.Components
	}

	var factor float64
	switch rev.Kind {
	case RevisionSub:
		factor = 1.0 - rev.Ingredient.Value()/mainAmount
	case RevisionAdd:
		factor = 1.0 + rev.Ingredient.Value()/mainAmount
	default:
		return c.Components
	}

	result := make([]Ingredient, len(c.Components))
	for i, ing := range c.Components {
		adjusted := ing.Amount
		switch ing.Amount.tag {
		case tagMilliGram:
			adjusted = withRaw(ing.Amount, int32(math.Round(float64(ing.Amount.raw)*factor)))
		case tagMilliLiter:
			adjusted = withRaw(ing.Amount, int32(math.Round(float64(ing.Amount.raw)*factor)))
		case tagPiece:
			adjusted = withRaw(ing.Amount, int32(math.Round(float64(ing.Amount.quarter)*factor)))
		}
		result[i] = NewIngredient(ing.Name, adjusted)
	}
	return result
}

// CookingIngredientTime associates a base ingredient amount with the cook
// time (in tenths of a minute: 100 == 10 minutes) that amount implies.
type CookingIngredientTime struct {
	Base Ingredient
	Time int32
}

func NewCookingIngredientTime(base Ingredient, time int32) CookingIngredientTime {
	return CookingIngredientTime{Base: base, Time: time}
}

// CalcTimeByRevision recalculates the cook time after applying rev to the
// base ingredient. Returns false if rev names a different ingredient, or
// carries a Replace revision. The result is clamped to [30, 300].
func (c CookingIngredientTime) CalcTimeByRevision(rev CookingRevision) (CookingIngredientTime, bool) {
	if rev.Kind == RevisionReplace || rev.Ingredient.Name != c.Base.Name {
		return CookingIngredientTime{}, false
	}

	baseAmount := c.Base.Value()
	if baseAmount == 0 {
		return CookingIngredientTime{}, false
	}

	var revisedAmount float64
	switch rev.Kind {
	case RevisionSub:
		revisedAmount = baseAmount - rev.Ingredient.Value()
	case RevisionAdd:
		revisedAmount = baseAmount + rev.Ingredient.Value()
	default:
		return CookingIngredientTime{}, false
	}

	adjustmentFactor := 1.0 + math.Sqrt(revisedAmount/baseAmount)
	newTime := int32(math.Round(math.Sqrt(float64(c.Time)) * adjustmentFactor))

	bounded := newTime
	if bounded > 300 {
		bounded = 300
	}
	if bounded < 30 {
		bounded = 30
	}
	return NewCookingIngredientTime(c.Base, bounded), true
}

// ToHumanTime renders the time (tenths of a minute) as "N minutes M
// seconds", or just "N minutes" when there is no seconds remainder. Each
// time unit is 6 seconds; a non-zero remainder rounds up to the next
// multiple of 10 seconds (6 -> 10, 18 -> 20).
func (c CookingIngredientTime) ToHumanTime() message.I18nText {
	minutes := c.Time / 10
	remainingSeconds := (c.Time % 10) * 6

	var roundedSeconds int32
	if remainingSeconds > 0 {
		roundedSeconds = ((remainingSeconds + 9) / 10) * 10
	}

	if roundedSeconds > 0 {
		return message.NewI18nText().
			EN(fmt.Sprintf("%d minutes %d seconds", minutes, roundedSeconds)).
			JA(fmt.Sprintf("%d分%d秒", minutes, roundedSeconds)).
			ZH(fmt.Sprintf("%d分%d秒", minutes, roundedSeconds)).
			KO(fmt.Sprintf("%d분 %d초", minutes, roundedSeconds))
	}
	return message.NewI18nText().
		EN(fmt.Sprintf("%d minutes", minutes)).
		JA(fmt.Sprintf("%d分", minutes)).
		ZH(fmt.Sprintf("%d分", minutes)).
		KO(fmt.Sprintf("%d분", minutes))
}
