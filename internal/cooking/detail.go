package cooking

import "github.com/noxowl/smartspeaker/internal/units"

// DetailKind is the closed set of rendering behaviors a cooking action can
// carry, mirroring the source's CookingActionDetail enum.
type DetailKind int

const (
	DetailNone DetailKind = iota
	DetailExplainNonMutableIngredient
	DetailExplainMutableIngredient
	DetailExplainMutableTime
	DetailMeasureWholeIngredient
	DetailMeasureCutIngredient
)

// ActionDetail carries whichever payload its Kind needs: Link for
// ExplainMutableIngredient, Time for ExplainMutableTime. The zero value is
// DetailNone.
type ActionDetail struct {
	Kind DetailKind
	Link units.CookingIngredientLinkComponent
	Time units.CookingIngredientTime
}

func NoneDetail() ActionDetail { return ActionDetail{Kind: DetailNone} }

func ExplainNonMutableIngredientDetail() ActionDetail {
	return ActionDetail{Kind: DetailExplainNonMutableIngredient}
}

func ExplainMutableIngredientDetail(link units.CookingIngredientLinkComponent) ActionDetail {
	return ActionDetail{Kind: DetailExplainMutableIngredient, Link: link}
}

func ExplainMutableTimeDetail(t units.CookingIngredientTime) ActionDetail {
	return ActionDetail{Kind: DetailExplainMutableTime, Time: t}
}

func MeasureWholeIngredientDetail() ActionDetail {
	return ActionDetail{Kind: DetailMeasureWholeIngredient}
}

func MeasureCutIngredientDetail() ActionDetail {
	return ActionDetail{Kind: DetailMeasureCutIngredient}
}
