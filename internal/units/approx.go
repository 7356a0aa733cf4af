package units

import "math"

const (
	tbspToML  = 15
	tspToML   = 5
	cupToML   = 200
	tbspToMG  = 150
	tspToMG   = 50
	cupToMG   = 2000
)

// weightPerOneCriteria gives (min, max) milligram bounds for "one whole
// piece" of a solid ingredient.
var weightPerOneCriteria = map[IngredientName][2]int32{
	Carrot: {1000, 3000},
	Onion:  {2000, 3000},
	Potato: {700, 3000},
}

func (n IngredientName) weightPerOneCriteria() (min, max int32) {
	c, ok := weightPerOneCriteria[n]
	if !ok {
		return 0, 0
	}
	return c[0], c[1]
}

// perimeterCriteria gives (perimeter_cm, weight_mg) reference points for
// converting a measured contour perimeter into an estimated weight.
var perimeterCriteria = map[IngredientName][2]float64{
	Carrot: {60.0, 1000},
	Potato: {60.0, 700},
}

// AmountToApproxQuarter returns round(4*lhs/rhs) clamped to >= 1 when
// rhs != 0; returns 0 when rhs == 0.
func AmountToApproxQuarter(lhs, rhs int32) Quarter {
	if rhs == 0 {
		return Quarter(0)
	}
	q := int32(math.Round((float64(lhs) / float64(rhs)) * 4.0))
	if q < 1 {
		q = 1
	}
	return Quarter(q)
}

// ToApproxUnitI18n renders the ingredient's amount as a human-meaningful
// approximate unit (teaspoon/tablespoon/piece) per §4.9.
func (i Ingredient) ToApproxUnitI18n() (Amount, bool) {
	switch i.Amount.tag {
	case tagMilliGram:
		amount := i.Amount.raw
		switch i.Name.MaterialProperty() {
		case Powder:
			if amount < tbspToMG {
				return Tsp(AmountToApproxQuarter(amount, tspToMG)), true
			}
			return Tbsp(AmountToApproxQuarter(amount, tbspToMG)), true
		case Solid:
			min, max := i.Name.weightPerOneCriteria()
			if amount >= min && amount <= max {
				return Piece(Quarter(4)), true
			}
			return Piece(AmountToApproxQuarter(amount, min)), true
		default:
			return i.Amount, true
		}
	case tagMilliLiter:
		amount := i.Amount.raw
		if i.Name.MaterialProperty() == Liquid {
			if amount < tbspToML {
				return Tsp(AmountToApproxQuarter(amount, tspToML)), true
			}
			return Tbsp(AmountToApproxQuarter(amount, tbspToML)), true
		}
		return i.Amount, true
	default:
		return i.Amount, true
	}
}

// GetWeightPerPerimeter estimates a solid ingredient's weight in milligrams
// from a measured contour perimeter (centimeters), per §4.9. Returns false
// for ingredients without calibration criteria.
func GetWeightPerPerimeter(name IngredientName, perimeterCM float64) (Amount, bool) {
	c, ok := perimeterCriteria[name]
	if !ok {
		return MilliGram(0), false
	}
	cPerimeter, cWeight := c[0], c[1]

	adjustedPerimeter := perimeterCM * 1.05
	calculatedWeight := (adjustedPerimeter / cPerimeter) * cWeight
	weightWithError := calculatedWeight * 0.95

	var rounded int32
	if perimeterCM >= 50.0 {
		rounded = int32(math.Round(weightWithError/25.0)) * 25
	} else {
		rounded = int32(math.Round(weightWithError/2.5)) * 2
	}
	return MilliGram(rounded), true
}
