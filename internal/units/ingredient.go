// Package units implements the cooking ingredient amount algebra: quarters,
// approximate units, and revision propagation across amounts and times. It
// depends only on the message package (for I18nText) and the standard
// library.
package units

import "github.com/noxowl/smartspeaker/internal/message"

// IngredientName is a closed enumeration of the ingredients the cooking
// domain knows about.
type IngredientName int

const (
	Salt IngredientName = iota
	Pepper
	Sugar
	SoySauce
	Sesame
	SesameOil
	Miso
	Sake
	Mirin
	Carrot
	Onion
	Potato
	Mayonnaise
)

var ingredientNames = map[IngredientName]string{
	Salt: "salt", Pepper: "pepper", Sugar: "sugar", SoySauce: "soy_sauce",
	Sesame: "sesame", SesameOil: "sesame_oil", Miso: "miso", Sake: "sake",
	Mirin: "mirin", Carrot: "carrot", Onion: "onion", Potato: "potato",
	Mayonnaise: "mayonnaise",
}

func (n IngredientName) String() string {
	if s, ok := ingredientNames[n]; ok {
		return s
	}
	return "unknown_ingredient"
}

// MaterialProperty is the physical form an ingredient takes, which governs
// how it is approximated to human-meaningful units.
type MaterialProperty int

const (
	Solid MaterialProperty = iota
	Liquid
	Powder
	Gas
)

var materialProperties = map[IngredientName]MaterialProperty{
	Salt: Powder, Pepper: Powder, Sugar: Powder,
	SoySauce: Liquid, SesameOil: Liquid, Miso: Liquid, Sake: Liquid, Mirin: Liquid,
	Sesame: Powder, Mayonnaise: Liquid,
	Carrot: Solid, Onion: Solid, Potato: Solid,
}

// MaterialProperty returns the ingredient's physical form.
func (n IngredientName) MaterialProperty() MaterialProperty {
	if p, ok := materialProperties[n]; ok {
		return p
	}
	return Solid
}

// i18nNames provides the multilingual display name for each ingredient,
// used by ExplainRecipeAction's template rendering.
var i18nNames = map[IngredientName]message.I18nText{
	Salt:       message.NewI18nText().EN("salt").JA("塩").ZH("盐").KO("소금"),
	Pepper:     message.NewI18nText().EN("pepper").JA("胡椒").ZH("胡椒").KO("후추"),
	Sugar:      message.NewI18nText().EN("sugar").JA("砂糖").ZH("糖").KO("설탕"),
	SoySauce:   message.NewI18nText().EN("soy sauce").JA("醤油").ZH("酱油").KO("간장"),
	Sesame:     message.NewI18nText().EN("sesame").JA("ごま").ZH("芝麻").KO("참깨"),
	SesameOil:  message.NewI18nText().EN("sesame oil").JA("ごま油").ZH("芝麻油").KO("참기름"),
	Miso:       message.NewI18nText().EN("miso").JA("味噌").ZH("味噌").KO("된장"),
	Sake:       message.NewI18nText().EN("sake").JA("酒").ZH("酒").KO("술"),
	Mirin:      message.NewI18nText().EN("mirin").JA("みりん").ZH("味醂").KO("미림"),
	Carrot:     message.NewI18nText().EN("carrot").JA("人参").ZH("胡萝卜").KO("당근"),
	Onion:      message.NewI18nText().EN("onion").JA("玉ねぎ").ZH("洋葱").KO("양파"),
	Potato:     message.NewI18nText().EN("potato").JA("じゃがいも").ZH("土豆").KO("감자"),
	Mayonnaise: message.NewI18nText().EN("mayonnaise").JA("マヨネーズ").ZH("蛋黄酱").KO("마요네즈"),
}

// I18nName returns the multilingual display name of the ingredient.
func (n IngredientName) I18nName() message.I18nText {
	if t, ok := i18nNames[n]; ok {
		return t
	}
	return message.NewI18nText()
}

// Ingredient pairs a name with an amount.
type Ingredient struct {
	Name   IngredientName
	Amount Amount
}

func NewIngredient(name IngredientName, amount Amount) Ingredient {
	return Ingredient{Name: name, Amount: amount}
}

// Value returns the ingredient's raw numeric amount (see Amount.Value).
func (i Ingredient) Value() float64 {
	return i.Amount.Value()
}
