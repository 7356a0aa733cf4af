package cooking

import (
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/units"
)

// Recipe is the fixed data a CookingStepBuilder needs for one menu: its
// display name, its ingredient list, which ingredient the measuring and
// boiling steps center on, which ingredients scale alongside it, and the
// literal seasoning-step prose (grounded on the source's hardcoded, unique
// per-recipe sentences rather than a generated one).
type Recipe struct {
	Name          message.I18nText
	Ingredients   []units.Ingredient
	Main          units.IngredientName
	Seasoning     []units.IngredientName
	BoilTime      units.CookingIngredientTime
	SeasonTemplate message.I18nText
}

func (r Recipe) mainIngredient() units.Ingredient {
	for _, i := range r.Ingredients {
		if i.Name == r.Main {
			return i
		}
	}
	return units.Ingredient{}
}

func (r Recipe) seasoningLink() units.CookingIngredientLinkComponent {
	components := make([]units.Ingredient, 0, len(r.Seasoning))
	for _, name := range r.Seasoning {
		for _, i := range r.Ingredients {
			if i.Name == name {
				components = append(components, i)
				break
			}
		}
	}
	return units.NewCookingIngredientLinkComponent(r.mainIngredient(), components)
}

var recipes = map[message.CookingMenu]Recipe{
	message.MenuCarrotSalad: {
		Name: message.NewI18nText().EN("Carrot salad").JA("にんじんサラダ").ZH("胡萝卜沙拉").KO("당근 샐러드"),
		Ingredients: []units.Ingredient{
			units.NewIngredient(units.Carrot, units.MilliGram(1000)),
			units.NewIngredient(units.Salt, units.MilliGram(50)),
			units.NewIngredient(units.Pepper, units.MilliGram(50)),
			units.NewIngredient(units.SesameOil, units.MilliLiter(5)),
		},
		Main:      units.Carrot,
		Seasoning: []units.IngredientName{units.Salt, units.Pepper, units.SesameOil},
		BoilTime:  units.NewCookingIngredientTime(units.NewIngredient(units.Carrot, units.MilliGram(1000)), 100),
		SeasonTemplate: message.NewI18nText().
			KO("삶은 당근을 보울에 담아 소금 {{.salt}}, 후추 {{.pepper}}, 참기름 {{.sesame_oil}}을 넣고 섞어주세요.").
			EN("Put the boiled carrots in a bowl and add {{.salt}} of salt, {{.pepper}} of pepper, and {{.sesame_oil}} of sesame oil.").
			JA("茹でた人参をボウルに入れて塩{{.salt}}、コショウ{{.pepper}}、ごま油{{.sesame_oil}}を入れて混ぜます。").
			ZH("把煮好的胡萝卜放在碗里，加{{.salt}}的盐，{{.pepper}}的胡椒粉，{{.sesame_oil}}的芝麻油。"),
	},
	message.MenuPotatoSalad: {
		Name: message.NewI18nText().EN("Potato salad").JA("ポテトサラダ").ZH("土豆沙拉").KO("감자 샐러드"),
		Ingredients: []units.Ingredient{
			units.NewIngredient(units.Potato, units.MilliGram(1500)),
			units.NewIngredient(units.Salt, units.MilliGram(20)),
			units.NewIngredient(units.Pepper, units.MilliGram(20)),
			units.NewIngredient(units.Mayonnaise, units.MilliLiter(15)),
		},
		Main:      units.Potato,
		Seasoning: []units.IngredientName{units.Salt, units.Pepper, units.Mayonnaise},
		BoilTime:  units.NewCookingIngredientTime(units.NewIngredient(units.Potato, units.MilliGram(1500)), 150),
		SeasonTemplate: message.NewI18nText().
			KO("삶은 감자를 보울에 담아 소금 {{.salt}}, 후추 {{.pepper}}, 마요네즈 {{.mayonnaise}}를 넣고 섞어주세요.").
			EN("Put the boiled potatoes in a bowl and add {{.salt}} of salt, {{.pepper}} of pepper, and {{.mayonnaise}} of mayonnaise.").
			JA("茹でたじゃがいもをボウルに入れて塩{{.salt}}、コショウ{{.pepper}}、マヨネーズ{{.mayonnaise}}を入れて混ぜます。").
			ZH("把煮好的土豆放在碗里，加{{.salt}}的盐，{{.pepper}}的胡椒粉，{{.mayonnaise}}的蛋黄酱。"),
	},
}

// RecipeFor returns the fixed recipe data for a menu, or the zero Recipe if
// the menu is unknown (CookingMenu is a closed enum, so this never happens
// for a value produced by the intent classifier).
func RecipeFor(menu message.CookingMenu) Recipe {
	return recipes[menu]
}
