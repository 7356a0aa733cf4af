package cooking

import (
	"fmt"

	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/task"
	"github.com/noxowl/smartspeaker/internal/units"
)

// CookingStepBuilder constructs the ordered step list for a menu. When
// vision is enabled, three measurement steps (prompt, measuring, detect) are inserted
// before both the whole-ingredient and cut-ingredient scaling points.
type CookingStepBuilder struct {
	vision bool
}

func NewCookingStepBuilder(vision bool) *CookingStepBuilder {
	return &CookingStepBuilder{vision: vision}
}

func (b *CookingStepBuilder) Build(menu message.CookingMenu) []task.ActionExecutable {
	r := RecipeFor(menu)
	main := r.mainIngredient()

	steps := []task.ActionExecutable{
		NewExplainRecipeAction(nil, NoneDetail(), introText(r)),
		NewExplainRecipeAction(r.Ingredients, ExplainNonMutableIngredientDetail(), ingredientsIntroText()),
		NewExplainRecipeAction(nil, NoneDetail(), prepareMainText(r)),
	}

	if b.vision {
		steps = append(steps,
			NewExplainRecipeAction(nil, NoneDetail(), measurePromptText(r, false)),
			NewExplainRecipeAction(nil, NoneDetail(), measuringText()),
			NewVisionBasedIngredientMeasureAction(
				[]units.Ingredient{main},
				MeasureWholeIngredientDetail(),
				message.VisionObjectDetectionWithAruco,
				checkedText(),
			),
		)
	}

	steps = append(steps, NewExplainRecipeAction(nil, NoneDetail(), cutMainText(r)))

	if b.vision {
		steps = append(steps,
			NewExplainRecipeAction(nil, NoneDetail(), measurePromptText(r, true)),
			NewExplainRecipeAction(nil, NoneDetail(), measuringText()),
			NewVisionBasedIngredientMeasureAction(
				[]units.Ingredient{units.NewIngredient(r.Main, units.MilliGram(10))},
				MeasureCutIngredientDetail(),
				message.VisionObjectDetectionWithAruco,
				checkedText(),
			),
		)
	}

	steps = append(steps,
		NewExplainRecipeAction([]units.Ingredient{main}, ExplainMutableTimeDetail(r.BoilTime), boilText(r)),
		NewExplainRecipeAction(r.Ingredients, ExplainMutableIngredientDetail(r.seasoningLink()), r.SeasonTemplate),
		NewExplainRecipeAction(nil, NoneDetail(), plateText()),
		NewExplainRecipeAction(nil, NoneDetail(), doneText()),
	)

	return steps
}

func introText(r Recipe) message.I18nText {
	return message.NewI18nText().
		EN(fmt.Sprintf("Let's start cooking %s. Tell me when you ready with an answer such as 'ok'.", r.Name.For(message.LangEN))).
		JA(fmt.Sprintf("%sの調理を始めます。準備ができたら「オッケー」などの答えで教えてください。", r.Name.For(message.LangJA))).
		ZH(fmt.Sprintf("让我们开始做%s。准备好了就告诉我，比如说\"好的\"。", r.Name.For(message.LangZH))).
		KO(fmt.Sprintf("%s 요리를 시작합니다. 준비가 되면 '오케이'와 같은 대답으로 알려주세요.", r.Name.For(message.LangKO)))
}

func ingredientsIntroText() message.I18nText {
	return message.NewI18nText().
		KO("요리 재료 설명을 시작합니다. {{.additional_explain}} 가 필요합니다. 다음으로 넘어갈 준비가 되었으면 알려주세요. 다시 한 번 들으시려면 '다시 알려 줘' 라고 말씀해주세요.").
		EN("Let's start explaining ingredients. {{.additional_explain}} is required. Let me know when you are ready to proceed. If you want to hear it again, please say 'tell me again'.").
		JA("食材の説明を始めます。{{.additional_explain}} が必要です。次に進む準備ができたら教えてください。もう一度聞きたい場合は、「もう一度教えて」と言ってください。").
		ZH("让我们开始解释食材。{{.additional_explain}} 是必需的。准备好后请告诉我。如果你想再听一遍，请说\"再告诉我一遍\"。")
}

func prepareMainText(r Recipe) message.I18nText {
	name := r.Main.I18nName()
	return message.NewI18nText().
		KO(fmt.Sprintf("먼저 %s을(를) 준비합니다.", name.For(message.LangKO))).
		EN(fmt.Sprintf("First, prepare the %s.", name.For(message.LangEN))).
		JA(fmt.Sprintf("まず%sを用意します。", name.For(message.LangJA))).
		ZH(fmt.Sprintf("首先准备%s。", name.For(message.LangZH)))
}

func measurePromptText(r Recipe, cut bool) message.I18nText {
	name := r.Main.I18nName()
	if cut {
		return message.NewI18nText().
			KO("보다 정확한 레시피 안내를 위해 요리 재료의 크기 측정을 시작합니다. 잘라낸 한 조각을 측정용 도마 위에 올려주세요. 준비가 되면 '오케이'와 같은 대답으로 알려주세요.").
			EN("To provide more accurate recipe guidance, we will start measuring the size of the cooking ingredients. Place one of the cut pieces on the measuring chopping board. Let us know when it's ready with a response like 'okay'").
			JA("より正確なレシピ案内のために食材の大きさを測定し始めます。切り分けた一つを測定用のまな板の上に置いてください。準備ができたら「オッケー」などの答えで教えてください。").
			ZH("为了提供更准确的食谱指导，我们将开始测量烹饪食材的大小。把切好的一块放在量板上。准备好了就告诉我，比如说\"好的\"。")
	}
	return message.NewI18nText().
		KO(fmt.Sprintf("보다 정확한 레시피 안내를 위해 요리 재료의 크기 측정을 시작합니다. %s을(를) 측정용 도마 위에 올려주세요. 준비가 되면 '오케이'와 같은 대답으로 알려주세요.", name.For(message.LangKO))).
		EN(fmt.Sprintf("To provide more accurate recipe guidance, we will start measuring the size of the cooking ingredients. Place the %s on the measuring chopping board. Let us know when it's ready with a response like 'okay'", name.For(message.LangEN))).
		JA(fmt.Sprintf("より正確なレシピ案内のために食材の大きさを測定し始めます。%sを測定用のまな板の上に置いてください。準備ができたら「オッケー」などの答えで教えてください。", name.For(message.LangJA))).
		ZH(fmt.Sprintf("为了提供更准确的食谱指导，我们将开始测量烹饪食材的大小。把%s放在量板上。准备好了就告诉我，比如说\"好的\"。", name.For(message.LangZH)))
}

func measuringText() message.I18nText {
	return message.NewI18nText().
		KO("측정중입니다. 움직이지 말고 기다려 주세요.").
		EN("I will start measuring. Please do not move and wait.").
		JA("測定を始めます。動かずにお待ちください。").
		ZH("我将开始测量。请不要动，等一下。")
}

func checkedText() message.I18nText {
	return message.NewI18nText().
		KO("확인했습니다.").
		EN("Checked.").
		JA("確認しました。").
		ZH("确认了。")
}

func cutMainText(r Recipe) message.I18nText {
	name := r.Main.I18nName()
	return message.NewI18nText().
		KO(fmt.Sprintf("계속해서 %s을(를) 먹기 좋은 크기로 썰어주세요.", name.For(message.LangKO))).
		EN(fmt.Sprintf("Please continue to cut the %s into bite-sized pieces.", name.For(message.LangEN))).
		JA(fmt.Sprintf("続いて、%sを食べやすい大きさに切ってください。", name.For(message.LangJA))).
		ZH(fmt.Sprintf("请继续把%s切成一口大小。", name.For(message.LangZH)))
}

func boilText(r Recipe) message.I18nText {
	name := r.Main.I18nName()
	return message.NewI18nText().
		KO(fmt.Sprintf("손질한 %s을(를) 끓는 물에 약 {{.time}}간 삶아주세요.", name.For(message.LangKO))).
		EN(fmt.Sprintf("Boil the %s in boiling water for about {{.time}}.", name.For(message.LangEN))).
		JA(fmt.Sprintf("%sを沸いた水に約{{.time}}茹でます。", name.For(message.LangJA))).
		ZH(fmt.Sprintf("把%s放在沸水里煮约{{.time}}。", name.For(message.LangZH)))
}

func plateText() message.I18nText {
	return message.NewI18nText().
		KO("완성된 요리를 보기 좋게 접시에 담아주세요.").
		EN("Put the finished dish on a plate.").
		JA("完成した料理をきれいにお皿に盛り付けます。").
		ZH("把做好的菜放在盘子里。")
}

func doneText() message.I18nText {
	return message.NewI18nText().
		KO("완성입니다. 맛있게 드세요.").
		EN("It's done. Bon appetit.").
		JA("完成です。おいしく召し上がってください。").
		ZH("完成了。请享用。")
}
