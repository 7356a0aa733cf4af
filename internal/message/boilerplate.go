package message

// boilerplateText is the fixed table of prerecorded multilingual
// utterances a Boilerplate index renders to, mirroring the source's
// `MachineSpeechBoilerplate::to_i18n()`.
var boilerplateText = map[Boilerplate]I18nText{
	BoilerplatePowerOn: NewI18nText().
		EN("Smart speaker ready.").JA("準備ができました。").ZH("已准备就绪。").KO("준비가 되었습니다."),
	BoilerplateWakeUp: NewI18nText().
		EN("I'm listening.").JA("お聞きしています。").ZH("我在听。").KO("듣고 있어요."),
	BoilerplateOk: NewI18nText().
		EN("Okay.").JA("オッケー。").ZH("好的。").KO("알겠습니다."),
	BoilerplateUndefined: NewI18nText().
		EN("Sorry, I can't do that.").JA("すみません、それはできません。").ZH("抱歉，我做不到。").KO("죄송해요, 할 수 없어요."),
	BoilerplateAborted: NewI18nText().
		EN("Cancelled.").JA("キャンセルしました。").ZH("已取消。").KO("취소했어요."),
	BoilerplateIntentFailed: NewI18nText().
		EN("Sorry, I didn't understand that.").JA("すみません、聞き取れませんでした。").ZH("抱歉，我没听懂。").KO("죄송해요, 이해하지 못했어요."),
	BoilerplateVisionFailed: NewI18nText().
		EN("I couldn't see that clearly.").JA("うまく見えませんでした。").ZH("我看不清楚。").KO("잘 보이지 않았어요."),
}

// I18n renders the boilerplate to its fixed multilingual text.
func (b Boilerplate) I18n() I18nText { return boilerplateText[b] }
