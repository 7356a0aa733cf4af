package context

import (
	"fmt"

	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/task"
	"github.com/noxowl/smartspeaker/internal/units"
)

// viewingSteps builds the two-step WhatYouSee task: announce that a check
// is starting, then wait for a vision detection and report how many
// objects were seen.
func viewingSteps() []task.ActionExecutable {
	return []task.ActionExecutable{
		newDescribeAction(checkingText()),
		newCountVisionObjectAction(message.VisionObjectDetectionWithAruco),
	}
}

func checkingText() message.I18nText {
	return message.NewI18nText().
		EN("Checking...").
		JA("確認しています...").
		ZH("正在确认...").
		KO("확인하고 있습니다...")
}

// describeAction speaks a fixed line, then advances the cursor to the
// counting step that follows it in viewingSteps.
type describeAction struct {
	task.BaseAction
	script     message.I18nText
	hasContent bool
}

func newDescribeAction(script message.I18nText) *describeAction {
	return &describeAction{script: script}
}

func (a *describeAction) Execute() task.Result {
	if r, stop := a.CheckControlFlags(task.TaskNonVision); stop {
		return r
	}
	return task.Result{TaskType: task.TaskNonVision, Code: task.StepSuccess}.WithTTS(a.script)
}

func (a *describeAction) Feed(content task.Content, revision *units.CookingRevision) {
	a.FeedControlIntent(content)
	if _, ok := content.(task.IntentContentEnvelope); ok {
		a.hasContent = true
	}
}

func (a *describeAction) TriggerType() task.TriggerType { return task.ConfirmTrigger() }

func (a *describeAction) ExposeTTSScript() (message.I18nText, bool) { return a.script, true }

func (a *describeAction) ExposeVisionActions() ([]message.VisionAction, bool) { return nil, false }

// countVisionObjectAction waits for one vision detection and reports how
// many objects its slots carried.
type countVisionObjectAction struct {
	task.BaseAction
	visionAction message.VisionAction

	hasContent bool
	content    message.VisionContent
}

func newCountVisionObjectAction(visionAction message.VisionAction) *countVisionObjectAction {
	return &countVisionObjectAction{visionAction: visionAction}
}

func (a *countVisionObjectAction) Execute() task.Result {
	if r, stop := a.CheckControlFlags(task.TaskVision); stop {
		return r
	}
	if !a.hasContent {
		return task.Result{TaskType: task.TaskVision, Code: task.Exit}.WithTTS(nothingSeenText())
	}
	count := len(a.content.Slots)
	return task.Result{TaskType: task.TaskVision, Code: task.Exit}.WithTTS(seenCountText(count, a.content.Object))
}

func (a *countVisionObjectAction) Feed(content task.Content, revision *units.CookingRevision) {
	a.FeedControlIntent(content)
	if env, ok := content.(task.VisionContentEnvelope); ok {
		a.content, a.hasContent = env.Content, true
	}
}

func (a *countVisionObjectAction) TriggerType() task.TriggerType {
	return task.VisionTrigger([]message.VisionAction{a.visionAction})
}

func (a *countVisionObjectAction) ExposeTTSScript() (message.I18nText, bool) {
	return message.I18nText{}, false
}

func (a *countVisionObjectAction) ExposeVisionActions() ([]message.VisionAction, bool) {
	return []message.VisionAction{a.visionAction}, true
}

func nothingSeenText() message.I18nText {
	return message.NewI18nText().
		EN("I don't see anything.").
		JA("何も見えません。").
		ZH("我什么都没看到。").
		KO("아무것도 보이지 않습니다.")
}

func seenCountText(count int, obj message.DetectableObject) message.I18nText {
	name := func(l message.Lang) string {
		switch obj {
		case message.ObjectCarrot:
			return units.Carrot.I18nName().For(l)
		case message.ObjectPotato:
			return units.Potato.I18nName().For(l)
		case message.ObjectOnion:
			return units.Onion.I18nName().For(l)
		default:
			return obj.String()
		}
	}
	return message.NewI18nText().
		EN(fmt.Sprintf("I see %d %s.", count, name(message.LangEN))).
		JA(fmt.Sprintf("%sが%d個見えます。", name(message.LangJA), count)).
		ZH(fmt.Sprintf("我看到%d个%s。", count, name(message.LangZH))).
		KO(fmt.Sprintf("%s이(가) %d개 보입니다.", name(message.LangKO), count))
}
