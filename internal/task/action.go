// Package task implements the generic step/action framework and the task
// engine that drives a sequence of actions to completion, independent of
// any particular domain (cooking, viewing, ...).
package task

import (
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/units"
)

// TriggerKind is the closed set of preconditions an action can require
// before it is allowed to advance.
type TriggerKind int

const (
	TriggerNone TriggerKind = iota
	TriggerConfirm
	TriggerVision
)

// TriggerType pairs a TriggerKind with the vision actions it waits for,
// meaningful only when Kind == TriggerVision.
type TriggerType struct {
	Kind   TriggerKind
	Vision []message.VisionAction
}

func NoneTrigger() TriggerType    { return TriggerType{Kind: TriggerNone} }
func ConfirmTrigger() TriggerType { return TriggerType{Kind: TriggerConfirm} }
func VisionTrigger(actions []message.VisionAction) TriggerType {
	return TriggerType{Kind: TriggerVision, Vision: actions}
}

// ToWaiting maps a trigger to the WaitingInteraction the state machine
// should pause on while this action is current.
func (t TriggerType) ToWaiting() message.WaitingInteraction {
	switch t.Kind {
	case TriggerVision:
		return message.Vision(t.Vision)
	default:
		return message.Speak()
	}
}

// TaskType distinguishes vision-driven tasks (which the Context actor keeps
// the vision pipeline enabled for) from ordinary ones.
type TaskType int

const (
	TaskNonVision TaskType = iota
	TaskVision
)

// ResultCode is the closed set of outcomes an action's execute() or a
// task's handling of it can produce.
type ResultCode int

const (
	StepSuccess ResultCode = iota
	StepFailed
	TaskSuccess
	TaskFailed
	RepeatPrevious
	Cancelled
	Exit
)

// Result is what execute()/try_next()/handle_result() produce: an outcome
// code plus whatever side information that code carries. Wait is only
// meaningful for TaskSuccess/TaskFailed; TTS and Revision are both optional.
type Result struct {
	TaskType TaskType
	Code     ResultCode
	Wait     message.WaitingInteraction
	TTS      message.I18nText
	HasTTS   bool
	Revision *units.CookingRevision
}

// WithTTS returns a copy of r carrying the given rendered utterance.
func (r Result) WithTTS(t message.I18nText) Result {
	r.TTS = t
	r.HasTTS = true
	return r
}

// Content is the closed set of things an action can be fed: an intent
// (from speech) or a vision detection.
type Content interface {
	isTaskContent()
}

type IntentContentEnvelope struct{ Content message.IntentContent }

func (IntentContentEnvelope) isTaskContent() {}

type VisionContentEnvelope struct{ Content message.VisionContent }

func (VisionContentEnvelope) isTaskContent() {}

// ActionExecutable is the unit of step work a Task advances through.
type ActionExecutable interface {
	// Execute computes this action's result from whatever content/revision
	// it has most recently been fed. Must check Cancelled then
	// RepeatPrevious before doing real work.
	Execute() Result
	// Feed stores the latest content and revision (the most recent
	// CookingRevision captured from a prior step, if any), and recognizes
	// Cancel/Repeat intents by setting the corresponding internal flag.
	Feed(content Content, revision *units.CookingRevision)
	TriggerType() TriggerType
	ExposeTTSScript() (message.I18nText, bool)
	ExposeVisionActions() ([]message.VisionAction, bool)
}

// BaseAction provides the cancelled/repeat-requested bookkeeping every
// concrete action embeds, so Feed only needs to add its own content
// handling on top of FeedControlIntent.
type BaseAction struct {
	cancelled       bool
	repeatRequested bool
}

// FeedControlIntent inspects content for a Cancel/Repeat intent and sets
// the corresponding flag. Embedding actions call this from their own Feed.
func (b *BaseAction) FeedControlIntent(content Content) {
	env, ok := content.(IntentContentEnvelope)
	if !ok {
		return
	}
	switch env.Content.Action {
	case message.IntentCancel:
		b.cancelled = true
	case message.IntentRepeat:
		b.repeatRequested = true
	}
}

// CheckControlFlags returns a terminal Result and true if cancellation or a
// repeat request preempts normal execution; embedding actions call this
// first in their own Execute.
func (b *BaseAction) CheckControlFlags(taskType TaskType) (Result, bool) {
	if b.cancelled {
		return Result{TaskType: taskType, Code: Cancelled}, true
	}
	if b.repeatRequested {
		b.repeatRequested = false
		return Result{TaskType: taskType, Code: RepeatPrevious}, true
	}
	return Result{}, false
}
