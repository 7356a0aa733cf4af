package task

import (
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/units"
)

// Task drives an ordered list of actions to completion. The cursor only
// ever advances forward via internalMoveNext; InternalRollback is the
// only operation allowed to move it back, and only to the stored
// checkpoint.
type Task struct {
	steps   []ActionExecutable
	current int
	checkpoint int

	lastRevision    *units.CookingRevision
	previousSuccess *Result
	havePrevious    bool
}

// New builds a Task over an ordered, non-empty step list.
func New(steps []ActionExecutable) *Task {
	return &Task{steps: steps}
}

func (t *Task) currentAction() ActionExecutable { return t.steps[t.current] }

// Init runs the first action by feeding it a synthetic Next intent, the
// same convention the source task model documents.
func (t *Task) Init() Result {
	return t.TryNext(IntentContentEnvelope{Content: message.IntentContent{Action: message.IntentNext}}, true)
}

// TryNext feeds content to the current action and executes it, or — when
// content is absent — fails the task with the action's trigger-appropriate
// boilerplate. The has flag distinguishes "no content" (timeout/empty
// intent) from a genuine Content value, since Content is an interface and a
// nil Go interface can't represent "absent" unambiguously once concrete
// zero values are involved.
func (t *Task) TryNext(content Content, has bool) Result {
	if !has {
		return t.failWithTrigger(t.currentAction().TriggerType())
	}

	action := t.currentAction()
	action.Feed(content, t.lastRevision)
	return t.HandleResult(action.Execute())
}

// HandleResult interprets one action's execution outcome, advancing the
// cursor on success and rewriting the result code to reflect whether the
// task itself is now complete.
func (t *Task) HandleResult(r Result) Result {
	switch r.Code {
	case StepSuccess:
		if t.internalMoveNext() {
			next := t.currentAction()
			updated := r
			updated.Code = TaskSuccess
			updated.Wait = next.TriggerType().ToWaiting()
			t.previousSuccess, t.havePrevious = &updated, true
			if r.Revision != nil {
				t.lastRevision = r.Revision
			}
			return updated
		}
		updated := r
		updated.Code = TaskSuccess
		updated.Wait = message.Exit()
		return updated

	case StepFailed:
		return r

	case RepeatPrevious:
		if t.havePrevious {
			return *t.previousSuccess
		}
		return t.Failed(nil)

	case Cancelled:
		return t.Cancel()

	case Exit:
		exit := t.Exit()
		if r.HasTTS {
			exit.TTS = r.TTS
		}
		return exit

	default:
		return r
	}
}

// Failed produces a TaskFailed result with boilerplate chosen by the
// current action's trigger kind and the Wait of that trigger. The content
// argument is not inspected, and the cursor does not move, so the current
// step stays current.
func (t *Task) Failed(content Content) Result {
	return t.failWithTrigger(t.currentAction().TriggerType())
}

func (t *Task) failWithTrigger(trigger TriggerType) Result {
	boilerplate := message.BoilerplateIntentFailed
	if trigger.Kind == TriggerVision {
		boilerplate = message.BoilerplateVisionFailed
	}
	return Result{
		Code:   TaskFailed,
		Wait:   trigger.ToWaiting(),
		TTS:    boilerplate.I18n(),
		HasTTS: true,
	}
}

func (t *Task) internalMoveNext() bool {
	if t.current < len(t.steps)-1 {
		t.current++
		return true
	}
	return false
}

// InternalRollback resets the cursor to the last checkpoint, the only
// backward movement the cursor-monotonicity invariant permits.
func (t *Task) InternalRollback() {
	t.current = t.checkpoint
}

// Checkpoint records the current step as the rollback target.
func (t *Task) Checkpoint() {
	t.checkpoint = t.current
}

// LastRevision returns the most recently captured cooking revision, if any,
// for actions later in the step list to fold into their own Feed.
func (t *Task) LastRevision() (units.CookingRevision, bool) {
	if t.lastRevision == nil {
		return units.CookingRevision{}, false
	}
	return *t.lastRevision, true
}

// Exit produces the terminal Exit result that HandleResult returns when an
// action reports the Exit code. Exhausting the step list does not call it:
// that yields TaskSuccess with an Exit wait.
func (t *Task) Exit() Result {
	return Result{
		Code:   Exit,
		TTS:    message.BoilerplateOk.I18n(),
		HasTTS: true,
	}
}

// Cancel produces the terminal Cancelled result when the user's intent
// aborts the task mid-flight.
func (t *Task) Cancel() Result {
	return Result{
		Code:   Cancelled,
		TTS:    message.BoilerplateAborted.I18n(),
		HasTTS: true,
	}
}
