package context

import (
	"io"
	"testing"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

func newTestWorker(vision bool) (*Worker, chan message.Message) {
	w := New(vision, logger.New(logger.LevelOff, io.Discard))
	return w, make(chan message.Message, 64)
}

func drainAll(ch chan message.Message) []message.Message {
	var out []message.Message
	for {
		select {
		case m := <-ch:
			out = append(out, m)
		default:
			return out
		}
	}
}

func TestStartNewTaskUndefinedIntentSpeaksBoilerplateAndGoesIdle(t *testing.T) {
	w, toCore := newTestWorker(false)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentTurnOn})

	msgs := drainAll(toCore)
	var sawSpeech, sawIdle bool
	for _, m := range msgs {
		if tts, ok := m.(message.TextToSpeech); ok {
			sawSpeech = true
			if tts.Payload.Normal().For(message.LangEN) != message.BoilerplateUndefined.I18n().For(message.LangEN) {
				t.Fatalf("got %+v, want undefined boilerplate", tts)
			}
		}
		if su, ok := m.(message.StateUpdate); ok {
			sawIdle = true
			if su.State.Kind != message.StateIdle {
				t.Fatalf("got %+v, want idle state", su)
			}
		}
	}
	if !sawSpeech || !sawIdle {
		t.Fatalf("got %+v, want both a boilerplate speech and an idle state update", msgs)
	}
	if w.current != nil {
		t.Fatalf("expected no task to be started for an undefined intent")
	}
}

func TestStartNewTaskWhatYouSeeWithoutVisionIsSilent(t *testing.T) {
	w, toCore := newTestWorker(false)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentWhatYouSee})

	if msgs := drainAll(toCore); len(msgs) != 0 {
		t.Fatalf("got %+v, want no messages when vision is disabled", msgs)
	}
	if w.current != nil {
		t.Fatalf("expected no task to be started")
	}
}

func TestStartNewTaskWhatYouSeeWithVisionWaitsOnConfirmThenVision(t *testing.T) {
	w, toCore := newTestWorker(true)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentWhatYouSee})

	if w.current == nil {
		t.Fatalf("expected a viewing task to start")
	}
	if !w.haveNext || w.nextState.Kind != message.StateWaitingForInteraction {
		t.Fatalf("got %+v, want a queued waiting state", w.nextState)
	}
	msgs := drainAll(toCore)
	found := false
	for _, m := range msgs {
		if tts, ok := m.(message.TextToSpeech); ok {
			found = true
			if tts.Payload.Normal().For(message.LangEN) == "" {
				t.Fatalf("expected the checking announcement to be spoken")
			}
		}
	}
	if !found {
		t.Fatalf("expected the first viewing step to speak")
	}
}

func TestHandleVisionCountsDetectedObjectsAndExits(t *testing.T) {
	w, toCore := newTestWorker(true)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentWhatYouSee})
	drainAll(toCore)
	w.handleNextState(toCore) // apply queued state as TextToSpeechFinished would
	drainAll(toCore)

	w.handleVision(toCore, message.ResultSuccess, []message.VisionContent{
		{
			Action: message.VisionObjectDetectionWithAruco,
			Object: message.ObjectCarrot,
			Slots: []message.VisionSlot{
				message.VisionObject{Object: message.ObjectCarrot},
				message.VisionObject{Object: message.ObjectCarrot},
			},
		},
	})

	if w.current != nil {
		t.Fatalf("expected the viewing task to exit after its only vision step")
	}
	msgs := drainAll(toCore)
	var sawCount bool
	for _, m := range msgs {
		if tts, ok := m.(message.TextToSpeech); ok {
			en := tts.Payload.Normal().For(message.LangEN)
			if en == "I see 2 carrot." {
				sawCount = true
			}
		}
	}
	if !sawCount {
		t.Fatalf("got %+v, want a speech reporting the count", msgs)
	}
}

func TestHandleIntentFailureWithNoTaskSpeaksIntentFailedAndGoesIdle(t *testing.T) {
	w, toCore := newTestWorker(false)
	w.handleIntent(toCore, message.ResultFailure, message.IntentContent{Action: message.IntentNone})

	msgs := drainAll(toCore)
	var sawIdle bool
	for _, m := range msgs {
		if su, ok := m.(message.StateUpdate); ok && su.State.Kind == message.StateIdle {
			sawIdle = true
		}
	}
	if !sawIdle {
		t.Fatalf("got %+v, want an idle state update", msgs)
	}
}

func TestHandleIntentFailureWithRunningTaskFailsTheCurrentStep(t *testing.T) {
	w, toCore := newTestWorker(false)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentCookingTask, Slots: []message.IntentSlot{message.IntentCookingMenu{Menu: message.MenuCarrotSalad}}})
	drainAll(toCore)
	w.handleNextState(toCore)
	drainAll(toCore)

	w.handleIntent(toCore, message.ResultFailure, message.IntentContent{Action: message.IntentNone})

	if w.current == nil {
		t.Fatalf("expected the cooking task to remain active after one failed step")
	}
	if !w.haveNext || w.nextState.Kind != message.StateWaitingForInteraction {
		t.Fatalf("got %+v, want a queued waiting state after a failed step", w.nextState)
	}
}

func TestStartNewTaskCookingWithoutMenuSlotSpeaksUndefined(t *testing.T) {
	w, toCore := newTestWorker(false)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentCookingTask})

	if w.current != nil {
		t.Fatalf("expected no task without a menu slot")
	}
	msgs := drainAll(toCore)
	var sawUndefined bool
	for _, m := range msgs {
		if tts, ok := m.(message.TextToSpeech); ok && tts.Payload.Normal().For(message.LangEN) == message.BoilerplateUndefined.I18n().For(message.LangEN) {
			sawUndefined = true
		}
	}
	if !sawUndefined {
		t.Fatalf("got %+v, want undefined boilerplate", msgs)
	}
}

func TestHandleTaskResultCancelledClearsTaskAndSpeaksAborted(t *testing.T) {
	w, toCore := newTestWorker(false)
	w.startNewTask(toCore, message.IntentContent{Action: message.IntentCookingTask, Slots: []message.IntentSlot{message.IntentCookingMenu{Menu: message.MenuCarrotSalad}}})
	drainAll(toCore)
	w.handleNextState(toCore)
	drainAll(toCore)

	w.handleIntent(toCore, message.ResultSuccess, message.IntentContent{Action: message.IntentCancel})

	if w.current != nil {
		t.Fatalf("expected cancellation to clear the current task")
	}
	msgs := drainAll(toCore)
	var sawAborted bool
	for _, m := range msgs {
		if tts, ok := m.(message.TextToSpeech); ok && tts.Payload.Normal().For(message.LangEN) == message.BoilerplateAborted.I18n().For(message.LangEN) {
			sawAborted = true
		}
	}
	if !sawAborted {
		t.Fatalf("got %+v, want aborted boilerplate", msgs)
	}
}
