// Package context implements the Context actor: the only actor that owns
// task lifecycle and the smart speaker's top-level conversational state.
// Every other worker either feeds it classification results (intent,
// vision) or carries out what it asks for (speech, state broadcast).
package context

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/cooking"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/task"
)

// Worker is the Context actor. It holds at most one running Task and the
// state update queued to fire once the in-flight speech (if any) finishes.
type Worker struct {
	vision bool
	log    *logger.Logger

	current *task.Task

	nextState message.SmartSpeakerState
	haveNext  bool
}

// New builds a Context worker. vision selects whether WhatYouSee and
// CookingTask intents build their vision-aware step lists.
func New(vision bool, log *logger.Logger) *Worker {
	return &Worker{vision: vision, log: log}
}

func (w *Worker) ID() message.ActorId { return message.ActorContext }

func (w *Worker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	w.log.Info("context: started")
	alive := true
	for alive {
		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.IntentFinalized:
				w.handleIntent(toCore, m.Result, m.Content)
			case message.VisionFinalized:
				w.handleVision(toCore, m.Result, m.Contents)
			case message.TextToSpeechFinished:
				w.handleNextState(toCore)
			default:
				w.log.Error("context: unhandled message %T", msg)
			}
			return true
		})
		if alive {
			time.Sleep(33 * time.Millisecond)
		}
	}
	toCore <- message.Terminated{From: message.ActorContext}
}

// drainInbox mirrors internal/worker's helper; Context lives outside that
// package (it is constructed with domain dependencies, not spawned), so it
// keeps its own tiny copy rather than depending on worker for one function.
func drainInbox(inbox <-chan message.Message, handle func(message.Message) bool) bool {
	for {
		select {
		case msg := <-inbox:
			if !handle(msg) {
				return false
			}
		default:
			return true
		}
	}
}

func (w *Worker) handleIntent(toCore chan<- message.Message, result message.Result, content message.IntentContent) {
	if result == message.ResultFailure {
		w.log.Debug("context: intent failed")
		if w.current == nil {
			w.speak(toCore, message.BoilerplateIntentFailed.I18n())
			w.requestStateUpdate(toCore, message.IdleState())
			return
		}
		w.handleTaskResult(toCore, w.current.Failed(task.IntentContentEnvelope{Content: content}))
		return
	}

	if w.current == nil {
		w.log.Debug("context: no task, starting new one")
		w.startNewTask(toCore, content)
		return
	}
	w.log.Debug("context: task exists, proceeding")
	w.handleTaskResult(toCore, w.current.TryNext(task.IntentContentEnvelope{Content: content}, true))
}

func (w *Worker) handleVision(toCore chan<- message.Message, result message.Result, contents []message.VisionContent) {
	if result == message.ResultFailure {
		w.speak(toCore, message.BoilerplateVisionFailed.I18n())
		if w.current != nil {
			w.handleTaskResult(toCore, w.current.Failed(nil))
		}
		return
	}

	for _, c := range contents {
		if w.current == nil {
			continue
		}
		w.handleTaskResult(toCore, w.current.TryNext(task.VisionContentEnvelope{Content: c}, true))
	}
}

// startNewTask builds the task list for content's intent and runs its
// first step. WhatYouSee with vision disabled is left exactly as silent as
// the source leaves it: no task, no boilerplate, no state change.
func (w *Worker) startNewTask(toCore chan<- message.Message, content message.IntentContent) {
	switch content.Action {
	case message.IntentWhatYouSee:
		if !w.vision {
			return
		}
		w.log.Debug("context: starting vision viewing task")
		w.current = task.New(viewingSteps())
	case message.IntentCookingTask:
		menu, ok := content.CookingMenuSlot()
		if !ok {
			w.speak(toCore, message.BoilerplateUndefined.I18n())
			w.requestStateUpdate(toCore, message.IdleState())
			return
		}
		w.log.Debug("context: starting cooking task")
		w.current = task.New(cooking.NewCookingStepBuilder(w.vision).Build(menu))
	default:
		w.speak(toCore, message.BoilerplateUndefined.I18n())
		w.requestStateUpdate(toCore, message.IdleState())
		return
	}
	w.handleTaskResult(toCore, w.current.Init())
}

// handleTaskResult applies a task result's task-lifecycle effect, queues
// the resulting state, and either speaks the result's TTS or, when it
// carries none, applies the queued state immediately.
func (w *Worker) handleTaskResult(toCore chan<- message.Message, r task.Result) {
	switch r.Code {
	case task.Exit:
		w.current = nil
		w.setNextState(message.IdleState())
	case task.Cancelled:
		w.current = nil
		w.setNextState(message.IdleState())
	case task.TaskSuccess, task.TaskFailed:
		w.setNextState(message.WaitingState(r.Wait))
	default:
		w.log.Warn("context: unexpected task result code %v, clearing task", r.Code)
		w.current = nil
		w.setNextState(message.IdleState())
	}

	if r.HasTTS {
		w.speak(toCore, r.TTS)
	} else {
		w.handleNextState(toCore)
	}
}

func (w *Worker) setNextState(s message.SmartSpeakerState) {
	w.nextState, w.haveNext = s, true
}

func (w *Worker) handleNextState(toCore chan<- message.Message) {
	if !w.haveNext {
		return
	}
	w.requestStateUpdate(toCore, w.nextState)
	w.haveNext = false
}

func (w *Worker) requestStateUpdate(toCore chan<- message.Message, s message.SmartSpeakerState) {
	toCore <- message.StateUpdate{State: s}
}

func (w *Worker) speak(toCore chan<- message.Message, text message.I18nText) {
	toCore <- message.TextToSpeech{
		From:    message.ActorContext,
		To:      message.ActorMachineSpeech,
		Payload: message.NormalSpeech(text),
	}
}
