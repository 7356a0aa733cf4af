package worker

import (
	"testing"
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

type fakeSTI struct {
	finalizeOn int
	seen       int
	inference  capability.Inference
	ok         bool
}

func (e *fakeSTI) Process(frame []int16) (bool, error) {
	e.seen++
	return e.seen == e.finalizeOn, nil
}
func (e *fakeSTI) GetInference() (capability.Inference, bool) { return e.inference, e.ok }
func (e *fakeSTI) Reset()                                     {}

func TestSpeechToIntentWorkerReportsUnderstoodIntent(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)
	mb := newMailbox(toCore, inbox, []int16{1, 2, 3})

	engine := &fakeSTI{
		finalizeOn: 1,
		ok:         true,
		inference: capability.Inference{
			Understood: true,
			Intent:     "cooking_task",
			Slots:      map[string]string{"menu": "carrot_salad"},
		},
	}
	w := NewSpeechToIntentWorker(engine, log)
	go w.Run(inbox, toCore)

	mb.waitFor(t, func(m message.Message) bool {
		fin, ok := m.(message.IntentFinalized)
		return ok && fin.Result == message.ResultSuccess && fin.Content.Action == message.IntentCookingTask
	}, time.Second)

	mb.waitFor(t, func(m message.Message) bool {
		_, ok := m.(message.AttentionFinished)
		return ok
	}, time.Second)

	mb.waitFor(t, func(m message.Message) bool {
		term, ok := m.(message.Terminated)
		return ok && term.From == message.ActorSpeechToIntent
	}, time.Second)
}

func TestSpeechToIntentWorkerReportsFailureWhenNotUnderstood(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)
	mb := newMailbox(toCore, inbox, []int16{1, 2, 3})

	engine := &fakeSTI{finalizeOn: 1, ok: true, inference: capability.Inference{Understood: false}}
	w := NewSpeechToIntentWorker(engine, log)
	go w.Run(inbox, toCore)

	mb.waitFor(t, func(m message.Message) bool {
		fin, ok := m.(message.IntentFinalized)
		return ok && fin.Result == message.ResultFailure && fin.Content.Action == message.IntentNone
	}, time.Second)
}
