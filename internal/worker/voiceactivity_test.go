package worker

import (
	"testing"
	"time"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

type fakeVAD struct {
	probOn int
	seen   int
	prob   float64
}

func (d *fakeVAD) Process(frame []int16) (float64, error) {
	d.seen++
	if d.seen == d.probOn {
		return d.prob, nil
	}
	return 0, nil
}

func TestVoiceActivityDetectWorkerSignalsAttentionAboveThreshold(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)
	mb := newMailbox(toCore, inbox, []int16{1, 2})

	w := NewVoiceActivityDetectWorker(&fakeVAD{probOn: 1, prob: 0.9}, log)
	go w.Run(inbox, toCore)

	mb.waitFor(t, func(m message.Message) bool {
		su, ok := m.(message.StateUpdate)
		return ok && su.State.Kind == message.AttentionState().Kind
	}, time.Second)

	mb.waitFor(t, func(m message.Message) bool {
		term, ok := m.(message.Terminated)
		return ok && term.From == message.ActorVoiceActivityDetect
	}, time.Second)
}

func TestVoiceActivityDetectWorkerIgnoresLowProbability(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)
	mb := newMailbox(toCore, inbox, []int16{1, 2})

	w := NewVoiceActivityDetectWorker(&fakeVAD{probOn: 1, prob: 0.1}, log)
	go w.Run(inbox, toCore)

	time.Sleep(150 * time.Millisecond)
	inbox <- message.Shutdown{}

	mb.waitFor(t, func(m message.Message) bool {
		term, ok := m.(message.Terminated)
		return ok && term.From == message.ActorVoiceActivityDetect
	}, time.Second)

	mb.mu.Lock()
	defer mb.mu.Unlock()
	for _, m := range mb.received {
		if _, ok := m.(message.StateUpdate); ok {
			t.Fatal("did not expect a StateUpdate below threshold")
		}
	}
}
