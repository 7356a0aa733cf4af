package worker

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// SpeechToIntentWorker feeds the attention-cycle utterance into the
// speech-to-intent engine until it finalizes, then reports the decoded
// intent to Context (via Core) and hands attention back to WakeWord.
type SpeechToIntentWorker struct {
	engine capability.SpeechToIntentEngine
	log    *logger.Logger
}

func NewSpeechToIntentWorker(engine capability.SpeechToIntentEngine, log *logger.Logger) *SpeechToIntentWorker {
	return &SpeechToIntentWorker{engine: engine, log: log}
}

func (w *SpeechToIntentWorker) ID() message.ActorId { return message.ActorSpeechToIntent }

func (w *SpeechToIntentWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	alive := true
	for alive {
		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.AudioStream:
				if len(m.PCM) == 0 {
					return true
				}
				finalized, err := w.engine.Process(m.PCM)
				if err != nil {
					w.log.Debug("sti: process: %v", err)
					return true
				}
				if finalized {
					w.reportFinal(toCore)
					return false
				}
			}
			return true
		})

		if alive {
			toCore <- message.AudioStream{From: message.ActorSpeechToIntent, To: message.ActorAudio}
			time.Sleep(audioTick)
		}
	}
	toCore <- message.Terminated{From: message.ActorSpeechToIntent}
}

func (w *SpeechToIntentWorker) reportFinal(toCore chan<- message.Message) {
	inf, ok := w.engine.GetInference()
	if !ok || !inf.Understood {
		toCore <- message.IntentFinalized{Result: message.ResultFailure, Content: message.IntentContent{Action: message.IntentNone}}
	} else {
		toCore <- message.IntentFinalized{Result: message.ResultSuccess, Content: intentContentFromInference(inf)}
	}
	toCore <- message.AttentionFinished{From: message.ActorSpeechToIntent}
}
