package worker

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// WakeWordWorker subscribes to Audio and feeds every frame to the wake-word
// detector. As soon as a keyword is recognized it requests attention and
// terminates; the supervisor respawns it once the attention cycle ends.
type WakeWordWorker struct {
	detector capability.WakeWordDetector
	log      *logger.Logger
}

func NewWakeWordWorker(detector capability.WakeWordDetector, log *logger.Logger) *WakeWordWorker {
	return &WakeWordWorker{detector: detector, log: log}
}

func (w *WakeWordWorker) ID() message.ActorId { return message.ActorWakeWord }

func (w *WakeWordWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
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
				idx, err := w.detector.Process(m.PCM)
				if err != nil {
					w.log.Debug("wakeword: process: %v", err)
					return true
				}
				if idx != -1 {
					toCore <- message.AttentionRequest{From: message.ActorWakeWord}
					return false
				}
			}
			return true
		})

		if alive {
			toCore <- message.AudioStream{From: message.ActorWakeWord, To: message.ActorAudio}
			time.Sleep(audioTick)
		}
	}
	toCore <- message.Terminated{From: message.ActorWakeWord}
}
