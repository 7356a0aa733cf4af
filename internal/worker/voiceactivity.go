package worker

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// voiceActivityThreshold is the probability above which a frame is
// considered speech, per §4.3.
const voiceActivityThreshold = 0.5

// VoiceActivityDetectWorker subscribes to Audio as an alternate path into
// Attention state, independent of the wake-word keyword path.
type VoiceActivityDetectWorker struct {
	detector capability.VoiceActivityDetector
	log      *logger.Logger
}

func NewVoiceActivityDetectWorker(detector capability.VoiceActivityDetector, log *logger.Logger) *VoiceActivityDetectWorker {
	return &VoiceActivityDetectWorker{detector: detector, log: log}
}

func (w *VoiceActivityDetectWorker) ID() message.ActorId { return message.ActorVoiceActivityDetect }

func (w *VoiceActivityDetectWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
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
				p, err := w.detector.Process(m.PCM)
				if err != nil {
					w.log.Debug("vad: process: %v", err)
					return true
				}
				if p > voiceActivityThreshold {
					toCore <- message.StateUpdate{State: message.AttentionState()}
					return false
				}
			}
			return true
		})

		if alive {
			toCore <- message.AudioStream{From: message.ActorVoiceActivityDetect, To: message.ActorAudio}
			time.Sleep(audioTick)
		}
	}
	toCore <- message.Terminated{From: message.ActorVoiceActivityDetect}
}
