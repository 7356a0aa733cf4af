package worker

import (
	"context"
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// AudioWorker owns the PCM source. Every tick it pulls one frame from the
// driver and caches it; any AudioStream request queued in between ticks is
// answered with that cached frame.
type AudioWorker struct {
	source capability.PCMSource
	log    *logger.Logger
	frame  []int16
}

func NewAudioWorker(source capability.PCMSource, log *logger.Logger) *AudioWorker {
	return &AudioWorker{source: source, log: log}
}

func (w *AudioWorker) ID() message.ActorId { return message.ActorAudio }

func (w *AudioWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.source.Start(ctx); err != nil {
		w.log.Error("audio: start: %v", err)
		toCore <- message.Terminated{From: message.ActorAudio}
		return
	}

	alive := true
	for alive {
		frame, err := w.source.Read()
		if err != nil {
			w.log.Debug("audio: read: %v", err)
		} else {
			w.frame = frame
		}

		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.AudioStream:
				toCore <- message.AudioStream{From: message.ActorAudio, To: m.From, PCM: w.frame}
			}
			return true
		})

		if alive {
			time.Sleep(audioTick)
		}
	}

	if err := w.source.Stop(); err != nil {
		w.log.Debug("audio: stop: %v", err)
	}
	toCore <- message.Terminated{From: message.ActorAudio}
}
