package worker

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// GazeWorker refreshes its cached gaze reading every tick (much faster than
// the other workers, matching the eye-tracker's update rate) and replies to
// GazeInfo requests with that cached value.
type GazeWorker struct {
	gaze  capability.Gaze
	log   *logger.Logger
	x, y  float64
	valid bool
}

func NewGazeWorker(gaze capability.Gaze, log *logger.Logger) *GazeWorker {
	return &GazeWorker{gaze: gaze, log: log}
}

func (w *GazeWorker) ID() message.ActorId { return message.ActorGaze }

func (w *GazeWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	alive := true
	for alive {
		p, ok, err := w.gaze.Read()
		if err != nil {
			w.log.Debug("gaze: read: %v", err)
		} else {
			w.x, w.y, w.valid = p.NX, p.NY, ok
		}

		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.GazeInfo:
				toCore <- message.GazeInfo{From: message.ActorGaze, To: m.From, X: w.x, Y: w.y, Valid: w.valid}
			}
			return true
		})

		if alive {
			time.Sleep(gazeTick)
		}
	}
	toCore <- message.Terminated{From: message.ActorGaze}
}
