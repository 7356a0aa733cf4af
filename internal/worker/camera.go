package worker

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// CameraWorker captures a frame every tick and replies to CameraFrame
// requests with the most recently captured frame.
type CameraWorker struct {
	cam   capability.Camera
	log   *logger.Logger
	bytes []byte
	h     int
}

func NewCameraWorker(cam capability.Camera, log *logger.Logger) *CameraWorker {
	return &CameraWorker{cam: cam, log: log}
}

func (w *CameraWorker) ID() message.ActorId { return message.ActorCamera }

func (w *CameraWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	alive := true
	for alive {
		frame, err := w.cam.Read()
		if err != nil {
			w.log.Debug("camera: read: %v", err)
		} else {
			w.bytes, w.h = frame.Bytes, frame.Height
		}

		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.CameraFrame:
				toCore <- message.CameraFrame{From: message.ActorCamera, To: m.From, Bytes: w.bytes, Height: w.h}
			}
			return true
		})

		if alive {
			time.Sleep(audioTick)
		}
	}
	toCore <- message.Terminated{From: message.ActorCamera}
}
