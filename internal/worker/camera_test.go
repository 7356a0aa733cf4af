package worker

import (
	"testing"
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

type fakeCamera struct{ frame capability.CameraFrame }

func (c *fakeCamera) Read() (capability.CameraFrame, error) { return c.frame, nil }

func TestCameraWorkerRepliesWithLatestFrame(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	cam := &fakeCamera{frame: capability.CameraFrame{Bytes: []byte{1, 2, 3}, Height: 480}}
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)

	w := NewCameraWorker(cam, log)
	go w.Run(inbox, toCore)

	time.Sleep(50 * time.Millisecond)
	inbox <- message.CameraFrame{From: message.ActorVision, To: message.ActorCamera}

	deadline := time.After(time.Second)
	for {
		select {
		case m := <-toCore:
			if cf, ok := m.(message.CameraFrame); ok && cf.From == message.ActorCamera {
				if cf.Height != 480 || len(cf.Bytes) != 3 {
					t.Fatalf("got %+v, want cached frame", cf)
				}
				inbox <- message.Shutdown{}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for camera reply")
		}
	}
}
