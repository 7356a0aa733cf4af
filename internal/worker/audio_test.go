package worker

import (
	"context"
	"testing"
	"time"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

type fakePCMSource struct {
	started bool
	stopped bool
	frame   []int16
}

func (s *fakePCMSource) Start(ctx context.Context) error { s.started = true; return nil }
func (s *fakePCMSource) Stop() error                     { s.stopped = true; return nil }
func (s *fakePCMSource) FrameLength() int                { return len(s.frame) }
func (s *fakePCMSource) Read() ([]int16, error)           { return s.frame, nil }

func TestAudioWorkerRepliesWithCachedFrame(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := &fakePCMSource{frame: []int16{10, 20, 30}}
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)

	w := NewAudioWorker(src, log)
	go w.Run(inbox, toCore)

	inbox <- message.AudioStream{From: message.ActorWakeWord, To: message.ActorAudio}

	deadline := time.After(time.Second)
	for {
		select {
		case m := <-toCore:
			if as, ok := m.(message.AudioStream); ok && as.To == message.ActorWakeWord {
				if len(as.PCM) != 3 {
					t.Fatalf("got pcm %v, want 3 samples", as.PCM)
				}
				inbox <- message.Shutdown{}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for audio reply")
		}
	}
}

func TestAudioWorkerStopsSourceOnShutdown(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := &fakePCMSource{frame: []int16{1}}
	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)

	w := NewAudioWorker(src, log)
	go w.Run(inbox, toCore)
	inbox <- message.Shutdown{}

	deadline := time.After(time.Second)
	for {
		select {
		case m := <-toCore:
			if term, ok := m.(message.Terminated); ok && term.From == message.ActorAudio {
				if !src.stopped {
					t.Fatal("expected source to be stopped")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for terminated")
		}
	}
}
