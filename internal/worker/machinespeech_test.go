package worker

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

type fakeTTS struct {
	voice     string
	rate      float64
	rejectAll bool
}

func (e *fakeTTS) Voices() []string { return []string{"en-US", "ja-JP", "zh-CN", "ko-KR"} }
func (e *fakeTTS) SetVoice(bcp47 string) error {
	if e.rejectAll {
		return errNotFound
	}
	for _, v := range e.Voices() {
		if v == bcp47 {
			e.voice = bcp47
			return nil
		}
	}
	return errNotFound
}
func (e *fakeTTS) SetRate(rate float64) { e.rate = rate }
func (e *fakeTTS) Speak(ctx context.Context, text string) ([]byte, error) {
	return []byte(text), nil
}

type fakePlayer struct{ played []byte }

func (p *fakePlayer) Play(audio []byte) error { p.played = audio; return nil }
func (p *fakePlayer) Stop()                   {}

func TestNewMachineSpeechWorkerRejectsUnsupportedLanguage(t *testing.T) {
	_, err := NewMachineSpeechWorker(&fakeTTS{rejectAll: true}, &fakePlayer{}, message.LangEN, logger.New(logger.LevelOff, nil))
	if err == nil {
		t.Fatal("expected an error for an unsupported language/voice")
	}
}

func TestMachineSpeechWorkerSpeaksBoilerplateOnStartAndAcksRequests(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	tts := &fakeTTS{}
	player := &fakePlayer{}
	w, err := NewMachineSpeechWorker(tts, player, message.LangEN, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inbox := make(chan message.Message, 8)
	toCore := make(chan message.Message, 32)
	go w.Run(inbox, toCore)

	deadline := time.After(time.Second)
	for {
		select {
		case m := <-toCore:
			if fin, ok := m.(message.TextToSpeechFinished); ok && fin.To == message.ActorCore {
				goto boilerplateSeen
			}
		case <-deadline:
			t.Fatal("timed out waiting for startup boilerplate ack")
		}
	}
boilerplateSeen:

	inbox <- message.TextToSpeech{
		From:    message.ActorContext,
		Payload: message.NormalSpeech(message.NewI18nText().EN("hello there")),
	}

	deadline = time.After(time.Second)
	for {
		select {
		case m := <-toCore:
			if fin, ok := m.(message.TextToSpeechFinished); ok && fin.To == message.ActorContext {
				if !strings.Contains(string(player.played), "hello there") {
					t.Fatalf("expected playback of requested text, got %q", player.played)
				}
				inbox <- message.Shutdown{}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for request ack")
		}
	}
}
