package actor

import (
	"context"
	"testing"
	"time"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/worker"
)

// echoWorker records every message it receives on sawRecord and answers a
// Shutdown with Terminated; it sends nothing else.
type echoWorker struct {
	id        message.ActorId
	sawRecord chan message.Message
}

func (w *echoWorker) ID() message.ActorId { return w.id }

func (w *echoWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	for m := range inbox {
		w.sawRecord <- m
		if _, ok := m.(message.Shutdown); ok {
			toCore <- message.Terminated{From: w.id}
			return
		}
	}
}

var _ worker.Worker = (*echoWorker)(nil)

func newEchoSpawner(id message.ActorId) (Spawner, chan message.Message) {
	seen := make(chan message.Message, 16)
	return func() worker.Worker {
		return &echoWorker{id: id, sawRecord: seen}
	}, seen
}

func TestSupervisorSpawnsEagerActorsAndRoutesMessages(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	audioSpawn, audioSeen := newEchoSpawner(message.ActorAudio)

	sup := New(log, WithSpawner(message.ActorAudio, true, audioSpawn))
	sup.Start(context.Background())
	defer sup.Stop()

	sup.Inbox() <- message.AudioStream{From: message.ActorWakeWord, To: message.ActorAudio}

	select {
	case m := <-audioSeen:
		as, ok := m.(message.AudioStream)
		if !ok || as.From != message.ActorWakeWord {
			t.Fatalf("got %+v, want the forwarded AudioStream request", m)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for routed AudioStream")
	}
}

func TestSupervisorSpawnsSpeechToIntentOnAttentionRequest(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	stiSpawn, stiSeen := newEchoSpawner(message.ActorSpeechToIntent)

	sup := New(log, WithSpawner(message.ActorSpeechToIntent, false, stiSpawn))
	sup.Start(context.Background())
	defer sup.Stop()

	sup.Inbox() <- message.AttentionRequest{From: message.ActorWakeWord}
	sup.Inbox() <- message.AudioStream{From: message.ActorSpeechToIntent, To: message.ActorSpeechToIntent}

	select {
	case <-stiSeen:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for SpeechToIntent to be spawned and routed to")
	}
}

func TestSupervisorRespawnsWakeWordOnAttentionFinished(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	wwSpawn, wwSeen := newEchoSpawner(message.ActorWakeWord)

	sup := New(log, WithSpawner(message.ActorWakeWord, false, wwSpawn))
	sup.Start(context.Background())
	defer sup.Stop()

	sup.Inbox() <- message.AttentionFinished{From: message.ActorSpeechToIntent}
	sup.Inbox() <- message.AudioStream{From: message.ActorWakeWord, To: message.ActorWakeWord}

	select {
	case <-wwSeen:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for WakeWord to be respawned and routed to")
	}
}

func TestSupervisorRoutesIntentFinalizedToContextRegardlessOfAddress(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	sup := New(log)
	sup.Start(context.Background())
	defer sup.Stop()

	ctxSeen := make(chan message.Message, 4)
	sup.Register(&echoWorker{id: message.ActorContext, sawRecord: ctxSeen})

	sup.Inbox() <- message.IntentFinalized{Result: message.ResultSuccess, Content: message.IntentContent{Action: message.IntentWhatYouSee}}

	select {
	case m := <-ctxSeen:
		if _, ok := m.(message.IntentFinalized); !ok {
			t.Fatalf("got %+v, want IntentFinalized routed to Context", m)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for IntentFinalized at Context")
	}
}

func TestSupervisorShutdownBroadcastsAndWaitsForTermination(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	audioSpawn, _ := newEchoSpawner(message.ActorAudio)

	sup := New(log, WithSpawner(message.ActorAudio, true, audioSpawn))
	sup.Start(context.Background())

	done := make(chan struct{})
	go func() {
		sup.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for supervisor to stop")
	}
}
