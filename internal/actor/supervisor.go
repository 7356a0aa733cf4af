// Package actor implements the Core supervisor: the message router that
// owns every worker's inbox and decides, message by message, who runs and
// who hears what. Nothing in internal/worker ever talks to a peer worker
// directly — everything flows through here.
package actor

import (
	"context"
	"fmt"
	"sync"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/worker"
)

// Spawner constructs a fresh worker instance. It is called every time the
// actor it names needs to be (re)started, so a spawner that wraps
// per-utterance state (SpeechToIntent's engine) gets a clean one each time.
type Spawner func() worker.Worker

// Option configures a Supervisor before Start.
type Option func(*Supervisor)

// WithSpawner registers how to construct the named actor. eager actors are
// started immediately by Start; the rest are started on demand by routing
// policy (SpeechToIntent on attention request, WakeWord once attention ends).
func WithSpawner(id message.ActorId, eager bool, spawn Spawner) Option {
	return func(s *Supervisor) {
		s.spawners[id] = spawn
		if eager {
			s.eager = append(s.eager, id)
		}
	}
}

// Supervisor is the Core actor: a routing table plus spawn/despawn policy.
type Supervisor struct {
	log      *logger.Logger
	spawners map[message.ActorId]Spawner
	eager    []message.ActorId

	mu       sync.Mutex
	registry map[message.ActorId]chan message.Message
	toCore   chan message.Message
	wg       sync.WaitGroup
	cancel   context.CancelFunc
	running  bool

	lastMarkers message.MarkerInfo
	haveMarkers bool

	lastState message.SmartSpeakerState
	haveState bool
	recentLog []string
}

// recentLogCap bounds the debug overlay's message feed; only the newest
// entries are kept.
const recentLogCap = 50

// New creates a Supervisor. Call Start to spawn eager actors and begin routing.
func New(log *logger.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		log:      log,
		spawners: make(map[message.ActorId]Spawner),
		registry: make(map[message.ActorId]chan message.Message),
		toCore:   make(chan message.Message, 256),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start spawns every eager actor and begins the routing loop. Non-blocking.
func (s *Supervisor) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Warn("core: already running")
		return
	}
	s.running = true
	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	for _, id := range s.eager {
		s.spawn(id)
	}

	s.wg.Add(1)
	go s.loop(childCtx)
}

// Stop broadcasts Shutdown to every live actor and waits for the routing
// loop to drain.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	s.toCore <- message.Shutdown{}
	s.wg.Wait()
	if s.cancel != nil {
		s.cancel()
	}
}

// Inbox returns the shared channel every worker's supervisor sender writes
// to. Context, built outside this package, is registered the same way any
// other actor is but drives its own Run loop from the caller.
func (s *Supervisor) Inbox() chan<- message.Message { return s.toCore }

// Register wires an already-constructed actor (typically Context, which the
// caller owns the lifecycle of) into the routing table.
func (s *Supervisor) Register(w worker.Worker) chan<- message.Message {
	inbox := make(chan message.Message, 64)
	s.mu.Lock()
	s.registry[w.ID()] = inbox
	s.mu.Unlock()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		w.Run(inbox, s.toCore)
	}()
	return inbox
}

func (s *Supervisor) spawn(id message.ActorId) {
	s.mu.Lock()
	if _, alive := s.registry[id]; alive {
		s.mu.Unlock()
		return
	}
	spawn, ok := s.spawners[id]
	s.mu.Unlock()
	if !ok {
		s.log.Warn("core: no spawner registered for %s", id)
		return
	}
	w := spawn()
	inbox := make(chan message.Message, 64)
	s.mu.Lock()
	s.registry[id] = inbox
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		w.Run(inbox, s.toCore)
	}()
}

func (s *Supervisor) despawn(id message.ActorId) {
	s.mu.Lock()
	delete(s.registry, id)
	s.mu.Unlock()
}

func (s *Supervisor) send(id message.ActorId, m message.Message) {
	s.mu.Lock()
	inbox, ok := s.registry[id]
	s.mu.Unlock()
	if !ok {
		return
	}
	select {
	case inbox <- m:
	default:
		s.log.Debug("core: inbox for %s full, dropping message", id)
	}
}

func (s *Supervisor) broadcast(m message.Message) {
	s.mu.Lock()
	targets := make([]chan message.Message, 0, len(s.registry))
	for _, inbox := range s.registry {
		targets = append(targets, inbox)
	}
	s.mu.Unlock()
	for _, inbox := range targets {
		select {
		case inbox <- m:
		default:
		}
	}
}

// loop is the routing dispatch: one receive from the aggregated worker
// outbox per iteration, handled synchronously so registry mutation never
// races a route decision made against stale state.
func (s *Supervisor) loop(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-s.toCore:
			if !s.handle(m) {
				return
			}
		}
	}
}

// handle routes one message. Returns false once Shutdown has been
// broadcast and the supervisor should stop accepting new work.
func (s *Supervisor) handle(m message.Message) bool {
	s.recordLog(m)

	switch msg := m.(type) {
	case message.Shutdown:
		s.broadcast(message.Shutdown{})
		return false

	case message.Terminated:
		s.despawn(msg.From)

	case message.AudioStream:
		s.send(msg.To, msg)

	case message.CameraFrame:
		s.send(msg.To, msg)

	case message.GazeInfo:
		s.send(msg.To, msg)

	case message.MarkerInfo:
		if msg.To == message.ActorCore {
			s.lastMarkers, s.haveMarkers = msg, true
		} else {
			s.send(msg.To, msg)
		}

	case message.TextToSpeech:
		s.send(msg.To, msg)

	case message.TextToSpeechFinished:
		s.send(msg.To, msg)

	case message.StateUpdate:
		s.mu.Lock()
		s.lastState, s.haveState = msg.State, true
		s.mu.Unlock()
		s.broadcast(msg)

	case message.AttentionRequest:
		s.spawn(message.ActorSpeechToIntent)

	case message.AttentionFinished:
		s.spawn(message.ActorWakeWord)
		s.spawn(message.ActorVoiceActivityDetect)

	case message.IntentFinalized:
		s.send(message.ActorContext, msg)

	case message.VisionFinalized:
		s.send(message.ActorContext, msg)

	case message.LogEntry:
		s.logEntry(msg)
	}
	return true
}

func (s *Supervisor) logEntry(e message.LogEntry) {
	switch e.Level {
	case message.LogDebug:
		s.log.Debug("%s", e.Text)
	case message.LogWarn:
		s.log.Warn("%s", e.Text)
	case message.LogError:
		s.log.Error("%s", e.Text)
	default:
		s.log.Info("%s", e.Text)
	}
}

// LastMarkers returns the most recent fiducial marker reading published
// directly to Core, for the --debug overlay. ok is false until Vision has
// published at least one.
func (s *Supervisor) LastMarkers() (message.MarkerInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMarkers, s.haveMarkers
}

// RegisteredActors returns the currently live actor IDs, for the --debug overlay.
func (s *Supervisor) RegisteredActors() []message.ActorId {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]message.ActorId, 0, len(s.registry))
	for id := range s.registry {
		ids = append(ids, id)
	}
	return ids
}

// State returns the most recently broadcast SmartSpeakerState, for the
// --debug overlay. ok is false until Context has broadcast at least one.
func (s *Supervisor) State() (message.SmartSpeakerState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastState, s.haveState
}

// RecentLog returns the newest-last tail of every message type the
// supervisor has routed, for the --debug overlay's scrolling feed.
func (s *Supervisor) RecentLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.recentLog))
	copy(out, s.recentLog)
	return out
}

// recordLog appends one entry naming m's type to the ring buffer, dropping
// the oldest entry once recentLogCap is reached.
func (s *Supervisor) recordLog(m message.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recentLog = append(s.recentLog, fmt.Sprintf("%T", m))
	if over := len(s.recentLog) - recentLogCap; over > 0 {
		s.recentLog = s.recentLog[over:]
	}
}
