// Package worker implements the supervisor-spawned workers: Audio,
// WakeWord, SpeechToIntent, VoiceActivityDetect, Camera, Gaze, Vision, and
// MachineSpeech. Each worker owns one capability adapter and drives it on
// its own goroutine, talking to the rest of the system only through
// internal/message envelopes relayed via the supervisor.
package worker

import (
	"time"

	"github.com/noxowl/smartspeaker/internal/message"
)

// audioTick is the cadence at which Audio produces frames and the
// wake-word/STI/VAD/stream consumers poll for them.
const audioTick = 33 * time.Millisecond

// gazeTick is the cadence at which Gaze refreshes its cached reading.
const gazeTick = 1 * time.Millisecond

// Worker is implemented by every actor kind the supervisor can spawn.
type Worker interface {
	ID() message.ActorId
	// Run drains inbox and emits replies/requests on toCore until it
	// receives Shutdown or decides to terminate itself. It always ends by
	// sending Terminated{From: ID()} on toCore before returning.
	Run(inbox <-chan message.Message, toCore chan<- message.Message)
}

// drainInbox consumes every message currently queued on inbox without
// blocking, invoking handle for each. It returns false as soon as handle
// reports the worker should stop.
func drainInbox(inbox <-chan message.Message, handle func(message.Message) (alive bool)) bool {
	for {
		select {
		case msg := <-inbox:
			if !handle(msg) {
				return false
			}
		default:
			return true
		}
	}
}
