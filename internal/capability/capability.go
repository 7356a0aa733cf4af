// Package capability defines the driver interfaces §6 lists under
// "Capability interfaces (consumed from drivers)" and the concrete
// adapters that implement them: real drivers/services for audio, wake
// word, speech-to-intent and speech output, and deterministic in-memory
// fakes for the camera, gaze and vision detectors. Worker
// actors in internal/worker hold one capability each and never touch
// a driver SDK directly.
package capability

import "context"

// PCMSource provides a continuous stream of signed 16-bit PCM audio frames.
type PCMSource interface {
	Start(ctx context.Context) error
	Stop() error
	FrameLength() int
	Read() ([]int16, error)
}

// WakeWordDetector classifies a PCM frame against a set of configured
// keywords. Returns -1 when no keyword matched.
type WakeWordDetector interface {
	Process(frame []int16) (keywordIndex int, err error)
}

// VoiceActivityDetector scores a PCM frame's likelihood of containing
// speech, in [0,1].
type VoiceActivityDetector interface {
	Process(frame []int16) (probability float64, err error)
}

// Inference is the decoded result of a finalized speech-to-intent turn.
type Inference struct {
	Understood bool
	Intent     string
	Slots      map[string]string
}

// SpeechToIntentEngine streams PCM frames into an utterance and, once it
// decides the utterance is finalized, exposes the decoded inference.
type SpeechToIntentEngine interface {
	Process(frame []int16) (finalized bool, err error)
	GetInference() (Inference, bool)
	Reset()
}

// TextToSpeechEngine synthesizes speech for a BCP-47 locale.
type TextToSpeechEngine interface {
	Voices() []string // BCP-47 tags this engine can speak
	SetVoice(bcp47 string) error
	SetRate(rate float64)
	Speak(ctx context.Context, text string) ([]byte, error) // returns WAV/PCM bytes
}

// AudioPlayer plays synthesized audio and can be interrupted mid-utterance.
type AudioPlayer interface {
	Play(audio []byte) error
	Stop()
}

// CameraFrame is a single captured image.
type CameraFrame struct {
	Bytes  []byte
	Height int
}

// Camera provides on-demand frame capture.
type Camera interface {
	Read() (CameraFrame, error)
}

// GazePoint is a normalized [0,1] screen-space gaze coordinate.
type GazePoint struct {
	NX, NY float64
}

// Gaze provides on-demand eye-tracker reads.
type Gaze interface {
	Read() (GazePoint, bool, error)
}

// FiducialResult is the set of markers found in a single frame.
type FiducialResult struct {
	Corners [][4][2]float64
	IDs     []int
}

// FiducialDetector finds aruco-style markers in a camera frame.
type FiducialDetector interface {
	Detect(frame CameraFrame) (FiducialResult, error)
}

// Polygon is a closed contour, a flat list of (x,y) points.
type Polygon [][2]float64

// ObjectDetector locates and masks a named object within a frame.
type ObjectDetector interface {
	Mask(frame CameraFrame, object string) ([]byte, error)
	Contours(mask []byte) ([]Polygon, error)
}
