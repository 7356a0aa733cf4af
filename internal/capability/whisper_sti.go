package capability

import (
	"math"
	"regexp"
	"strings"
	"sync"

	audiotranscriber "github.com/sklyt/whisper/pkg"

	"github.com/noxowl/smartspeaker/internal/logger"
)

const (
	stiSilenceRMSThreshold = 0.008
	stiSilenceFrames       = 120 // at 33ms/frame, ~4s of continuous silence
	stiGraceFrames         = 300 // ~10s max wait for speech to start
)

var envAnnotation = regexp.MustCompile(`[\(\[][a-zA-Z][a-zA-Z\s]*[\)\]]`)

// junkPatterns are whisper hallucination/annotation artifacts stripped
// from any transcription before it is classified.
var junkPatterns = []string{
	"[BLANK_AUDIO]", "(silence)", "[silence]", "(no speech)", "[no speech]",
	"[Music]", "(music)", "(inaudible)", "(unintelligible)",
}

// IntentClassifier turns a transcription into a classified inference.
// Implementations can be keyword-based or LLM-backed.
type IntentClassifier interface {
	Classify(text string) Inference
}

// WhisperSpeechToIntent implements SpeechToIntentEngine. It opens a
// whisper.cpp transcription session on the first Process call of an
// utterance (the transcriber owns its own audio capture, as in the
// teacher's Ear), tracks RMS on the frames it's handed to decide when
// the speaker has stopped talking, stops the session to collect the
// transcription, then classifies it via an IntentClassifier.
type WhisperSpeechToIntent struct {
	whisperBin string
	modelPath  string
	tempDir    string
	log        *logger.Logger
	classifier IntentClassifier

	mu            sync.Mutex
	transcriber   *audiotranscriber.Transcriber
	silenceFrames int
	totalFrames   int
	heardSpeech   bool
	pendingText   string
	result        Inference
	hasResult     bool
}

// NewWhisperSpeechToIntent creates a speech-to-intent engine. tempDir
// holds the scratch WAV files whisper.cpp reads from.
func NewWhisperSpeechToIntent(whisperBin, modelPath, tempDir string, classifier IntentClassifier, log *logger.Logger) *WhisperSpeechToIntent {
	return &WhisperSpeechToIntent{
		whisperBin: whisperBin,
		modelPath:  modelPath,
		tempDir:    tempDir,
		log:        log,
		classifier: classifier,
	}
}

// Reset clears any in-flight session and pending result, returning the
// engine to a fresh state for the next attention cycle.
func (e *WhisperSpeechToIntent) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.transcriber != nil {
		e.transcriber.Stop()
		e.transcriber = nil
	}
	e.silenceFrames = 0
	e.totalFrames = 0
	e.heardSpeech = false
	e.pendingText = ""
	e.hasResult = false
}

// Process measures RMS on frame to track speech/silence and reports
// whether the utterance is now finalized (sustained silence after
// speech, or the grace period for speech-never-starting has elapsed).
// The frame itself is not fed to the transcriber — the transcriber
// captures its own audio, matching the teacher's Ear design.
func (e *WhisperSpeechToIntent) Process(frame []int16) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.transcriber == nil {
		t, err := audiotranscriber.NewTranscriber(
			e.whisperBin, e.modelPath, e.tempDir, "wav",
			func(text string) { e.pendingText = text },
			false,
		)
		if err != nil {
			return false, err
		}
		if err := t.Start(); err != nil {
			return false, err
		}
		e.transcriber = t
	}

	e.totalFrames++

	var sumSq float64
	for _, s := range frame {
		sumSq += float64(s) * float64(s)
	}
	rms := math.Sqrt(sumSq/float64(len(frame))) / 32768.0

	if rms >= stiSilenceRMSThreshold {
		e.heardSpeech = true
		e.silenceFrames = 0
	} else {
		e.silenceFrames++
	}

	finalized := (e.heardSpeech && e.silenceFrames >= stiSilenceFrames) ||
		(!e.heardSpeech && e.totalFrames >= stiGraceFrames)
	if !finalized {
		return false, nil
	}

	e.transcriber.Stop()
	e.transcriber = nil

	if !e.heardSpeech {
		e.result = Inference{Understood: false}
		e.hasResult = true
		return true, nil
	}

	cleaned := cleanTranscription(e.pendingText)
	if cleaned == "" {
		e.result = Inference{Understood: false}
	} else {
		e.result = e.classifier.Classify(cleaned)
		e.log.Info("speech_to_intent: %q -> intent=%s understood=%v", cleaned, e.result.Intent, e.result.Understood)
	}
	e.hasResult = true
	return true, nil
}

// GetInference returns the decoded result of the most recent finalized
// utterance, if Process has returned finalized=true since the last Reset.
func (e *WhisperSpeechToIntent) GetInference() (Inference, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result, e.hasResult
}

// cleanTranscription strips whisper artifacts and environmental
// annotations, collapsing the result to a trimmed command string.
func cleanTranscription(s string) string {
	s = strings.TrimSpace(s)
	for _, j := range junkPatterns {
		s = strings.ReplaceAll(s, j, "")
	}
	s = envAnnotation.ReplaceAllString(s, "")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
