// smartspeaker is a multimodal voice assistant: wake-word gated speech
// intent recognition drives a cooking task engine, optionally paired
// with a vision pipeline for ingredient measurement.
//
// Usage:
//
//	smartspeaker [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/noxowl/smartspeaker/internal/actor"
	"github.com/noxowl/smartspeaker/internal/capability"
	smartcontext "github.com/noxowl/smartspeaker/internal/context"
	"github.com/noxowl/smartspeaker/internal/display"
	"github.com/noxowl/smartspeaker/internal/gpt"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
	"github.com/noxowl/smartspeaker/internal/worker"
)

// audioFrameSamples matches the wakeword ONNX pipeline's chunk size; VAD
// and STI tolerate any frame length so there's no reason to run two
// capture rates.
const audioFrameSamples = 1280

// whisperBin is not exposed as a flag — §6's external interface names no
// override for it, only the model path (--pv-rhn-model-path).
const whisperBin = "whisper-cli"

type config struct {
	pvAPIKey      string
	ppnModelPath  string
	rhnModelPath  string
	micIndex      int
	visionType    string
	vision        bool
	debug         bool
	zmqInEndpoint string
	streamOut     string
	language      string
}

func (c config) logLevel() logger.Level {
	if c.debug {
		return logger.LevelVerbose
	}
	return logger.LevelNormal
}

func parseFlags() config {
	var c config
	flag.StringVar(&c.pvAPIKey, "pv-api-key", "", "third-party service credential")
	flag.StringVar(&c.ppnModelPath, "pv-ppn-model-path", "", "directory holding the wake-word ONNX models")
	flag.StringVar(&c.rhnModelPath, "pv-rhn-model-path", "", "path to the whisper speech-to-text model")
	flag.IntVar(&c.micIndex, "mic-index", 0, "PCM source index")
	flag.StringVar(&c.visionType, "vision-type", "none", "none | pupil | camera")
	flag.BoolVar(&c.vision, "vision", false, "enable vision pipeline")
	flag.BoolVar(&c.debug, "debug", false, "enable debug overlay")
	flag.StringVar(&c.zmqInEndpoint, "zmq-in-endpoint", "", "eye-tracker endpoint")
	flag.StringVar(&c.streamOut, "stream-out-endpoint", "", "outbound stream endpoint")
	flag.StringVar(&c.language, "language", "ja-JP", "en-US | ja-JP | zh-CN | ko-KR")
	flag.Parse()
	return c
}

func main() {
	_ = godotenv.Load()

	cfg := parseFlags()
	log := logger.New(cfg.logLevel(), os.Stderr)
	stdlog.SetOutput(os.Stderr)
	stdlog.SetFlags(stdlog.Ltime)

	fmt.Println(display.RenderBanner())

	if err := run(cfg, log); err != nil {
		log.Error("fatal: %v", err)
		os.Exit(1)
	}
}

func run(cfg config, log *logger.Logger) error {
	lang := message.ParseLang(cfg.language)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	player, err := capability.NewOtoAudioPlayer(24000, log)
	if err != nil {
		return fmt.Errorf("audio player: %w", err)
	}

	tts := capability.NewAzureTTS(os.Getenv("AZURE_SPEECH_KEY"), os.Getenv("AZURE_SPEECH_REGION"), lang, log)

	speechWorker, err := worker.NewMachineSpeechWorker(tts, player, lang, log)
	if err != nil {
		return fmt.Errorf("machine speech: %w", err)
	}

	wakeSpawner, err := wakeWordSpawner(cfg, log)
	if err != nil {
		return fmt.Errorf("wake word: %w", err)
	}

	classifier := intentClassifier(log)
	stiSpawner := func() worker.Worker {
		engine := capability.NewWhisperSpeechToIntent(whisperBin, cfg.rhnModelPath, os.TempDir(), classifier, log)
		return worker.NewSpeechToIntentWorker(engine, log)
	}

	vadSpawner := func() worker.Worker {
		return worker.NewVoiceActivityDetectWorker(capability.NewEnergyVAD(0), log)
	}

	audioSpawner := func() worker.Worker {
		source := capability.NewMalgoPCMSource(cfg.micIndex, audioFrameSamples, log)
		return worker.NewAudioWorker(source, log)
	}

	opts := []actor.Option{
		actor.WithSpawner(message.ActorAudio, true, audioSpawner),
		actor.WithSpawner(message.ActorWakeWord, true, wakeSpawner),
		actor.WithSpawner(message.ActorVoiceActivityDetect, true, vadSpawner),
		actor.WithSpawner(message.ActorSpeechToIntent, false, stiSpawner),
	}

	if cfg.vision {
		scene := defaultScene()
		opts = append(opts,
			actor.WithSpawner(message.ActorCamera, true, func() worker.Worker {
				return worker.NewCameraWorker(capability.NewFakeCamera(scene), log)
			}),
			actor.WithSpawner(message.ActorGaze, true, func() worker.Worker {
				return worker.NewGazeWorker(capability.NewFakeGaze(nil), log)
			}),
			actor.WithSpawner(message.ActorVision, true, func() worker.Worker {
				return worker.NewVisionWorker(capability.NewFakeFiducialDetector(), capability.NewFakeObjectDetector(scene), log)
			}),
		)
	}

	sup := actor.New(log, opts...)
	sup.Register(speechWorker)
	sup.Register(smartcontext.New(cfg.vision, log))

	sup.Start(ctx)
	defer sup.Stop()

	if cfg.debug {
		overlay := display.NewOverlay(sup)
		go func() {
			if err := overlay.Run(); err != nil {
				log.Error("debug overlay: %v", err)
			}
			cancel()
		}()
	}

	<-ctx.Done()
	return nil
}

// wakeWordSpawner initializes the ONNX runtime once and returns a
// spawner that builds a fresh detector per respawn; the runtime
// environment itself must only be initialized once per process.
func wakeWordSpawner(cfg config, log *logger.Logger) (actor.Spawner, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, err
	}
	model := capability.ONNXWakeWordModel{
		MelspecModel:   filepath.Join(cfg.ppnModelPath, "melspectrogram.onnx"),
		EmbeddingModel: filepath.Join(cfg.ppnModelPath, "embedding.onnx"),
		WakewordModel:  filepath.Join(cfg.ppnModelPath, "wakeword.onnx"),
	}
	return func() worker.Worker {
		detector, err := capability.NewONNXWakeWordDetector(model, 0.5, log)
		if err != nil {
			log.Error("wakeword: load: %v", err)
			return worker.NewWakeWordWorker(deadDetector{}, log)
		}
		return worker.NewWakeWordWorker(detector, log)
	}, nil
}

// deadDetector never fires. Used when the wake-word model fails to load
// so the actor still runs instead of crashing the process.
type deadDetector struct{}

func (deadDetector) Process(frame []int16) (int, error) { return -1, nil }

func intentClassifier(log *logger.Logger) capability.IntentClassifier {
	keyword := capability.NewKeywordIntentClassifier()

	gptKey := os.Getenv("GPT_CHAT_KEY")
	gptEndpoint := os.Getenv("GPT_CHAT_ENDPOINT")
	if gptKey == "" || gptEndpoint == "" {
		return keyword
	}
	client := gpt.NewClient(gptEndpoint, gptKey, log)
	return capability.NewGPTIntentClassifier(keyword, gpt.NewClassifier(client, log))
}

func defaultScene() *capability.Scene {
	return &capability.Scene{
		FrameHeight: 720,
		MarkerID:    0,
		Objects: map[string]capability.ObjectGeometry{
			"carrot": {PerimeterCM: 60, WidthCM: 3, HeightCM: 20},
			"potato": {PerimeterCM: 40, WidthCM: 6, HeightCM: 8},
		},
	}
}
