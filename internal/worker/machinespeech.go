package worker

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// ttsRateReduction is how much slower long utterances are spoken, per §4.5.
const ttsRateReduction = 0.1

// MachineSpeechWorker owns the TTS engine and speaker. Every TextToSpeech
// request is synthesized, played to completion, and acknowledged with
// TextToSpeechFinished back to whichever actor asked for it.
type MachineSpeechWorker struct {
	tts    capability.TextToSpeechEngine
	player capability.AudioPlayer
	lang   message.Lang
	log    *logger.Logger
}

// NewMachineSpeechWorker selects the voice matching lang, failing if the
// engine has none.
func NewMachineSpeechWorker(tts capability.TextToSpeechEngine, player capability.AudioPlayer, lang message.Lang, log *logger.Logger) (*MachineSpeechWorker, error) {
	if err := tts.SetVoice(bcp47ForLang(lang)); err != nil {
		return nil, err
	}
	return &MachineSpeechWorker{tts: tts, player: player, lang: lang, log: log}, nil
}

func (w *MachineSpeechWorker) ID() message.ActorId { return message.ActorMachineSpeech }

func (w *MachineSpeechWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	w.speak(toCore, message.BoilerplateSpeech(message.BoilerplatePowerOn), message.ActorCore)

	alive := true
	for alive {
		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.TextToSpeech:
				w.speak(toCore, m.Payload, m.From)
			}
			return true
		})
		if alive {
			time.Sleep(time.Millisecond)
		}
	}
	toCore <- message.Terminated{From: message.ActorMachineSpeech}
}

func (w *MachineSpeechWorker) speak(toCore chan<- message.Message, payload message.TTSPayload, requester message.ActorId) {
	var text string
	if payload.IsBoilerplate() {
		text = payload.BoilerplateIndex().I18n().For(w.lang)
	} else {
		text = payload.Normal().For(w.lang)
	}

	rate := 1.0
	if textExceedsThreshold(text, w.lang) {
		rate = 1.0 - ttsRateReduction
	}
	w.tts.SetRate(rate)

	audio, err := w.tts.Speak(context.Background(), text)
	if err != nil {
		w.log.Error("machinespeech: speak: %v", err)
	} else if err := w.player.Play(audio); err != nil {
		w.log.Error("machinespeech: play: %v", err)
	}

	toCore <- message.TextToSpeechFinished{To: requester}
}

func textExceedsThreshold(s string, l message.Lang) bool {
	n := utf8.RuneCountInString(s)
	switch l {
	case message.LangEN:
		return n > 100
	case message.LangJA:
		return n > 60
	case message.LangZH:
		return n > 50
	case message.LangKO:
		return n > 60
	default:
		return false
	}
}

func bcp47ForLang(l message.Lang) string {
	switch l {
	case message.LangEN:
		return "en-US"
	case message.LangZH:
		return "zh-CN"
	case message.LangKO:
		return "ko-KR"
	default:
		return "ja-JP"
	}
}
