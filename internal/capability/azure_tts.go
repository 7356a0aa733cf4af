package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

const azureAudioFormat = "riff-24khz-16bit-mono-pcm"

// azureVoices maps each supported locale to its default Azure neural
// voice. --language selects one of these at startup; MachineSpeech
// picks per-message language from the I18nText being spoken.
var azureVoices = map[message.Lang]string{
	message.LangEN: "en-US-AvaNeural",
	message.LangJA: "ja-JP-NanamiNeural",
	message.LangZH: "zh-CN-XiaoxiaoNeural",
	message.LangKO: "ko-KR-SunHiNeural",
}

var azureLocales = map[message.Lang]string{
	message.LangEN: "en-US",
	message.LangJA: "ja-JP",
	message.LangZH: "zh-CN",
	message.LangKO: "ko-KR",
}

// AzureTTS synthesizes speech via Azure Cognitive Services, implementing
// TextToSpeechEngine.
type AzureTTS struct {
	subscriptionKey string
	region          string
	voice           string
	lang            message.Lang
	rate            float64
	httpClient      *http.Client
	log             *logger.Logger
}

// NewAzureTTS creates an Azure TTS client defaulting to the given
// language's voice.
func NewAzureTTS(key, region string, lang message.Lang, log *logger.Logger) *AzureTTS {
	return &AzureTTS{
		subscriptionKey: key,
		region:          region,
		voice:           azureVoices[lang],
		lang:            lang,
		rate:            1.0,
		httpClient:      &http.Client{Timeout: 30 * time.Second},
		log:             log,
	}
}

func (c *AzureTTS) Voices() []string {
	voices := make([]string, 0, len(azureLocales))
	for _, locale := range azureLocales {
		voices = append(voices, locale)
	}
	return voices
}

// SetVoice selects the voice for a BCP-47 locale tag, e.g. "ja-JP".
func (c *AzureTTS) SetVoice(bcp47 string) error {
	for lang, locale := range azureLocales {
		if locale == bcp47 {
			c.voice = azureVoices[lang]
			c.lang = lang
			return nil
		}
	}
	return fmt.Errorf("capability: no voice for locale %q", bcp47)
}

func (c *AzureTTS) SetRate(rate float64) { c.rate = rate }

// Speak synthesizes text and returns WAV audio bytes.
func (c *AzureTTS) Speak(ctx context.Context, text string) ([]byte, error) {
	url := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)
	ssml := c.buildSSML(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("capability: tts request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.subscriptionKey)
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("X-Microsoft-OutputFormat", azureAudioFormat)
	req.Header.Set("User-Agent", "SmartSpeaker/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("capability: tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("capability: azure tts error %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("capability: reading audio: %w", err)
	}
	c.log.Debug("tts: synthesized %d bytes with voice %s", len(audio), c.voice)
	return audio, nil
}

func (c *AzureTTS) buildSSML(text string) string {
	locale := azureLocales[c.lang]
	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='%s'><voice xml:lang='%s' name='%s'><prosody rate='%.2f'>%s</prosody></voice></speak>`,
		locale, locale, c.voice, c.rate, text,
	)
}
