package capability

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/noxowl/smartspeaker/internal/logger"
)

// OtoAudioPlayer plays WAV audio data via oto, implementing AudioPlayer.
type OtoAudioPlayer struct {
	ctx *oto.Context
	log *logger.Logger

	mu     sync.Mutex
	active *oto.Player
}

// NewOtoAudioPlayer initializes the system audio context for the given
// sample rate (must match the TTS engine's output format).
func NewOtoAudioPlayer(sampleRate int, log *logger.Logger) (*OtoAudioPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready
	log.Debug("audio player initialized (rate=%d)", sampleRate)
	return &OtoAudioPlayer{ctx: ctx, log: log}, nil
}

// Play plays WAV audio data synchronously, blocking until it finishes or
// Stop is called.
func (p *OtoAudioPlayer) Play(wavData []byte) error {
	pcm, err := extractPCM(wavData)
	if err != nil {
		return err
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	p.mu.Lock()
	p.active = player
	p.mu.Unlock()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	p.mu.Lock()
	p.active = nil
	p.mu.Unlock()

	return player.Close()
}

// Stop interrupts the currently playing audio, if any.
func (p *OtoAudioPlayer) Stop() {
	p.mu.Lock()
	active := p.active
	p.mu.Unlock()
	if active != nil {
		active.Pause()
		p.log.Debug("audio player: interrupted")
	}
}

// extractPCM strips the WAV/RIFF header and returns raw PCM data.
func extractPCM(wav []byte) ([]byte, error) {
	if len(wav) < 44 {
		return nil, errors.New("capability: wav data too short")
	}
	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, errors.New("capability: not a valid WAV file")
	}

	pos := 12
	for pos < len(wav)-8 {
		chunkID := string(wav[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(wav[pos+4 : pos+8]))
		if chunkID == "data" {
			start := pos + 8
			end := start + chunkSize
			if end > len(wav) {
				end = len(wav)
			}
			return wav[start:end], nil
		}
		pos += 8 + chunkSize
		if chunkSize%2 != 0 {
			pos++
		}
	}
	return nil, errors.New("capability: data chunk not found in WAV")
}
