package capability

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/gen2brain/malgo"
	"github.com/noxowl/smartspeaker/internal/logger"
)

// MalgoPCMSource captures microphone audio via miniaudio (malgo) and
// exposes it through the PCMSource driver contract: a fixed-length
// Read() rather than a push callback, so worker actors can drive it on
// their own tick.
type MalgoPCMSource struct {
	deviceIndex int
	frameLen    int
	log         *logger.Logger

	mu     sync.Mutex
	ctx    *malgo.AllocatedContext
	device *malgo.Device
	frames chan []int16
	rem    []int16
}

// NewMalgoPCMSource creates a capture source for the given device index
// (as selected via --mic-index) and frame length in samples.
func NewMalgoPCMSource(deviceIndex, frameLen int, log *logger.Logger) *MalgoPCMSource {
	return &MalgoPCMSource{
		deviceIndex: deviceIndex,
		frameLen:    frameLen,
		log:         log,
		frames:      make(chan []int16, 32),
	}
}

func (s *MalgoPCMSource) FrameLength() int { return s.frameLen }

// Start opens the capture device and begins feeding the frame buffer.
func (s *MalgoPCMSource) Start(ctx context.Context) error {
	mCtx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(string) {})
	if err != nil {
		return err
	}

	devCfg := malgo.DefaultDeviceConfig(malgo.Capture)
	devCfg.SampleRate = 16000
	devCfg.Capture.Format = malgo.FormatS16
	devCfg.Capture.Channels = 1
	devCfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: func(_ []byte, raw []byte, _ uint32) {
			if len(raw) == 0 {
				return
			}
			n := len(raw) / 2
			pcm := make([]int16, n)
			for i := 0; i < n; i++ {
				pcm[i] = int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
			}
			select {
			case s.frames <- pcm:
			default:
				s.log.Debug("pcm: dropped frame, consumer too slow")
			}
		},
	}

	device, err := malgo.InitDevice(mCtx.Context, devCfg, callbacks)
	if err != nil {
		mCtx.Uninit()
		mCtx.Free()
		return err
	}
	if err := device.Start(); err != nil {
		device.Uninit()
		mCtx.Uninit()
		mCtx.Free()
		return err
	}

	s.mu.Lock()
	s.ctx = mCtx
	s.device = device
	s.mu.Unlock()

	s.log.Debug("pcm: capture started (device_index=%d, frame_len=%d)", s.deviceIndex, s.frameLen)
	return nil
}

func (s *MalgoPCMSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device != nil {
		s.device.Uninit()
		s.device = nil
	}
	if s.ctx != nil {
		_ = s.ctx.Uninit()
		s.ctx.Free()
		s.ctx = nil
	}
	return nil
}

// Read returns the next frame_len samples, blocking until enough audio
// has accumulated. Returns an error if the source was never started.
func (s *MalgoPCMSource) Read() ([]int16, error) {
	s.mu.Lock()
	started := s.device != nil
	s.mu.Unlock()
	if !started {
		return nil, errors.New("pcm: source not started")
	}
	for len(s.rem) < s.frameLen {
		chunk, ok := <-s.frames
		if !ok {
			return nil, errors.New("pcm: source closed")
		}
		s.rem = append(s.rem, chunk...)
	}
	frame := make([]int16, s.frameLen)
	copy(frame, s.rem[:s.frameLen])
	s.rem = s.rem[s.frameLen:]
	return frame, nil
}
