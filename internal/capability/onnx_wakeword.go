package capability

import (
	"fmt"

	"github.com/noxowl/smartspeaker/internal/logger"
	ort "github.com/yalue/onnxruntime_go"
)

// ONNX pipeline shape, matched to the openWakeWord model family:
// melspectrogram -> embedding -> wakeword, driven 80ms-chunk at a time.
const (
	wwChunkSamples = 1280 // 80ms @ 16kHz — the frame_length() callers must use
	wwMelWindow    = 76
	wwMelStep      = 8
	wwEmbeddingDim = 96
	wwEmbedFrames  = 16
	wwMelBins      = 32
	wwMelFrames    = 5
)

// ONNXWakeWordModel holds the paths to the three model files. The path
// of the shared ONNX Runtime library is not part of it; the runtime
// environment itself is
// process-global and is initialized once by the caller before
// constructing any ONNXWakeWordDetector.
type ONNXWakeWordModel struct {
	WakewordModel  string
	MelspecModel   string
	EmbeddingModel string
}

// ONNXWakeWordDetector implements WakeWordDetector.Process by running a
// single 80ms PCM frame through the melspectrogram/embedding/wakeword
// chain and returning 0 when the trailing score window crosses
// Threshold, -1 otherwise. It supports only a single keyword: multi-
// keyword configurations need one detector instance per model.
type ONNXWakeWordDetector struct {
	log       *logger.Logger
	threshold float64

	melspecSess *ort.AdvancedSession
	melspecIn   *ort.Tensor[float32]
	melspecOut  *ort.Tensor[float32]

	embedSess *ort.AdvancedSession
	embedIn   *ort.Tensor[float32]
	embedOut  *ort.Tensor[float32]

	wwSess *ort.AdvancedSession
	wwIn   *ort.Tensor[float32]
	wwOut  *ort.Tensor[float32]

	melBuffer   []float32
	embedBuffer []float32
	scoreWindow []float32
	scoreIdx    int
}

// NewONNXWakeWordDetector loads the three ONNX sessions. The ONNX Runtime
// shared library must already be configured via ort.SetSharedLibraryPath
// and ort.InitializeEnvironment by the caller.
func NewONNXWakeWordDetector(model ONNXWakeWordModel, threshold float64, log *logger.Logger) (*ONNXWakeWordDetector, error) {
	d := &ONNXWakeWordDetector{
		log:         log,
		threshold:   threshold,
		embedBuffer: make([]float32, wwEmbedFrames*wwEmbeddingDim),
		scoreWindow: make([]float32, 5),
	}

	var err error
	if d.melspecIn, err = ort.NewEmptyTensor[float32](ort.NewShape(1, wwChunkSamples)); err != nil {
		return nil, err
	}
	if d.melspecOut, err = ort.NewEmptyTensor[float32](ort.NewShape(1, 1, wwMelFrames, wwMelBins)); err != nil {
		return nil, err
	}
	msIn, msOut, err := ort.GetInputOutputInfo(model.MelspecModel)
	if err != nil {
		return nil, err
	}
	if d.melspecSess, err = ort.NewAdvancedSession(model.MelspecModel,
		[]string{msIn[0].Name}, []string{msOut[0].Name},
		[]ort.Value{d.melspecIn}, []ort.Value{d.melspecOut}, nil); err != nil {
		return nil, err
	}

	if d.embedIn, err = ort.NewEmptyTensor[float32](ort.NewShape(1, wwMelWindow, wwMelBins, 1)); err != nil {
		return nil, err
	}
	if d.embedOut, err = ort.NewEmptyTensor[float32](ort.NewShape(1, 1, 1, wwEmbeddingDim)); err != nil {
		return nil, err
	}
	emIn, emOut, err := ort.GetInputOutputInfo(model.EmbeddingModel)
	if err != nil {
		return nil, err
	}
	if d.embedSess, err = ort.NewAdvancedSession(model.EmbeddingModel,
		[]string{emIn[0].Name}, []string{emOut[0].Name},
		[]ort.Value{d.embedIn}, []ort.Value{d.embedOut}, nil); err != nil {
		return nil, err
	}

	if d.wwIn, err = ort.NewEmptyTensor[float32](ort.NewShape(1, wwEmbedFrames, wwEmbeddingDim)); err != nil {
		return nil, err
	}
	if d.wwOut, err = ort.NewEmptyTensor[float32](ort.NewShape(1, 1)); err != nil {
		return nil, err
	}
	wwIn, wwOut, err := ort.GetInputOutputInfo(model.WakewordModel)
	if err != nil {
		return nil, err
	}
	if d.wwSess, err = ort.NewAdvancedSession(model.WakewordModel,
		[]string{wwIn[0].Name}, []string{wwOut[0].Name},
		[]ort.Value{d.wwIn}, []ort.Value{d.wwOut}, nil); err != nil {
		return nil, err
	}

	return d, nil
}

// Close releases the three ONNX sessions and their tensors.
func (d *ONNXWakeWordDetector) Close() {
	d.melspecSess.Destroy()
	d.melspecIn.Destroy()
	d.melspecOut.Destroy()
	d.embedSess.Destroy()
	d.embedIn.Destroy()
	d.embedOut.Destroy()
	d.wwSess.Destroy()
	d.wwIn.Destroy()
	d.wwOut.Destroy()
}

// Process feeds one 80ms PCM frame through the pipeline. Returns
// keyword index 0 once the trailing score window crosses Threshold,
// -1 otherwise (including while there isn't yet enough embedding
// history to score).
func (d *ONNXWakeWordDetector) Process(frame []int16) (int, error) {
	if len(frame) != wwChunkSamples {
		return -1, fmt.Errorf("capability: wakeword frame must be %d samples, got %d", wwChunkSamples, len(frame))
	}

	inData := d.melspecIn.GetData()
	for i, v := range frame {
		inData[i] = float32(v)
	}
	if err := d.melspecSess.Run(); err != nil {
		return -1, err
	}

	melData := d.melspecOut.GetData()
	for f := 0; f < wwMelFrames; f++ {
		for b := 0; b < wwMelBins; b++ {
			idx := f*wwMelBins + b
			if idx < len(melData) {
				d.melBuffer = append(d.melBuffer, melData[idx]/10.0+2.0)
			}
		}
	}

	totalMel := len(d.melBuffer) / wwMelBins
	newEmbed := false
	for totalMel >= wwMelWindow {
		eData := d.embedIn.GetData()
		copy(eData, d.melBuffer[:wwMelWindow*wwMelBins])
		if err := d.embedSess.Run(); err != nil {
			return -1, err
		}
		eOut := d.embedOut.GetData()
		copy(d.embedBuffer, d.embedBuffer[wwEmbeddingDim:])
		copy(d.embedBuffer[(wwEmbedFrames-1)*wwEmbeddingDim:], eOut[:wwEmbeddingDim])
		newEmbed = true

		n := copy(d.melBuffer, d.melBuffer[wwMelStep*wwMelBins:])
		d.melBuffer = d.melBuffer[:n]
		totalMel = len(d.melBuffer) / wwMelBins
	}
	if totalMel > wwMelWindow {
		excess := (totalMel - wwMelWindow) * wwMelBins
		n := copy(d.melBuffer, d.melBuffer[excess:])
		d.melBuffer = d.melBuffer[:n]
	}

	if !newEmbed {
		return -1, nil
	}

	wwData := d.wwIn.GetData()
	copy(wwData, d.embedBuffer)
	if err := d.wwSess.Run(); err != nil {
		return -1, err
	}
	score := d.wwOut.GetData()[0]

	d.scoreWindow[d.scoreIdx%len(d.scoreWindow)] = score
	d.scoreIdx++
	var maxScore float32
	for _, s := range d.scoreWindow {
		if s > maxScore {
			maxScore = s
		}
	}

	if float64(maxScore) >= d.threshold {
		d.log.Info("wakeword: detected (score=%.4f max=%.4f)", score, maxScore)
		for i := range d.scoreWindow {
			d.scoreWindow[i] = 0
		}
		return 0, nil
	}
	return -1, nil
}
