package capability

import "math"

// EnergyVAD is a lightweight RMS-energy voice activity detector,
// implementing VoiceActivityDetector without needing a model file. It
// reports a probability in [0,1] saturating at rmsSaturate.
type EnergyVAD struct {
	rmsSaturate float64
}

// NewEnergyVAD creates a VAD that saturates at probability 1.0 once a
// frame's RMS (normalized to [0,1] full scale) reaches rmsSaturate.
func NewEnergyVAD(rmsSaturate float64) *EnergyVAD {
	if rmsSaturate <= 0 {
		rmsSaturate = 0.05
	}
	return &EnergyVAD{rmsSaturate: rmsSaturate}
}

func (v *EnergyVAD) Process(frame []int16) (float64, error) {
	if len(frame) == 0 {
		return 0, nil
	}
	var sumSq float64
	for _, s := range frame {
		sumSq += float64(s) * float64(s)
	}
	rms := math.Sqrt(sumSq/float64(len(frame))) / 32768.0

	p := rms / v.rmsSaturate
	if p > 1 {
		p = 1
	}
	return p, nil
}
