package worker

import (
	"math"
	"time"

	"github.com/noxowl/smartspeaker/internal/capability"
	"github.com/noxowl/smartspeaker/internal/logger"
	"github.com/noxowl/smartspeaker/internal/message"
)

// visionRingSize is the bounded history length for frames/gazes/markers,
// per §4.4's "60 entries each".
const visionRingSize = 60

// detectableObjects is the fixed set of physical objects Vision attempts
// to segment every attention tick. A real deployment would widen this to
// whatever the object detector model recognizes; the cooking domain only
// ever asks about these three.
var detectableObjects = []message.DetectableObject{
	message.ObjectCarrot,
	message.ObjectPotato,
	message.ObjectOnion,
}

// VisionWorker aggregates Camera+Gaze into bounded ring buffers and, while
// an attention-worthy state is active, runs fiducial and per-object
// detection, publishing both MarkerInfo (diagnostic, routed to Core) and
// VisionFinalized (routed to Context) results.
type VisionWorker struct {
	fiducial capability.FiducialDetector
	objects  capability.ObjectDetector
	log      *logger.Logger

	frames  []capability.CameraFrame
	gazes   []capability.GazePoint
	markers []capability.FiducialResult

	attention bool
	lastFrame capability.CameraFrame
	haveFrame bool
}

func NewVisionWorker(fiducial capability.FiducialDetector, objects capability.ObjectDetector, log *logger.Logger) *VisionWorker {
	return &VisionWorker{fiducial: fiducial, objects: objects, log: log}
}

func (w *VisionWorker) ID() message.ActorId { return message.ActorVision }

func (w *VisionWorker) Run(inbox <-chan message.Message, toCore chan<- message.Message) {
	alive := true
	for alive {
		toCore <- message.CameraFrame{From: message.ActorVision, To: message.ActorCamera}
		toCore <- message.GazeInfo{From: message.ActorVision, To: message.ActorGaze}

		alive = drainInbox(inbox, func(msg message.Message) bool {
			switch m := msg.(type) {
			case message.Shutdown:
				return false
			case message.CameraFrame:
				w.pushFrame(capability.CameraFrame{Bytes: m.Bytes, Height: m.Height})
			case message.GazeInfo:
				if m.Valid {
					w.pushGaze(capability.GazePoint{NX: m.X, NY: m.Y})
				}
			case message.StateUpdate:
				w.attention = m.State.Kind != message.StateIdle
			case message.AttentionFinished:
				w.attention = false
			}
			return true
		})
		if !alive {
			break
		}

		if w.attention && w.haveFrame {
			w.detect(toCore)
		}

		time.Sleep(audioTick)
	}
	toCore <- message.Terminated{From: message.ActorVision}
}

func (w *VisionWorker) pushFrame(f capability.CameraFrame) {
	w.lastFrame, w.haveFrame = f, true
	w.frames = append(w.frames, f)
	if len(w.frames) > visionRingSize {
		w.frames = w.frames[len(w.frames)-visionRingSize:]
	}
}

func (w *VisionWorker) pushGaze(g capability.GazePoint) {
	w.gazes = append(w.gazes, g)
	if len(w.gazes) > visionRingSize {
		w.gazes = w.gazes[len(w.gazes)-visionRingSize:]
	}
}

func (w *VisionWorker) detect(toCore chan<- message.Message) {
	result, err := w.fiducial.Detect(w.lastFrame)
	if err != nil {
		w.log.Debug("vision: fiducial detect: %v", err)
		return
	}
	w.markers = append(w.markers, result)
	if len(w.markers) > visionRingSize {
		w.markers = w.markers[len(w.markers)-visionRingSize:]
	}
	toCore <- message.MarkerInfo{From: message.ActorVision, To: message.ActorCore, Corners: result.Corners, IDs: result.IDs}

	var contents []message.VisionContent
	for _, obj := range detectableObjects {
		mask, err := w.objects.Mask(w.lastFrame, obj.String())
		if err != nil {
			continue
		}
		polys, err := w.objects.Contours(mask)
		if err != nil || len(polys) == 0 {
			continue
		}
		size := objectSizeFromPolygon(polys[0])
		contents = append(contents, message.VisionContent{
			Action: message.VisionObjectDetectionWithAruco,
			Object: obj,
			Slots:  []message.VisionSlot{message.VisionObject{Object: obj, Size: size}},
		})
	}

	if len(contents) > 0 {
		toCore <- message.VisionFinalized{Result: message.ResultSuccess, Contents: contents}
	}
}

// objectSizeFromPolygon derives a perimeter and bounding box from a closed
// contour, in whatever units the object detector's Contours reports (the
// spec's detector adapters report centimeters, already scaled against a
// fiducial marker of known physical size).
func objectSizeFromPolygon(poly capability.Polygon) message.ObjectSize {
	if len(poly) == 0 {
		return message.ObjectSize{}
	}
	var perimeter float64
	minX, minY := poly[0][0], poly[0][1]
	maxX, maxY := poly[0][0], poly[0][1]
	for i, p := range poly {
		next := poly[(i+1)%len(poly)]
		dx, dy := next[0]-p[0], next[1]-p[1]
		perimeter += math.Hypot(dx, dy)
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}
	return message.ObjectSize{Perimeter: perimeter, Width: maxX - minX, Height: maxY - minY}
}
