package capability

import (
	"encoding/binary"
	"fmt"
)

// No camera, eye-tracking, or fiducial-marker library appears anywhere in
// the example corpus, so these drivers have no third-party home. They are
// deterministic in-memory fakes standing in for hardware the corpus never
// touches: a fixed scene, fixed gaze track, and a fixed marker-to-object
// correspondence that the Vision/VisionBasedIngredientMeasureAction
// pipeline can exercise the same way it would a real camera.

// Scene is the fixed environment a FakeCamera/FakeFiducialDetector/
// FakeObjectDetector observe. Tests and --vision-type=none configure one
// Scene and share it across all three fakes.
type Scene struct {
	FrameHeight int
	Objects     map[string]ObjectGeometry // object name -> observed geometry
	MarkerID    int                       // aruco-style marker id present in every frame
}

// ObjectGeometry is what a real contour-detection pass would report for a
// segmented object: the perimeter (for weight estimation) plus its
// bounding box.
type ObjectGeometry struct {
	PerimeterCM float64
	WidthCM     float64
	HeightCM    float64
}

// frameMarker is the tiny header a FakeCamera frame carries so
// FakeFiducialDetector/FakeObjectDetector can recover which Scene
// produced it without any real image decoding.
type frameMarker struct {
	markerID int32
}

func encodeFrame(m frameMarker) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(m.markerID))
	return buf
}

func decodeFrame(b []byte) (frameMarker, error) {
	if len(b) < 4 {
		return frameMarker{}, fmt.Errorf("capability: fake frame too short")
	}
	return frameMarker{markerID: int32(binary.LittleEndian.Uint32(b))}, nil
}

// FakeCamera emits the same synthetic frame on every Read.
type FakeCamera struct {
	scene *Scene
}

func NewFakeCamera(scene *Scene) *FakeCamera { return &FakeCamera{scene: scene} }

func (c *FakeCamera) Read() (CameraFrame, error) {
	return CameraFrame{
		Bytes:  encodeFrame(frameMarker{markerID: int32(c.scene.MarkerID)}),
		Height: c.scene.FrameHeight,
	}, nil
}

// FakeGaze replays a fixed gaze track, looping once exhausted.
type FakeGaze struct {
	track []GazePoint
	idx   int
}

func NewFakeGaze(track []GazePoint) *FakeGaze {
	if len(track) == 0 {
		track = []GazePoint{{NX: 0.5, NY: 0.5}}
	}
	return &FakeGaze{track: track}
}

func (g *FakeGaze) Read() (GazePoint, bool, error) {
	p := g.track[g.idx%len(g.track)]
	g.idx++
	return p, true, nil
}

// FakeFiducialDetector reports a single square marker centered in the
// frame, with the id the frame was stamped with.
type FakeFiducialDetector struct{}

func NewFakeFiducialDetector() *FakeFiducialDetector { return &FakeFiducialDetector{} }

func (d *FakeFiducialDetector) Detect(frame CameraFrame) (FiducialResult, error) {
	m, err := decodeFrame(frame.Bytes)
	if err != nil {
		return FiducialResult{}, err
	}
	corner := [4][2]float64{{0.4, 0.4}, {0.6, 0.4}, {0.6, 0.6}, {0.4, 0.6}}
	return FiducialResult{Corners: [][4][2]float64{corner}, IDs: []int{int(m.markerID)}}, nil
}

// FakeObjectDetector masks and contours a named object using the Scene's
// pre-registered geometry. Mask returns an opaque token Contours decodes;
// the real pixel data never matters to either side.
type FakeObjectDetector struct {
	scene *Scene
}

func NewFakeObjectDetector(scene *Scene) *FakeObjectDetector { return &FakeObjectDetector{scene: scene} }

func (d *FakeObjectDetector) Mask(frame CameraFrame, object string) ([]byte, error) {
	if _, ok := d.scene.Objects[object]; !ok {
		return nil, fmt.Errorf("capability: object %q not present in scene", object)
	}
	return []byte(object), nil
}

// Contours returns a single rectangular polygon whose perimeter matches
// the masked object's configured PerimeterCM, approximated as a
// width x height box scaled so 2*(w+h) == perimeter.
func (d *FakeObjectDetector) Contours(mask []byte) ([]Polygon, error) {
	object := string(mask)
	geo, ok := d.scene.Objects[object]
	if !ok {
		return nil, fmt.Errorf("capability: unknown mask %q", object)
	}
	w, h := geo.WidthCM, geo.HeightCM
	if sum := w + h; sum > 0 && geo.PerimeterCM > 0 {
		scale := geo.PerimeterCM / (2 * sum)
		w, h = w*scale, h*scale
	}
	poly := Polygon{{0, 0}, {w, 0}, {w, h}, {0, h}}
	return []Polygon{poly}, nil
}

// Perimeter returns the configured perimeter for a scene object, the
// value the real CV pipeline would derive from Contours via arc length.
func (s *Scene) Perimeter(object string) (float64, bool) {
	geo, ok := s.Objects[object]
	return geo.PerimeterCM, ok
}
