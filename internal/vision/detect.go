package vision

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// Detection is one detected face in original-image pixel coordinates.
type Detection struct {
	BBox       [4]float32 // x1, y1, x2, y2
	Confidence float32
}

// Detector runs RetinaFace-style face detection (det_10g) with ONNX
// Runtime. Only score and bbox heads are bound; landmark outputs are not
// needed for encoding.
type Detector struct {
	session       *ort.AdvancedSession
	inputTensor   *ort.Tensor[float32]
	scoreTensors  []*ort.Tensor[float32]
	bboxTensors   []*ort.Tensor[float32]
	threshold     float32
	inputW        int
	inputH        int
}

// strides of the det_10g feature maps, two anchors per cell.
var strides = []int{8, 16, 32}

const anchorsPerStride = 2

func NewDetector(modelPath string, threshold float32) (*Detector, error) {
	inputW, inputH := 640, 640

	inputShape := ort.NewShape(1, 3, int64(inputH), int64(inputW))
	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	// Output head names and row counts for det_10g at 640x640:
	// rows = (640/stride)^2 * anchorsPerStride.
	scoreNames := []string{"448", "471", "494"}
	bboxNames := []string{"451", "474", "497"}
	rowCounts := []int64{12800, 3200, 800}

	cleanup := func(tensors []*ort.Tensor[float32]) {
		for _, t := range tensors {
			if t != nil {
				t.Destroy()
			}
		}
	}

	scoreTensors := make([]*ort.Tensor[float32], len(strides))
	bboxTensors := make([]*ort.Tensor[float32], len(strides))
	for i, rows := range rowCounts {
		if scoreTensors[i], err = ort.NewEmptyTensor[float32](ort.NewShape(rows, 1)); err == nil {
			bboxTensors[i], err = ort.NewEmptyTensor[float32](ort.NewShape(rows, 4))
		}
		if err != nil {
			cleanup(scoreTensors)
			cleanup(bboxTensors)
			inputTensor.Destroy()
			return nil, fmt.Errorf("create output tensor: %w", err)
		}
	}

	outputNames := make([]string, 0, 2*len(strides))
	outputValues := make([]ort.Value, 0, 2*len(strides))
	for i := range strides {
		outputNames = append(outputNames, scoreNames[i], bboxNames[i])
		outputValues = append(outputValues, scoreTensors[i], bboxTensors[i])
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input.1"},
		outputNames,
		[]ort.Value{inputTensor},
		outputValues,
		nil,
	)
	if err != nil {
		cleanup(scoreTensors)
		cleanup(bboxTensors)
		inputTensor.Destroy()
		return nil, fmt.Errorf("create detector session: %w", err)
	}

	return &Detector{
		session:      session,
		inputTensor:  inputTensor,
		scoreTensors: scoreTensors,
		bboxTensors:  bboxTensors,
		threshold:    threshold,
		inputW:       inputW,
		inputH:       inputH,
	}, nil
}

// BestFace runs detection and returns the most prominent face, i.e. the
// highest-confidence detection above the threshold. imgData must be CHW
// [3, inputH, inputW], normalized; origW/origH scale boxes back to the
// source image.
func (d *Detector) BestFace(imgData []float32, origW, origH int) (Detection, bool, error) {
	copy(d.inputTensor.GetData(), imgData)

	if err := d.session.Run(); err != nil {
		return Detection{}, false, fmt.Errorf("run detection: %w", err)
	}

	scaleW := float32(origW) / float32(d.inputW)
	scaleH := float32(origH) / float32(d.inputH)

	var best Detection
	found := false

	for si, stride := range strides {
		scores := d.scoreTensors[si].GetData()
		bboxes := d.bboxTensors[si].GetData()

		fmW := d.inputW / stride
		fmH := d.inputH / stride

		idx := 0
		for cy := 0; cy < fmH; cy++ {
			for cx := 0; cx < fmW; cx++ {
				for a := 0; a < anchorsPerStride; a++ {
					score := scores[idx]
					if score >= d.threshold && (!found || score > best.Confidence) {
						anchorX := float32(cx) * float32(stride)
						anchorY := float32(cy) * float32(stride)
						st := float32(stride)

						// bbox head encodes distances from the anchor
						// center to the box edges, in stride units.
						x1 := (anchorX - bboxes[idx*4+0]*st) * scaleW
						y1 := (anchorY - bboxes[idx*4+1]*st) * scaleH
						x2 := (anchorX + bboxes[idx*4+2]*st) * scaleW
						y2 := (anchorY + bboxes[idx*4+3]*st) * scaleH

						best = Detection{
							BBox: [4]float32{
								clampF(x1, 0, float32(origW)),
								clampF(y1, 0, float32(origH)),
								clampF(x2, 0, float32(origW)),
								clampF(y2, 0, float32(origH)),
							},
							Confidence: score,
						}
						found = true
					}
					idx++
				}
			}
		}
	}

	return best, found, nil
}

// InputSize returns the model's expected input dimensions.
func (d *Detector) InputSize() (int, int) {
	return d.inputW, d.inputH
}

func (d *Detector) Close() {
	if d.session != nil {
		d.session.Destroy()
	}
	if d.inputTensor != nil {
		d.inputTensor.Destroy()
	}
	for _, t := range d.scoreTensors {
		if t != nil {
			t.Destroy()
		}
	}
	for _, t := range d.bboxTensors {
		if t != nil {
			t.Destroy()
		}
	}
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
