// Package vision implements the face encoder: given an image, it locates
// the most prominent face and produces a fixed-length encoding vector for
// similarity comparison.
package vision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/stefanristic40/golden-eye-api/internal/config"
	"github.com/stefanristic40/golden-eye-api/internal/observability"
)

// ErrNoFace is returned when no face is detected in an image.
var ErrNoFace = errors.New("no face found")

// Pipeline chains detection and encoding: decode → detect best face →
// crop → embed. Safe for concurrent use; ONNX sessions hold fixed
// tensors, so runs are serialized.
type Pipeline struct {
	detector *Detector
	embedder *Embedder
	mu       sync.Mutex
}

// NewPipeline loads the ONNX models from cfg.ModelsDir.
func NewPipeline(cfg config.VisionConfig) (*Pipeline, error) {
	detPath := filepath.Join(cfg.ModelsDir, "det_10g.onnx")
	embPath := filepath.Join(cfg.ModelsDir, "w600k_r50.onnx")

	slog.Info("loading detection model", "path", detPath)
	det, err := NewDetector(detPath, float32(cfg.DetectionThreshold))
	if err != nil {
		return nil, fmt.Errorf("load detector: %w", err)
	}

	slog.Info("loading embedding model", "path", embPath)
	emb, err := NewEmbedder(embPath)
	if err != nil {
		det.Close()
		return nil, fmt.Errorf("load embedder: %w", err)
	}

	return &Pipeline{detector: det, embedder: emb}, nil
}

// Encode extracts the encoding of the most prominent face in the image.
// Returns ErrNoFace when no face clears the detection threshold.
func (p *Pipeline) Encode(ctx context.Context, imageData []byte) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := decodeImage(imageData)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()

	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	defer func() {
		observability.EncoderDuration.Observe(time.Since(start).Seconds())
	}()

	detInput := preprocessForDetection(img, p.detector.inputW, p.detector.inputH)
	best, found, err := p.detector.BestFace(detInput, origW, origH)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}
	if !found {
		return nil, ErrNoFace
	}

	faceCrop := cropFace(img, best.BBox)
	if faceCrop == nil {
		return nil, ErrNoFace
	}

	embInput := preprocessForEncoding(faceCrop, p.embedder.inputW, p.embedder.inputH)
	encoding, err := p.embedder.Extract(embInput)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}

	observability.EncodingsExtracted.Inc()
	return encoding, nil
}

// Close releases the ONNX sessions.
func (p *Pipeline) Close() {
	if p.detector != nil {
		p.detector.Close()
	}
	if p.embedder != nil {
		p.embedder.Close()
	}
}
