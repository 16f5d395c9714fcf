package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/stefanristic40/golden-eye-api/internal/vision"
)

const thumbnailPrefix = "thumbnails/"

// ingestThumbnail stores an uploaded image under a generated filename and
// runs the face encoder on it. The user-supplied filename is never used
// as a storage key; only its extension survives. A missing face is not an
// ingestion error — the record simply carries no encoding.
func ingestThumbnail(ctx context.Context, images ObjectStore, encoder Encoder, fh *multipart.FileHeader) (filename string, encoding []float32, err error) {
	file, err := fh.Open()
	if err != nil {
		return "", nil, fmt.Errorf("open thumbnail: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("read thumbnail: %w", err)
	}

	filename = uuid.New().String() + filepath.Ext(fh.Filename)
	if err := images.PutObject(ctx, thumbnailPrefix+filename, data, fh.Header.Get("Content-Type")); err != nil {
		return "", nil, fmt.Errorf("store thumbnail: %w", err)
	}

	if encoder == nil {
		return filename, nil, nil
	}

	encoding, err = encoder.Encode(ctx, data)
	if err != nil {
		if errors.Is(err, vision.ErrNoFace) {
			return filename, nil, nil
		}
		slog.Warn("encode thumbnail", "filename", filename, "error", err)
		return filename, nil, nil
	}
	return filename, encoding, nil
}
