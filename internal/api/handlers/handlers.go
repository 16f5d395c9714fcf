// Package handlers contains the HTTP handlers of the records API. Each
// handler depends on a narrow interface of the store so tests can swap in
// fakes.
package handlers

import (
	"context"

	"github.com/stefanristic40/golden-eye-api/internal/models"
)

// UserStore is the store surface used by auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// EntryCreator persists new entries.
type EntryCreator interface {
	CreateEntry(ctx context.Context, e *models.Entry) error
}

// ProfileStore persists and retrieves person profiles.
type ProfileStore interface {
	CreateProfile(ctx context.Context, p *models.Profile) error
	GetProfileByEntryID(ctx context.Context, entryID string) (*models.Profile, error)
}

// ObjectStore stores and serves uploaded images.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// Encoder extracts a face encoding from image bytes.
type Encoder interface {
	Encode(ctx context.Context, imageData []byte) ([]float32, error)
}

// EventPublisher announces created records on the event bus.
type EventPublisher interface {
	PublishRecordCreated(ctx context.Context, kind string, data interface{}) error
}
