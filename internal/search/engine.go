// Package search implements the multi-mode entry search: face
// similarity, date range, case-id substring, free text, and
// incident-type filter.
package search

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/stefanristic40/golden-eye-api/internal/match"
	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/internal/observability"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
)

// ErrEncoderUnavailable is returned for face queries when the vision
// pipeline failed to initialize.
var ErrEncoderUnavailable = errors.New("face encoder unavailable")

// Mode identifies which query mode a search resolved to.
type Mode string

const (
	ModeNone         Mode = "none"
	ModeFace         Mode = "face"
	ModeDateRange    Mode = "date_range"
	ModeCaseID       Mode = "case_id"
	ModeText         Mode = "text"
	ModeIncidentType Mode = "incident_type"
)

// Query carries the inputs of one search request. Fields are mutually
// exclusive triggers; see Query.Mode for the precedence.
type Query struct {
	Image        []byte
	ImageName    string
	DateStart    string
	DateEnd      string
	IncidentType string
	CaseID       string
	SearchText   string
}

// Mode resolves the query mode. When several triggers are supplied the
// highest-priority one wins and only it is evaluated: face match, then
// date range, then case-id, then free text, then incident type. With no
// trigger the search succeeds with an empty result.
func (q Query) Mode() Mode {
	switch {
	case len(q.Image) > 0:
		return ModeFace
	case q.DateStart != "" && q.DateEnd != "":
		return ModeDateRange
	case q.CaseID != "":
		return ModeCaseID
	case q.SearchText != "":
		return ModeText
	case q.IncidentType != "":
		return ModeIncidentType
	default:
		return ModeNone
	}
}

// Encoder extracts a face encoding from image bytes.
type Encoder interface {
	Encode(ctx context.Context, imageData []byte) ([]float32, error)
}

// EntryStore is the store surface the engine queries.
type EntryStore interface {
	ListEntryEncodings(ctx context.Context) ([]storage.EntryEncoding, error)
	GetEntriesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Entry, error)
	FindEntriesByDateRange(ctx context.Context, start, end, incidentType string) ([]models.Entry, error)
	FindEntriesByCaseID(ctx context.Context, fragment string) ([]models.Entry, error)
	FindEntriesByText(ctx context.Context, fragment string) ([]models.Entry, error)
	FindEntriesByIncidentType(ctx context.Context, tag string) ([]models.Entry, error)
}

// ScratchStore keeps a copy of the query image for the duration of one
// face search.
type ScratchStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, key string) error
}

// Engine evaluates search queries against the entry store.
type Engine struct {
	store   EntryStore
	scratch ScratchStore
	encoder Encoder
	topK    int
}

// NewEngine builds a search engine. encoder may be nil, in which case
// face queries fail with ErrEncoderUnavailable.
func NewEngine(store EntryStore, scratch ScratchStore, encoder Encoder, topK int) *Engine {
	if topK <= 0 {
		topK = 3
	}
	return &Engine{store: store, scratch: scratch, encoder: encoder, topK: topK}
}

// Search evaluates the single mode the query resolves to and returns the
// matching entries together with the resolved mode.
func (e *Engine) Search(ctx context.Context, q Query) ([]models.Entry, Mode, error) {
	mode := q.Mode()
	observability.SearchesExecuted.WithLabelValues(string(mode)).Inc()

	var (
		entries []models.Entry
		err     error
	)

	switch mode {
	case ModeFace:
		entries, err = e.searchByFace(ctx, q)
	case ModeDateRange:
		entries, err = e.store.FindEntriesByDateRange(ctx, q.DateStart, q.DateEnd, q.IncidentType)
	case ModeCaseID:
		entries, err = e.store.FindEntriesByCaseID(ctx, q.CaseID)
	case ModeText:
		entries, err = e.store.FindEntriesByText(ctx, q.SearchText)
	case ModeIncidentType:
		entries, err = e.store.FindEntriesByIncidentType(ctx, q.IncidentType)
	case ModeNone:
		// No trigger supplied: an empty result, not an error.
	}

	if err != nil {
		return nil, mode, err
	}
	return entries, mode, nil
}

// searchByFace encodes the query image and ranks every stored encoding
// by Euclidean distance, returning the topK closest entries. There is no
// distance threshold: the nearest entries are returned even when they
// are dissimilar.
func (e *Engine) searchByFace(ctx context.Context, q Query) ([]models.Entry, error) {
	if e.encoder == nil {
		return nil, ErrEncoderUnavailable
	}

	// Keep a scratch copy of the query image under a per-request key so
	// concurrent searches cannot clobber each other, and drop it on every
	// exit path.
	scratchKey := "scratch/" + uuid.New().String() + filepath.Ext(q.ImageName)
	if err := e.scratch.PutObject(ctx, scratchKey, q.Image, ""); err != nil {
		return nil, fmt.Errorf("store scratch image: %w", err)
	}
	defer func() {
		_ = e.scratch.DeleteObject(context.WithoutCancel(ctx), scratchKey)
	}()

	query, err := e.encoder.Encode(ctx, q.Image)
	if err != nil {
		return nil, err
	}

	encodings, err := e.store.ListEntryEncodings(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]match.Candidate, 0, len(encodings))
	for _, enc := range encodings {
		candidates = append(candidates, match.Candidate{ID: enc.EntryID, Encoding: enc.Encoding})
	}

	matches := match.NewLinear(candidates).Nearest(query, e.topK)
	if len(matches) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}

	entries, err := e.store.GetEntriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The store does not preserve ranking; reorder by ascending distance.
	byID := make(map[uuid.UUID]models.Entry, len(entries))
	for _, entry := range entries {
		byID[entry.ID] = entry
	}
	ordered := make([]models.Entry, 0, len(matches))
	for _, m := range matches {
		if entry, ok := byID[m.ID]; ok {
			ordered = append(ordered, entry)
		}
	}
	return ordered, nil
}
