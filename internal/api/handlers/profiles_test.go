package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

type fakeProfileStore struct {
	byEntryID map[string]*models.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{byEntryID: make(map[string]*models.Profile)}
}

func (f *fakeProfileStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()
	if _, ok := f.byEntryID[p.EntryID]; !ok {
		f.byEntryID[p.EntryID] = p
	}
	return nil
}

func (f *fakeProfileStore) GetProfileByEntryID(ctx context.Context, entryID string) (*models.Profile, error) {
	p, ok := f.byEntryID[entryID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return p, nil
}

func setupProfileRouter(store *fakeProfileStore, events *fakePublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProfileHandler(store, newFakeObjectStore(), events)
	r := gin.New()
	r.POST("/api/low", h.Create)
	r.GET("/api/low/:entry_id", h.GetByEntryID)
	return r
}

func TestCreateProfile(t *testing.T) {
	store := newFakeProfileStore()
	events := &fakePublisher{}
	r := setupProfileRouter(store, events)

	w := postMultipart(r, "/api/low", map[string]string{
		"entry_id":     "entry-42",
		"name":         "John Doe",
		"organization": "Unknown",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	p := store.byEntryID["entry-42"]
	if p == nil || p.Name != "John Doe" {
		t.Fatalf("profile not stored: %+v", p)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["id"] != p.ID.String() {
		t.Fatalf("response id mismatch: %v", resp)
	}

	if len(events.events) != 1 || events.events[0].Kind != "profile" {
		t.Fatalf("expected one profile event, got %v", events.events)
	}
}

func TestCreateProfileRequiresEntryID(t *testing.T) {
	r := setupProfileRouter(newFakeProfileStore(), nil)

	w := postMultipart(r, "/api/low", map[string]string{"name": "John Doe"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetProfileByEntryID(t *testing.T) {
	store := newFakeProfileStore()
	store.byEntryID["entry-42"] = &models.Profile{
		ID:      uuid.New(),
		EntryID: "entry-42",
		Name:    "John Doe",
	}
	r := setupProfileRouter(store, nil)

	req, _ := http.NewRequest("GET", "/api/low/entry-42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.ProfileResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Name != "John Doe" || resp.EntryID != "entry-42" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetProfileByEntryIDNotFound(t *testing.T) {
	r := setupProfileRouter(newFakeProfileStore(), nil)

	req, _ := http.NewRequest("GET", "/api/low/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
