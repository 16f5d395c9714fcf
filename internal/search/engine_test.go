package search

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
)

type fakeStore struct {
	encodings []storage.EntryEncoding
	entries   map[uuid.UUID]models.Entry

	dateCalls      int
	caseCalls      int
	textCalls      int
	incidentCalls  int
	lastDateStart  string
	lastDateEnd    string
	lastIncident   string
	lastCaseID     string
	lastSearchText string
}

func (f *fakeStore) ListEntryEncodings(ctx context.Context) ([]storage.EntryEncoding, error) {
	return f.encodings, nil
}

func (f *fakeStore) GetEntriesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Entry, error) {
	// Deliberately return in arbitrary (map) order to exercise reordering.
	var out []models.Entry
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		seen[id] = true
	}
	for id, e := range f.entries {
		if seen[id] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) FindEntriesByDateRange(ctx context.Context, start, end, incidentType string) ([]models.Entry, error) {
	f.dateCalls++
	f.lastDateStart, f.lastDateEnd, f.lastIncident = start, end, incidentType
	return nil, nil
}

func (f *fakeStore) FindEntriesByCaseID(ctx context.Context, fragment string) ([]models.Entry, error) {
	f.caseCalls++
	f.lastCaseID = fragment
	return nil, nil
}

func (f *fakeStore) FindEntriesByText(ctx context.Context, fragment string) ([]models.Entry, error) {
	f.textCalls++
	f.lastSearchText = fragment
	return nil, nil
}

func (f *fakeStore) FindEntriesByIncidentType(ctx context.Context, tag string) ([]models.Entry, error) {
	f.incidentCalls++
	f.lastIncident = tag
	return nil, nil
}

type fakeScratch struct {
	puts    []string
	deletes []string
}

func (f *fakeScratch) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	f.puts = append(f.puts, key)
	return nil
}

func (f *fakeScratch) DeleteObject(ctx context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return nil
}

type fakeEncoder struct {
	encoding []float32
	err      error
}

func (f *fakeEncoder) Encode(ctx context.Context, imageData []byte) ([]float32, error) {
	return f.encoding, f.err
}

func TestQueryModePrecedence(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want Mode
	}{
		{"empty", Query{}, ModeNone},
		{"face wins over everything", Query{Image: []byte{1}, DateStart: "2024-01-01", DateEnd: "2024-01-31", CaseID: "CID", SearchText: "x", IncidentType: "Killing"}, ModeFace},
		{"date range needs both ends", Query{DateStart: "2024-01-01"}, ModeNone},
		{"date range over case id", Query{DateStart: "2024-01-01", DateEnd: "2024-01-31", CaseID: "CID"}, ModeDateRange},
		{"case id over text", Query{CaseID: "CID", SearchText: "x"}, ModeCaseID},
		{"text over incident type", Query{SearchText: "x", IncidentType: "Killing"}, ModeText},
		{"incident type alone", Query{IncidentType: "Killing"}, ModeIncidentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Mode())
		})
	}
}

func TestSearchNoTrigger(t *testing.T) {
	store := &fakeStore{}
	engine := NewEngine(store, &fakeScratch{}, nil, 3)

	entries, mode, err := engine.Search(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, ModeNone, mode)
	assert.Empty(t, entries)
	assert.Zero(t, store.dateCalls+store.caseCalls+store.textCalls+store.incidentCalls)
}

func TestSearchEvaluatesOnlyWinningMode(t *testing.T) {
	store := &fakeStore{}
	engine := NewEngine(store, &fakeScratch{}, nil, 3)

	_, mode, err := engine.Search(context.Background(), Query{
		DateStart:    "2024-01-01",
		DateEnd:      "2024-12-31",
		CaseID:       "CID-5",
		SearchText:   "village",
		IncidentType: "Arrest",
	})
	require.NoError(t, err)
	assert.Equal(t, ModeDateRange, mode)
	assert.Equal(t, 1, store.dateCalls)
	assert.Zero(t, store.caseCalls)
	assert.Zero(t, store.textCalls)
	assert.Zero(t, store.incidentCalls)

	// The incident type rides along as a date-range filter.
	assert.Equal(t, "2024-01-01", store.lastDateStart)
	assert.Equal(t, "2024-12-31", store.lastDateEnd)
	assert.Equal(t, "Arrest", store.lastIncident)
}

func TestSearchFaceWithoutEncoder(t *testing.T) {
	engine := NewEngine(&fakeStore{}, &fakeScratch{}, nil, 3)

	_, mode, err := engine.Search(context.Background(), Query{Image: []byte{1, 2}, ImageName: "q.jpg"})
	assert.Equal(t, ModeFace, mode)
	assert.ErrorIs(t, err, ErrEncoderUnavailable)
}

func TestSearchFaceRanksByDistance(t *testing.T) {
	near := uuid.New()
	mid := uuid.New()
	far := uuid.New()

	store := &fakeStore{
		encodings: []storage.EntryEncoding{
			{EntryID: far, Encoding: []float32{9, 0}},
			{EntryID: near, Encoding: []float32{1, 0}},
			{EntryID: mid, Encoding: []float32{4, 0}},
		},
		entries: map[uuid.UUID]models.Entry{
			near: {ID: near, CaseID: "CID-100"},
			mid:  {ID: mid, CaseID: "CID-200"},
			far:  {ID: far, CaseID: "CID-300"},
		},
	}
	scratch := &fakeScratch{}
	engine := NewEngine(store, scratch, &fakeEncoder{encoding: []float32{0, 0}}, 3)

	entries, mode, err := engine.Search(context.Background(), Query{Image: []byte{1}, ImageName: "query.png"})
	require.NoError(t, err)
	assert.Equal(t, ModeFace, mode)

	require.Len(t, entries, 3)
	assert.Equal(t, "CID-100", entries[0].CaseID)
	assert.Equal(t, "CID-200", entries[1].CaseID)
	assert.Equal(t, "CID-300", entries[2].CaseID)
}

func TestSearchFaceTruncatesToTopK(t *testing.T) {
	store := &fakeStore{entries: map[uuid.UUID]models.Entry{}}
	for i := 0; i < 6; i++ {
		id := uuid.New()
		store.encodings = append(store.encodings, storage.EntryEncoding{
			EntryID:  id,
			Encoding: []float32{float32(i)},
		})
		store.entries[id] = models.Entry{ID: id}
	}

	engine := NewEngine(store, &fakeScratch{}, &fakeEncoder{encoding: []float32{0}}, 3)

	entries, _, err := engine.Search(context.Background(), Query{Image: []byte{1}})
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSearchFaceCleansUpScratchImage(t *testing.T) {
	scratch := &fakeScratch{}
	engine := NewEngine(&fakeStore{}, scratch, &fakeEncoder{encoding: []float32{0}}, 3)

	_, _, err := engine.Search(context.Background(), Query{Image: []byte{1}, ImageName: "face.jpg"})
	require.NoError(t, err)

	require.Len(t, scratch.puts, 1)
	require.Len(t, scratch.deletes, 1)
	assert.Equal(t, scratch.puts[0], scratch.deletes[0])
	assert.Contains(t, scratch.puts[0], "scratch/")
	assert.Contains(t, scratch.puts[0], ".jpg")
}

func TestSearchFaceScratchKeysAreUnique(t *testing.T) {
	scratch := &fakeScratch{}
	engine := NewEngine(&fakeStore{}, scratch, &fakeEncoder{encoding: []float32{0}}, 3)

	for i := 0; i < 2; i++ {
		_, _, err := engine.Search(context.Background(), Query{Image: []byte{1}, ImageName: "q.jpg"})
		require.NoError(t, err)
	}

	require.Len(t, scratch.puts, 2)
	assert.NotEqual(t, scratch.puts[0], scratch.puts[1])
}

func TestSearchFaceNoStoredEncodings(t *testing.T) {
	engine := NewEngine(&fakeStore{}, &fakeScratch{}, &fakeEncoder{encoding: []float32{0}}, 3)

	entries, mode, err := engine.Search(context.Background(), Query{Image: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, ModeFace, mode)
	assert.Empty(t, entries)
}
