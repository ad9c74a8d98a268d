package artworks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
	"github.com/hannahsm1th/art-gallery-api/internal/shared"
)

type mockStore struct {
	records map[int64]*Artwork
	nextID  int64
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[int64]*Artwork), nextID: 1}
}

func (m *mockStore) FindAll(_ context.Context, title string) ([]Artwork, error) {
	var out []Artwork
	for _, rec := range m.records {
		if title == "" || strings.Contains(strings.ToLower(rec.Title), strings.ToLower(title)) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *mockStore) FindByID(_ context.Context, id int64) (Artwork, error) {
	rec, ok := m.records[id]
	if !ok {
		return Artwork{}, shared.ErrNotFound
	}
	return *rec, nil
}

func (m *mockStore) Create(_ context.Context, req CreateArtworkRequest) (Artwork, error) {
	now := time.Now()
	rec := Artwork{
		ID:            m.nextID,
		Title:         req.Title,
		Image:         req.Image,
		Thumbnail:     req.Thumbnail,
		DateStart:     *req.DateStart,
		PlaceOfOrigin: req.PlaceOfOrigin,
		Dimensions:    req.Dimensions,
		MediumDisplay: req.MediumDisplay,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		Department:    req.Department,
		ArtistID:      *req.ArtistID,
		ArtistTitle:   req.ArtistTitle,
		CreatedDate:   now,
		LastModified:  now,
	}
	if req.OnDisplay != nil {
		rec.OnDisplay = *req.OnDisplay
	}
	m.records[rec.ID] = &rec
	m.nextID++
	return rec, nil
}

func (m *mockStore) Update(_ context.Context, id int64, req UpdateArtworkRequest) (Artwork, error) {
	rec, ok := m.records[id]
	if !ok {
		return Artwork{}, shared.ErrNotFound
	}
	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.OnDisplay != nil {
		rec.OnDisplay = *req.OnDisplay
	}
	rec.LastModified = time.Now()
	return *rec, nil
}

func (m *mockStore) Delete(_ context.Context, id int64) error {
	if _, ok := m.records[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockStore) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.records))
	m.records = make(map[int64]*Artwork)
	return n, nil
}

func (m *mockStore) FindFlagged(_ context.Context) ([]Artwork, error) {
	var out []Artwork
	for _, rec := range m.records {
		if rec.OnDisplay {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func addArtwork(t *testing.T, store *mockStore, title string, onDisplay bool) {
	t.Helper()
	dateStart, lat, lng, artistID := 1660, 52.37, 4.89, int64(1)
	_, err := store.Create(context.Background(), CreateArtworkRequest{
		Title:         title,
		Image:         "artworks/full.jpg",
		Thumbnail:     "artworks/thumb.jpg",
		DateStart:     &dateStart,
		PlaceOfOrigin: "Delft",
		Dimensions:    "46.5 x 39 cm",
		MediumDisplay: "Oil on canvas",
		Latitude:      &lat,
		Longitude:     &lng,
		Department:    "Paintings",
		ArtistID:      &artistID,
		ArtistTitle:   "Vermeer",
		OnDisplay:     &onDisplay,
	})
	require.NoError(t, err)
}

func serveWith(store *mockStore, role rbac.Role, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/artworks", NewResource(nil, nil, store, store).MountRoutes)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if role != "" {
		ctx := rbac.ContextWithPrincipal(req.Context(), &rbac.Principal{ID: 1, Role: role})
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAnonymousCannotListArtworks(t *testing.T) {
	rec := serveWith(newMockStore(), "", http.MethodGet, "/artworks/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only registered users can view all artworks", messageOf(t, rec))
}

func TestVisitorCanListArtworks(t *testing.T) {
	store := newMockStore()
	addArtwork(t, store, "Girl with a Pearl Earring", false)

	rec := serveWith(store, rbac.RoleVisitor, http.MethodGet, "/artworks/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []Artwork
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestVisitorCannotCreateArtwork(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleVisitor, http.MethodPost, "/artworks/", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only staff or managers can add new artworks", messageOf(t, rec))
}

func TestDisplayedViewIsPublic(t *testing.T) {
	store := newMockStore()
	addArtwork(t, store, "Shown", true)
	addArtwork(t, store, "In storage", false)

	rec := serveWith(store, "", http.MethodGet, "/artworks/displayed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []Artwork
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Shown", records[0].Title)
}

func TestDisplayedViewEmptyIs404(t *testing.T) {
	store := newMockStore()
	addArtwork(t, store, "In storage", false)

	rec := serveWith(store, "", http.MethodGet, "/artworks/displayed", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No artworks are displayed", messageOf(t, rec))
}

func TestEducatorCannotDeleteAllArtworks(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleEducator, http.MethodDelete, "/artworks/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only managers can delete all artworks", messageOf(t, rec))
}

func TestArtworkNotFoundMessage(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleVisitor, http.MethodGet, "/artworks/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "The artwork does not exist", messageOf(t, rec))
}
