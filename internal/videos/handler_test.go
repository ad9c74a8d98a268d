package videos

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
	records map[int64]*Video
	nextID  int64
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[int64]*Video), nextID: 1}
}

func (m *mockStore) FindAll(_ context.Context, title string) ([]Video, error) {
	var out []Video
	for _, rec := range m.records {
		if title == "" || strings.Contains(strings.ToLower(rec.Title), strings.ToLower(title)) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *mockStore) FindByID(_ context.Context, id int64) (Video, error) {
	rec, ok := m.records[id]
	if !ok {
		return Video{}, shared.ErrNotFound
	}
	return *rec, nil
}

func (m *mockStore) Create(_ context.Context, req CreateVideoRequest) (Video, error) {
	now := time.Now()
	rec := Video{
		ID:             m.nextID,
		Title:          req.Title,
		Video:          req.Video,
		Thumbnail:      req.Thumbnail,
		ProductionDate: *req.ProductionDate,
		PlaceOfOrigin:  req.PlaceOfOrigin,
		Length:         req.Length,
		Creator:        req.Creator,
		Subject:        req.Subject,
		CreatedDate:    now,
		LastModified:   now,
	}
	if req.Published != nil {
		rec.Published = *req.Published
	}
	m.records[rec.ID] = &rec
	m.nextID++
	return rec, nil
}

func (m *mockStore) Update(_ context.Context, id int64, req UpdateVideoRequest) (Video, error) {
	rec, ok := m.records[id]
	if !ok {
		return Video{}, shared.ErrNotFound
	}
	if req.Title != nil {
		rec.Title = *req.Title
	}
	if req.Published != nil {
		rec.Published = *req.Published
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
	m.records = make(map[int64]*Video)
	return n, nil
}

func (m *mockStore) FindFlagged(_ context.Context) ([]Video, error) {
	var out []Video
	for _, rec := range m.records {
		if rec.Published {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func addVideo(t *testing.T, store *mockStore, title string, published bool) {
	t.Helper()
	year := 2019
	_, err := store.Create(context.Background(), CreateVideoRequest{
		Title:          title,
		Video:          "videos/tour.mp4",
		Thumbnail:      "videos/tour.jpg",
		ProductionDate: &year,
		PlaceOfOrigin:  "Amsterdam",
		Length:         "12:30",
		Creator:        "Gallery Media",
		Subject:        "Dutch painting",
		Published:      &published,
	})
	require.NoError(t, err)
}

func serveWith(store *mockStore, role rbac.Role, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/videos", NewResource(nil, nil, store, store).MountRoutes)

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

func TestVisitorCannotListVideos(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleVisitor, http.MethodGet, "/videos/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only staff or managers can view all videos", messageOf(t, rec))
}

func TestEducatorCannotListAllVideos(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleEducator, http.MethodGet, "/videos/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only staff or managers can view all videos", messageOf(t, rec))
}

func TestEducatorSeesPublishedVideos(t *testing.T) {
	store := newMockStore()
	addVideo(t, store, "Gallery tour", true)
	addVideo(t, store, "Draft walkthrough", false)

	rec := serveWith(store, rbac.RoleEducator, http.MethodGet, "/videos/published", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []Video
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Gallery tour", records[0].Title)
}

func TestVisitorCannotSeePublishedVideos(t *testing.T) {
	store := newMockStore()
	addVideo(t, store, "Gallery tour", true)

	rec := serveWith(store, rbac.RoleVisitor, http.MethodGet, "/videos/published", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only education users can view published videos", messageOf(t, rec))
}

func TestNoPublishedVideosIs404(t *testing.T) {
	store := newMockStore()
	addVideo(t, store, "Draft walkthrough", false)

	rec := serveWith(store, rbac.RoleStaff, http.MethodGet, "/videos/published", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No videos are published", messageOf(t, rec))
}

func TestStaffManagesVideos(t *testing.T) {
	store := newMockStore()
	rec := serveWith(store, rbac.RoleStaff, http.MethodPost, "/videos/",
		`{"title":"Gallery tour","video":"videos/tour.mp4","thumbnail":"videos/tour.jpg","production_date":2019,"place_of_origin":"Amsterdam","length":"12:30","creator":"Gallery Media","subject":"Dutch painting"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serveWith(store, rbac.RoleStaff, http.MethodPut, "/videos/1", `{"published":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Video
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Published)
	assert.Equal(t, "Gallery tour", updated.Title)
}

func TestStaffCannotDeleteVideos(t *testing.T) {
	store := newMockStore()
	addVideo(t, store, "Gallery tour", true)

	rec := serveWith(store, rbac.RoleStaff, http.MethodDelete, "/videos/1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only managers can delete videos", messageOf(t, rec))
}
