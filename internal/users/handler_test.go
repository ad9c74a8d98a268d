package users

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
	records map[int64]*User
	byEmail map[string]int64
	nextID  int64
}

func newMockStore() *mockStore {
	return &mockStore{records: make(map[int64]*User), byEmail: make(map[string]int64), nextID: 1}
}

func (m *mockStore) FindAll(_ context.Context, email string) ([]User, error) {
	var out []User
	for _, rec := range m.records {
		if email == "" || strings.Contains(strings.ToLower(rec.Email), strings.ToLower(email)) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (m *mockStore) FindByID(_ context.Context, id int64) (User, error) {
	rec, ok := m.records[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	return *rec, nil
}

func (m *mockStore) Create(_ context.Context, req CreateUserRequest) (User, error) {
	if _, exists := m.byEmail[req.Email]; exists {
		return User{}, shared.ErrDuplicate
	}
	now := time.Now()
	rec := User{
		ID:           m.nextID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Role:         rbac.Role(req.Role),
		IsActive:     true,
		CreatedDate:  now,
		LastModified: now,
	}
	if req.IsActive != nil {
		rec.IsActive = *req.IsActive
	}
	m.records[rec.ID] = &rec
	m.byEmail[rec.Email] = rec.ID
	m.nextID++
	return rec, nil
}

func (m *mockStore) Update(_ context.Context, id int64, req UpdateUserRequest) (User, error) {
	rec, ok := m.records[id]
	if !ok {
		return User{}, shared.ErrNotFound
	}
	if req.Email != nil {
		if other, exists := m.byEmail[*req.Email]; exists && other != id {
			return User{}, shared.ErrDuplicate
		}
		delete(m.byEmail, rec.Email)
		rec.Email = *req.Email
		m.byEmail[rec.Email] = id
	}
	if req.FirstName != nil {
		rec.FirstName = *req.FirstName
	}
	if req.Role != nil {
		rec.Role = rbac.Role(*req.Role)
	}
	rec.LastModified = time.Now()
	return *rec, nil
}

func (m *mockStore) Delete(_ context.Context, id int64) error {
	rec, ok := m.records[id]
	if !ok {
		return shared.ErrNotFound
	}
	delete(m.byEmail, rec.Email)
	delete(m.records, id)
	return nil
}

func (m *mockStore) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.records))
	m.records = make(map[int64]*User)
	m.byEmail = make(map[string]int64)
	return n, nil
}

func addUser(t *testing.T, store *mockStore, email, role string) {
	t.Helper()
	_, err := store.Create(context.Background(), CreateUserRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret",
		Role:      role,
	})
	require.NoError(t, err)
}

func serveWith(store *mockStore, role rbac.Role, method, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/users", NewResource(nil, nil, store).MountRoutes)

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

func TestEducatorCannotViewUsers(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleEducator, http.MethodGet, "/users/", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only staff or managers can view users", messageOf(t, rec))
}

func TestStaffCannotCreateUsers(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleStaff, http.MethodPost, "/users/", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only managers can add new users", messageOf(t, rec))
}

func TestCreateUserNeverEchoesPassword(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleManager, http.MethodPost, "/users/",
		`{"first_name":"Elena","last_name":"Okafor","email":"elena@gallery.example","password":"hunter2","role":"ED"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.NotContains(t, rec.Body.String(), "password")

	var created User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, rbac.RoleEducator, created.Role)
	assert.True(t, created.IsActive)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleManager, http.MethodPost, "/users/",
		`{"first_name":"X","last_name":"Y","email":"x@gallery.example","password":"p","role":"ZZ"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errs map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errs))
	assert.Contains(t, errs, "role")
}

func TestDuplicateEmailIs400(t *testing.T) {
	store := newMockStore()
	addUser(t, store, "elena@gallery.example", "ED")

	rec := serveWith(store, rbac.RoleManager, http.MethodPost, "/users/",
		`{"first_name":"Other","last_name":"Person","email":"elena@gallery.example","password":"p","role":"VI"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User with that email already exists", messageOf(t, rec))
}

func TestStaffCannotChangeRole(t *testing.T) {
	store := newMockStore()
	addUser(t, store, "elena@gallery.example", "ED")

	rec := serveWith(store, rbac.RoleStaff, http.MethodPut, "/users/1", `{"role":"MA"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Only managers can modify a user role", messageOf(t, rec))

	// The same gate fires for a missing user: authorization comes first.
	rec = serveWith(store, rbac.RoleStaff, http.MethodPut, "/users/42", `{"role":"MA"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaffUpdatesProfileFields(t *testing.T) {
	store := newMockStore()
	addUser(t, store, "elena@gallery.example", "ED")

	rec := serveWith(store, rbac.RoleStaff, http.MethodPut, "/users/1", `{"first_name":"Lena"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Lena", updated.FirstName)
	assert.Equal(t, rbac.RoleEducator, updated.Role)
}

func TestManagerChangesRole(t *testing.T) {
	store := newMockStore()
	addUser(t, store, "elena@gallery.example", "ED")

	rec := serveWith(store, rbac.RoleManager, http.MethodPut, "/users/1", `{"role":"ST"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, rbac.RoleStaff, updated.Role)
}

func TestUserNotFoundMessage(t *testing.T) {
	rec := serveWith(newMockStore(), rbac.RoleManager, http.MethodGet, "/users/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "The user does not exist", messageOf(t, rec))
}

func TestDeleteUserMessages(t *testing.T) {
	store := newMockStore()
	addUser(t, store, "elena@gallery.example", "ED")

	rec := serveWith(store, rbac.RoleManager, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "User was deleted.", messageOf(t, rec))
}
