package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stefanristic40/golden-eye-api/internal/auth"
	"github.com/stefanristic40/golden-eye-api/internal/models"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
)

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error) {
	if _, ok := f.users[username]; ok {
		return nil, storage.ErrDuplicate
	}
	u := &models.User{ID: uuid.New(), Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.users[username] = u
	return u, nil
}

func (f *fakeUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return u, nil
}

func setupAuthRouter(users UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(users, "test-secret", time.Hour)
	r := gin.New()
	r.POST("/api/signup", h.Signup)
	r.POST("/api/signin", h.Signin)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	w := postJSON(r, "/api/signup", gin.H{"username": "alice", "password": "pw123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	postJSON(r, "/api/signup", gin.H{"username": "alice", "password": "pw123"})
	w := postJSON(r, "/api/signup", gin.H{"username": "alice", "password": "other"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSignupMissingFields(t *testing.T) {
	r := setupAuthRouter(newFakeUserStore())

	w := postJSON(r, "/api/signup", gin.H{"username": "alice"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSigninSuccess(t *testing.T) {
	store := newFakeUserStore()
	hash, _ := auth.HashPassword("pw123")
	store.users["alice"] = &models.User{ID: uuid.New(), Username: "alice", PasswordHash: hash}

	r := setupAuthRouter(store)
	w := postJSON(r, "/api/signin", gin.H{"username": "alice", "password": "pw123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.AccessToken == "" {
		t.Fatal("expected an access token in the response")
	}

	userID, err := auth.GetUserIDFromToken(resp.AccessToken, []byte("test-secret"))
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if userID != store.users["alice"].ID.String() {
		t.Fatalf("token user id mismatch: got %q", userID)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestSigninDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	store := newFakeUserStore()
	hash, _ := auth.HashPassword("pw123")
	store.users["alice"] = &models.User{ID: uuid.New(), Username: "alice", PasswordHash: hash}

	r := setupAuthRouter(store)

	noUser := postJSON(r, "/api/signin", gin.H{"username": "bob", "password": "pw123"})
	badPass := postJSON(r, "/api/signin", gin.H{"username": "alice", "password": "wrong"})

	if noUser.Code != http.StatusUnauthorized || badPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", noUser.Code, badPass.Code)
	}
	if noUser.Body.String() != badPass.Body.String() {
		t.Fatalf("responses differ: %q vs %q", noUser.Body.String(), badPass.Body.String())
	}
}
