package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupImageRouter(images *fakeObjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewImageHandler(images)
	r := gin.New()
	r.GET("/images/:filename", h.Get)
	return r
}

func TestGetImage(t *testing.T) {
	images := newFakeObjectStore()
	images.PutObject(context.Background(), thumbnailPrefix+"abc.jpg", []byte("image-bytes"), "")

	r := setupImageRouter(images)
	req, _ := http.NewRequest("GET", "/images/abc.jpg", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "image-bytes" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestGetImageNotFound(t *testing.T) {
	r := setupImageRouter(newFakeObjectStore())

	req, _ := http.NewRequest("GET", "/images/missing.jpg", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetImageRejectsTraversal(t *testing.T) {
	images := newFakeObjectStore()
	images.PutObject(context.Background(), "secrets/key", []byte("nope"), "")

	r := setupImageRouter(images)
	req, _ := http.NewRequest("GET", "/images/..%2Fsecrets%2Fkey", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest && w.Code != http.StatusNotFound {
		t.Fatalf("expected rejection, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() == "nope" {
		t.Fatal("traversal must not reach other objects")
	}
}
