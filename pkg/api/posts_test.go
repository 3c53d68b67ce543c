package api

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/client"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/config"
)

// pointClientAt redirects the HTTP client at a test server
func pointClientAt(t *testing.T, url string) {
	t.Helper()
	if err := config.Init(filepath.Join(t.TempDir(), "config.toml")); err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}
	if err := config.SetString("api.base_url", url); err != nil {
		t.Fatalf("Failed to set base URL: %v", err)
	}
	client.ClearAuthToken() // forces re-init with the new base URL
}

func TestGetAllPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts/all" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "0" {
			t.Errorf("Expected page=0, got %s", got)
		}
		if got := r.URL.Query().Get("size"); got != "20" {
			t.Errorf("Expected size=20, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"content": [{"id": 1, "fullName": "Abdulloh Karimov", "likeCount": 2, "isLiked": false}], "last": false, "number": 0}}`))
	}))
	defer srv.Close()

	pointClientAt(t, srv.URL)

	page, err := GetAllPosts(0, 20, "", "")
	if err != nil {
		t.Fatalf("GetAllPosts failed: %v", err)
	}
	if len(page.Content) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(page.Content))
	}
	if page.Content[0].ID != 1 {
		t.Errorf("Expected post id 1, got %d", page.Content[0].ID)
	}
	if page.Last {
		t.Error("Page should not be last")
	}
}

func TestGetAllPostsWithFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("region"); got != "Toshkent" {
			t.Errorf("Expected region=Toshkent, got %s", got)
		}
		if got := r.URL.Query().Get("district"); got != "Chilonzor" {
			t.Errorf("Expected district=Chilonzor, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"content": [], "last": true, "number": 0}}`))
	}))
	defer srv.Close()

	pointClientAt(t, srv.URL)

	page, err := GetAllPosts(0, 10, "Toshkent", "Chilonzor")
	if err != nil {
		t.Fatalf("GetAllPosts failed: %v", err)
	}
	if !page.Last {
		t.Error("Empty filtered page should be last")
	}
}

func TestGetAllPostsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code": "internal_error", "message": "boom"}`))
	}))
	defer srv.Close()

	pointClientAt(t, srv.URL)

	_, err := GetAllPosts(0, 20, "", "")
	if err == nil {
		t.Fatal("Expected error from failing server")
	}
	if !IsServerError(err) {
		t.Errorf("Expected server error classification, got %v", err)
	}
}

func TestLikePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts/42/like" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"likeCount": 5}}`))
	}))
	defer srv.Close()

	pointClientAt(t, srv.URL)

	count, err := LikePost(42)
	if err != nil {
		t.Fatalf("LikePost failed: %v", err)
	}
	if count != 5 {
		t.Errorf("Expected like count 5, got %d", count)
	}
}

func TestUnlikePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/posts/42/like" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"likeCount": 4}}`))
	}))
	defer srv.Close()

	pointClientAt(t, srv.URL)

	count, err := UnlikePost(42)
	if err != nil {
		t.Fatalf("UnlikePost failed: %v", err)
	}
	if count != 4 {
		t.Errorf("Expected like count 4, got %d", count)
	}
}

func TestAddCommentCarriesClientKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req AddCommentRequest
		if err := decodeJSONBody(r, &req); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if req.ClientKey == "" {
			t.Error("Comment request should carry a clientKey")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": 9, "postId": 42, "text": "` + req.Text + `", "clientKey": "` + req.ClientKey + `", "author": {"name": "You"}}}`))
	}))
	defer srv.Close()

	pointClientAt(t, srv.URL)

	comment, err := AddComment(42, AddCommentRequest{Text: "Jannatda bo'lsinlar", ClientKey: "ck-1"})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.ClientKey != "ck-1" {
		t.Errorf("Echoed clientKey mismatch: got %s", comment.ClientKey)
	}
}
