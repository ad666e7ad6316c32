package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jovid18/nihonki/internal/lesson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"1.json": `{"title": "Nature", "kanji": [{"prob": "山", "ans": "やま"}], "katakana": [{"prob": "キャンプ", "ans": "camp"}]}`,
		"2.yaml": "kanji:\n  - prob: 川\n    ans: かわ\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	srv := NewServer("", lesson.NewDirSource(dir, nil), nil)
	srv.startTime = time.Now()
	return srv, srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	_, h := newTestServer(t)

	w := get(t, h, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("health status = %v, want ok", body["status"])
	}
	if body["lessons"] != float64(2) {
		t.Errorf("health lessons = %v, want 2", body["lessons"])
	}
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("health POST status = %d, want 405 or 404", w.Code)
	}
}

func TestListLessons(t *testing.T) {
	_, h := newTestServer(t)

	w := get(t, h, "/api/lessons")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d", w.Code, http.StatusOK)
	}

	var got []lesson.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lessons, want 2", len(got))
	}
	if got[0].ID != "1" || got[0].Title != "Nature" || got[0].Total() != 2 {
		t.Errorf("first summary = %+v", got[0])
	}
	if got[1].ID != "2" || got[1].KanjiCount != 1 {
		t.Errorf("second summary = %+v", got[1])
	}
}

func TestGetLesson(t *testing.T) {
	_, h := newTestServer(t)

	for _, path := range []string{"/api/lessons/2", "/data/2.json"} {
		w := get(t, h, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want %d", path, w.Code, http.StatusOK)
		}

		// YAML lessons are served as JSON in the site's wire format.
		l, err := lesson.Parse(w.Body.Bytes(), lesson.FormatJSON)
		if err != nil {
			t.Fatalf("%s: parsing body: %v", path, err)
		}
		if len(l.Kanji) != 1 || l.Kanji[0].Ans != "かわ" {
			t.Errorf("%s: lesson = %+v", path, l)
		}
	}
}

func TestGetLesson_Errors(t *testing.T) {
	_, h := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/lessons/9", http.StatusNotFound},
		{"/data/9.json", http.StatusNotFound},
		{"/data/1.yaml", http.StatusNotFound},
		{"/api/lessons/a%5Cb", http.StatusBadRequest},
	}

	for _, tt := range tests {
		w := get(t, h, tt.path)
		if w.Code != tt.want {
			t.Errorf("%s status = %d, want %d; body: %s", tt.path, w.Code, tt.want, w.Body.String())
		}
	}
}

type failingSource struct{}

func (failingSource) List(context.Context) ([]lesson.Summary, error) {
	return nil, errors.New("disk on fire")
}

func (failingSource) Load(context.Context, string) (*lesson.Lesson, error) {
	return nil, errors.New("disk on fire")
}

func TestSourceFailures(t *testing.T) {
	h := NewServer("", failingSource{}, nil).Handler()

	for _, path := range []string{"/api/health", "/api/lessons", "/api/lessons/1", "/data/1.json"} {
		w := get(t, h, path)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("%s status = %d, want 500", path, w.Code)
		}
	}
}

func TestStartServeStop(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.addr = "127.0.0.1:0"

	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}

	if err := srv.Stop(time.Second); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v after Stop, want nil", err)
	}
}
