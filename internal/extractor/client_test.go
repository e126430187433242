package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func writeTempPDF(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o644); err != nil {
		t.Fatalf("writing temp pdf: %v", err)
	}
	return path
}

func TestExtractSuccess(t *testing.T) {
	var gotPath, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Fatalf("expected file field: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "text": "精通 Go 开发", "page_texts": ["精通 Go 开发"], "pages": 1, "chars": 9, "hint": "", "status": "success"}`))
	}))
	defer srv.Close()

	client := New(context.Background(), zap.NewNop(), srv.URL, "test-token")

	extraction, err := client.Extract(writeTempPDF(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/extract-text" {
		t.Fatalf("unexpected request path: %s", gotPath)
	}

	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("expected multipart content type, got %s", gotContentType)
	}

	if extraction.Text != "精通 Go 开发" {
		t.Fatalf("unexpected text: %q", extraction.Text)
	}

	if extraction.Status != StatusSuccess {
		t.Fatalf("unexpected status: %s", extraction.Status)
	}

	if extraction.Pages != 1 {
		t.Fatalf("expected 1 page, got %d", extraction.Pages)
	}
}

func TestExtractServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": false, "hint": "scanned image, no text layer", "status": "failed"}`))
	}))
	defer srv.Close()

	client := New(context.Background(), zap.NewNop(), srv.URL, "")

	_, err := client.Extract(writeTempPDF(t))
	if err == nil {
		t.Fatalf("expected error for ok=false response")
	}

	if !strings.Contains(err.Error(), "scanned image") {
		t.Fatalf("expected hint in error, got: %v", err)
	}
}

func TestExtractRetriesUntilSuccess(t *testing.T) {
	attempts := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true, "text": "ok", "pages": 1, "chars": 2, "status": "success"}`))
	}))
	defer srv.Close()

	client := New(context.Background(), zap.NewNop(), srv.URL, "")
	client.MaxRetries = 2

	extraction, err := client.Extract(writeTempPDF(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}

	if extraction.Text != "ok" {
		t.Fatalf("unexpected text: %q", extraction.Text)
	}
}
