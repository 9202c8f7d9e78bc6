package file_test

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"movieflix/config"
	fileController "movieflix/controllers/file"
	"movieflix/services/storage"

	"github.com/gofiber/fiber/v2"
)

func TestServeFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "poster.png"), []byte("png-bytes"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	cfg := &config.Config{PosterDir: dir}
	ctl := fileController.NewFileController(storage.NewFileService(), cfg)

	app := fiber.New()
	app.Get("/file/:filename", ctl.ServeFile)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/file/poster.png", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "png-bytes" {
		t.Fatalf("unexpected body %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png content type, got %q", ct)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/file/missing.png", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing file, got %d", resp.StatusCode)
	}
}

// The content type follows the stored filename's extension.
func TestServeFileContentTypeByExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "poster.jpg"), []byte("jpg-bytes"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	cfg := &config.Config{PosterDir: dir}
	ctl := fileController.NewFileController(storage.NewFileService(), cfg)

	app := fiber.New()
	app.Get("/file/:filename", ctl.ServeFile)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/file/poster.jpg", nil), -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("expected image/jpeg content type, got %q", ct)
	}
}
