package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"classroom_backend/internals/helpers/logger"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	ctrl := NewFileController(dir, logger.Nop{})

	app := fiber.New()
	app.Post("/upload", ctrl.Upload)
	app.Get("/:filename", ctrl.Serve)
	return app, dir
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func TestUploadStoresFileWithUniqueName(t *testing.T) {
	app, dir := newTestApp(t)

	body, contentType := multipartBody(t, "report.pdf", "pdf-bytes")
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			URL      string `json:"url"`
			Filename string `json:"filename"`
			Size     string `json:"size"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	if envelope.Data.Filename != "report.pdf" {
		t.Fatalf("filename = %q, want original name", envelope.Data.Filename)
	}

	stored := filepath.Base(envelope.Data.URL)
	if filepath.Ext(stored) != ".pdf" {
		t.Fatalf("stored name %q lost the extension", stored)
	}
	if stored == "report.pdf" {
		t.Fatal("stored name must not reuse the client name")
	}
	if _, err := os.Stat(filepath.Join(dir, stored)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServeUnknownFile(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/missing.txt", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestResolveUnderRoot(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{name: "plain file", filename: "report.pdf"},
		{name: "dot resolves to root itself", filename: ".", wantErr: true},
		{name: "dotdot escapes", filename: "..", wantErr: true},
		{name: "relative escape", filename: "../secret.txt", wantErr: true},
		{name: "nested escape", filename: "a/../../secret.txt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := resolveUnderRoot(root, tt.filename)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("resolved to %q, want refusal", resolved)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if filepath.Dir(resolved) != root {
				t.Fatalf("resolved %q outside root %q", resolved, root)
			}
		})
	}
}

func TestServeRejectsPathEscape(t *testing.T) {
	app, dir := newTestApp(t)

	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o600); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/..%2Fsecret.txt", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode == http.StatusOK {
		t.Fatal("path escape served a file outside the upload root")
	}
}
