package client

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/Corpus-2021/htmlunit/browser"
)

func parseForm(t *testing.T, body []byte, contentType string) *multipart.Reader {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	return multipart.NewReader(bytes.NewReader(body), params["boundary"])
}

func TestFormDataFieldsAndFiles(t *testing.T) {
	form := NewFormData().
		AddField("comment", "hello").
		AddFile("upload", "photo.PNG", []byte{0x89, 'P', 'N', 'G'})

	body, contentType, err := form.Encode(browser.Chrome)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	reader := parseForm(t, body, contentType)

	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("first part: %v", err)
	}
	if part.FormName() != "comment" {
		t.Errorf("first part name = %q, want comment", part.FormName())
	}
	value, _ := io.ReadAll(part)
	if string(value) != "hello" {
		t.Errorf("field value = %q, want hello", value)
	}

	part, err = reader.NextPart()
	if err != nil {
		t.Fatalf("second part: %v", err)
	}
	if part.FileName() != "photo.PNG" {
		t.Errorf("filename = %q, want photo.PNG", part.FileName())
	}
	if got := part.Header.Get("Content-Type"); got != "image/png" {
		t.Errorf("file content type = %q, want image/png", got)
	}
}

func TestFormDataUnknownExtensionFallsBack(t *testing.T) {
	form := NewFormData().AddFile("upload", "archive.xyz", []byte("data"))

	body, contentType, err := form.Encode(browser.Firefox)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	reader := parseForm(t, body, contentType)
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("part: %v", err)
	}
	if got := part.Header.Get("Content-Type"); got != octetStream {
		t.Errorf("content type = %q, want %q", got, octetStream)
	}
}

func TestFormDataPerVersionMimeTable(t *testing.T) {
	form := NewFormData().AddFile("upload", "clip.webp", []byte("riff"))

	body, contentType, err := form.Encode(browser.Firefox60)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	reader := parseForm(t, body, contentType)
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("part: %v", err)
	}
	if got := part.Header.Get("Content-Type"); got != octetStream {
		t.Errorf("firefox 60 webp content type = %q, want fallback %q", got, octetStream)
	}

	body, contentType, err = form.Encode(browser.Firefox)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	reader = parseForm(t, body, contentType)
	part, err = reader.NextPart()
	if err != nil {
		t.Fatalf("part: %v", err)
	}
	if got := part.Header.Get("Content-Type"); got != "image/webp" {
		t.Errorf("firefox webp content type = %q, want image/webp", got)
	}
}
