package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Corpus-2021/htmlunit/browser"
)

func TestApplyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `
user_agent: "ProbeBot/1.0"
platform: Linux x86_64
language: de-DE
header_order: [Host, User-Agent, Accept]
upload_mime_types:
  dat: application/x-probe
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}

	v, err := applyOverrides(browser.Chrome, path)
	if err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}

	if v.UserAgent() != "ProbeBot/1.0" {
		t.Errorf("UserAgent = %q", v.UserAgent())
	}
	if v.Platform() != "Linux x86_64" {
		t.Errorf("Platform = %q", v.Platform())
	}
	if v.BrowserLanguage() != "de-DE" {
		t.Errorf("BrowserLanguage = %q", v.BrowserLanguage())
	}
	order := v.HeaderNamesOrdered()
	if len(order) != 3 || order[0] != "Host" || order[2] != "Accept" {
		t.Errorf("HeaderNamesOrdered = %v", order)
	}
	if got := v.UploadMimeType("x.dat"); got != "application/x-probe" {
		t.Errorf("UploadMimeType(dat) = %q", got)
	}

	// Untouched attributes keep template values, including the
	// already-resolved feature set.
	if v.HTMLAccept() != browser.Chrome.HTMLAccept() {
		t.Error("HTMLAccept should come from the template")
	}
	if !v.IsChrome() {
		t.Error("derived version should keep the template's lineage")
	}
	if browser.Chrome.UserAgent() == "ProbeBot/1.0" {
		t.Error("template must not be mutated")
	}
}

func TestApplyOverridesBadFile(t *testing.T) {
	if _, err := applyOverrides(browser.Chrome, "does-not-exist.yaml"); err == nil {
		t.Error("missing file should error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("user_agent: [not: a: string"), 0o644)
	if _, err := applyOverrides(browser.Chrome, path); err == nil {
		t.Error("malformed yaml should error")
	}
}
