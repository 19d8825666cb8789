package client

import (
	"testing"

	"github.com/Corpus-2021/htmlunit/browser"
)

func TestAcceptFor(t *testing.T) {
	v := browser.Chrome

	tests := []struct {
		kind Resource
		want string
	}{
		{ResourceDocument, v.HTMLAccept()},
		{ResourceScript, v.ScriptAccept()},
		{ResourceXHR, v.XHRAccept()},
		{ResourceImage, v.ImgAccept()},
		{ResourceCSS, v.CSSAccept()},
	}
	for _, tt := range tests {
		if got := AcceptFor(v, tt.kind); got != tt.want {
			t.Errorf("AcceptFor(%d) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPrepareHeadersIdentity(t *testing.T) {
	c := NewClient(browser.Firefox)
	defer c.Close()

	headers := c.PrepareHeaders(ResourceDocument)
	if got := headers[browser.HeaderUserAgent]; got != browser.Firefox.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", got, browser.Firefox.UserAgent())
	}
	if got := headers[browser.HeaderAccept]; got != browser.Firefox.HTMLAccept() {
		t.Errorf("Accept = %q, want %q", got, browser.Firefox.HTMLAccept())
	}
	if got := headers[browser.HeaderAcceptEncoding]; got != browser.Firefox.AcceptEncoding() {
		t.Errorf("Accept-Encoding = %q, want %q", got, browser.Firefox.AcceptEncoding())
	}
	if got := headers[browser.HeaderAcceptLanguage]; got != browser.Firefox.BrowserLanguage() {
		t.Errorf("Accept-Language = %q, want %q", got, browser.Firefox.BrowserLanguage())
	}
}

func TestPrepareHeadersUpgradeInsecureRequests(t *testing.T) {
	chrome := NewClient(browser.Chrome)
	defer chrome.Close()
	ie := NewClient(browser.InternetExplorer)
	defer ie.Close()

	if _, ok := chrome.PrepareHeaders(ResourceDocument)[browser.HeaderUpgradeInsecureRequests]; !ok {
		t.Error("chrome document request is missing Upgrade-Insecure-Requests")
	}
	if _, ok := chrome.PrepareHeaders(ResourceImage)[browser.HeaderUpgradeInsecureRequests]; ok {
		t.Error("chrome image request should not carry Upgrade-Insecure-Requests")
	}
	if _, ok := ie.PrepareHeaders(ResourceDocument)[browser.HeaderUpgradeInsecureRequests]; ok {
		t.Error("internet explorer should not carry Upgrade-Insecure-Requests")
	}
}

func TestNewClientNilVersion(t *testing.T) {
	c := NewClient(nil)
	defer c.Close()

	if c.Version() != browser.Default() {
		t.Error("nil version should fall back to the process default")
	}
}
