package browser

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"
)

// newYork is the emulated system timezone every canonical version reports.
var newYork = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("browser: cannot load timezone %s: %v", name, err))
	}
	return loc
}

// Canonical browser versions, built once at process start.
var (
	// Firefox is the rolling Firefox release.
	Firefox = newFirefox()

	// Firefox68 is the Firefox 68 ESR line.
	Firefox68 = newFirefox68()

	// Firefox60 is the Firefox 60 ESR line.
	//
	// Deprecated: derive from Firefox68 or Firefox instead.
	Firefox60 = newFirefox60()

	// InternetExplorer is Internet Explorer 11.
	InternetExplorer = newInternetExplorer()

	// Chrome is the latest supported Chrome.
	Chrome = newChrome()

	// BestSupported is the most broadly compatible version at the moment.
	BestSupported = Chrome
)

var defaultVersion atomic.Pointer[BrowserVersion]

// canonical maps nickname to canonical version for Lookup.
var canonical = map[string]*BrowserVersion{}

func init() {
	for _, v := range []*BrowserVersion{Firefox, Firefox68, Firefox60, InternetExplorer, Chrome} {
		if _, dup := canonical[v.Nickname()]; dup {
			panic(fmt.Sprintf("browser: duplicate canonical nickname %q", v.Nickname()))
		}
		canonical[v.Nickname()] = v
	}
	defaultVersion.Store(BestSupported)
}

// Default returns the browser version used whenever a specific one is not
// supplied. Initially BestSupported.
func Default() *BrowserVersion {
	return defaultVersion.Load()
}

// SetDefault swaps the process-wide default version. The swap is atomic;
// concurrent writers race last-write-wins. A nil version is a caller bug
// and panics.
func SetDefault(v *BrowserVersion) {
	if v == nil {
		panic("browser: SetDefault called with nil version")
	}
	defaultVersion.Store(v)
}

// Lookup returns the canonical version with the given nickname.
func Lookup(nickname string) (*BrowserVersion, error) {
	v, ok := canonical[nickname]
	if !ok {
		return nil, fmt.Errorf("browser: unknown version nickname %q", nickname)
	}
	return v, nil
}

// Available returns the nicknames of all canonical versions, sorted.
func Available() []string {
	names := make([]string, 0, len(canonical))
	for name := range canonical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newFirefox() *BrowserVersion {
	v := newBrowserVersion(74, "FF")
	v.applicationVersion = "5.0 (Windows)"
	v.userAgent = fmt.Sprintf(
		"Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:%d.0) Gecko/20100101 Firefox/%d.0",
		v.version, v.version)
	v.buildID = "20181001000000"
	v.productSub = "20100101"
	v.headerNamesOrdered = []string{
		HeaderHost,
		HeaderUserAgent,
		HeaderAccept,
		HeaderAcceptLanguage,
		HeaderAcceptEncoding,
		HeaderReferer,
		HeaderConnection,
		HeaderCookie,
	}
	v.htmlAcceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	v.xhrAcceptHeader = "*/*"
	v.imgAcceptHeader = "image/webp,*/*"
	v.cssAcceptHeader = "text/css,*/*;q=0.1"
	v.fontHeights = firefoxFontHeights
	registerFirefoxUploadTypes(v)
	v.registerUploadMimeType("webp", "image/webp")
	return v
}

func newFirefox68() *BrowserVersion {
	v := newBrowserVersion(68, "FF68")
	v.applicationVersion = "5.0 (Windows)"
	v.userAgent = fmt.Sprintf(
		"Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:%d.0) Gecko/20100101 Firefox/%d.0",
		v.version, v.version)
	v.buildID = "20181001000000"
	v.productSub = "20100101"
	v.headerNamesOrdered = []string{
		HeaderHost,
		HeaderUserAgent,
		HeaderAccept,
		HeaderAcceptLanguage,
		HeaderAcceptEncoding,
		HeaderReferer,
		HeaderConnection,
		HeaderCookie,
	}
	v.htmlAcceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	v.xhrAcceptHeader = "*/*"
	v.imgAcceptHeader = "image/webp,*/*"
	v.cssAcceptHeader = "text/css,*/*;q=0.1"
	v.fontHeights = firefoxFontHeights
	registerFirefoxUploadTypes(v)
	v.registerUploadMimeType("webp", "image/webp")
	return v
}

func newFirefox60() *BrowserVersion {
	v := newBrowserVersion(60, "FF60")
	v.applicationVersion = "5.0 (Windows)"
	v.userAgent = fmt.Sprintf(
		"Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:%d.0) Gecko/20100101 Firefox/%d.0",
		v.version, v.version)
	v.buildID = "20190901094603"
	v.productSub = "20100101"
	v.headerNamesOrdered = []string{
		HeaderHost,
		HeaderUserAgent,
		HeaderAccept,
		HeaderAcceptLanguage,
		HeaderAcceptEncoding,
		HeaderReferer,
		HeaderCookie,
		HeaderConnection,
	}
	v.htmlAcceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	v.xhrAcceptHeader = "*/*"
	v.imgAcceptHeader = "*/*"
	v.cssAcceptHeader = "text/css,*/*;q=0.1"
	v.fontHeights = firefox60FontHeights
	registerFirefoxUploadTypes(v)
	return v
}

func newInternetExplorer() *BrowserVersion {
	v := newBrowserVersion(11, "IE")
	v.applicationVersion = fmt.Sprintf(
		"5.0 (Windows NT 6.1; WOW64; Trident/7.0; rv:%d.0) like Gecko", v.version)
	v.userAgent = "Mozilla/5.0 (Windows NT 6.1; Trident/7.0; rv:11.0) like Gecko"
	v.platform = PlatformWin32
	v.headerNamesOrdered = []string{
		HeaderAccept,
		HeaderReferer,
		HeaderAcceptLanguage,
		HeaderUserAgent,
		HeaderAcceptEncoding,
		HeaderHost,
		HeaderDNT,
		HeaderConnection,
		HeaderCookie,
	}
	v.htmlAcceptHeader = "text/html, application/xhtml+xml, */*"
	v.imgAcceptHeader = "image/png, image/svg+xml, image/*;q=0.8, */*;q=0.5"
	v.cssAcceptHeader = "text/css, */*"
	v.scriptAcceptHeader = "application/javascript, */*;q=0.8"
	v.fontHeights = ieFontHeights

	v.registerUploadMimeType("html", "text/html")
	v.registerUploadMimeType("htm", "text/html")
	v.registerUploadMimeType("css", "text/css")
	v.registerUploadMimeType("xml", "text/xml")
	v.registerUploadMimeType("gif", "image/gif")
	v.registerUploadMimeType("jpeg", "image/jpeg")
	v.registerUploadMimeType("jpg", "image/jpeg")
	v.registerUploadMimeType("png", "image/png")
	v.registerUploadMimeType("mp4", "video/mp4")
	v.registerUploadMimeType("m4v", "video/mp4")
	v.registerUploadMimeType("m4a", "audio/mp4")
	v.registerUploadMimeType("mp3", "audio/mpeg")
	v.registerUploadMimeType("ogm", "video/x-ogm")
	v.registerUploadMimeType("ogg", "application/ogg")
	v.registerUploadMimeType("wav", "audio/wav")
	v.registerUploadMimeType("xhtml", "application/xhtml+xml")
	v.registerUploadMimeType("xht", "application/xhtml+xml")
	v.registerUploadMimeType("txt", "text/plain")

	// Flash (windows version) is the one plugin IE still reports.
	v.plugins = []Plugin{{
		Name:        "Shockwave Flash",
		Description: "Shockwave Flash 32.0 r0",
		Version:     "32.0.0.330",
		Filename:    "Flash32_32_0_0_330.ocx",
		MimeTypes: []PluginMimeType{{
			Type:          "application/x-shockwave-flash",
			Description:   "Shockwave Flash",
			FileExtension: "swf",
		}},
	}}
	return v
}

func newChrome() *BrowserVersion {
	v := newBrowserVersion(80, "Chrome")
	v.applicationVersion = fmt.Sprintf(
		"5.0 (Windows NT 6.1; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.3987.132 Safari/537.36",
		v.version)
	v.userAgent = fmt.Sprintf(
		"Mozilla/5.0 (Windows NT 6.1; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/%d.0.3987.132 Safari/537.36",
		v.version)
	v.applicationCodeName = "Mozilla"
	v.vendor = "Google Inc."
	v.platform = PlatformWin32
	v.cpuClass = ""
	v.productSub = "20030107"
	v.headerNamesOrdered = []string{
		HeaderHost,
		HeaderConnection,
		HeaderUpgradeInsecureRequests,
		HeaderUserAgent,
		HeaderSecFetchDest,
		HeaderAccept,
		HeaderSecFetchSite,
		HeaderSecFetchMode,
		HeaderSecFetchUser,
		HeaderReferer,
		HeaderAcceptEncoding,
		HeaderAcceptLanguage,
		HeaderCookie,
	}
	v.acceptEncodingHeader = "gzip, deflate, br"
	v.htmlAcceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.9"
	v.imgAcceptHeader = "image/webp,image/apng,image/*,*/*;q=0.8"
	v.cssAcceptHeader = "text/css,*/*;q=0.1"
	v.scriptAcceptHeader = "*/*"
	v.fontHeights = chromeFontHeights

	v.registerUploadMimeType("html", "text/html")
	v.registerUploadMimeType("htm", "text/html")
	v.registerUploadMimeType("css", "text/css")
	v.registerUploadMimeType("xml", "text/xml")
	v.registerUploadMimeType("gif", "image/gif")
	v.registerUploadMimeType("jpeg", "image/jpeg")
	v.registerUploadMimeType("jpg", "image/jpeg")
	v.registerUploadMimeType("png", "image/png")
	v.registerUploadMimeType("webp", "image/webp")
	v.registerUploadMimeType("mp4", "video/mp4")
	v.registerUploadMimeType("m4v", "video/mp4")
	v.registerUploadMimeType("m4a", "audio/x-m4a")
	v.registerUploadMimeType("mp3", "audio/mp3")
	v.registerUploadMimeType("ogv", "video/ogg")
	v.registerUploadMimeType("ogm", "video/ogg")
	v.registerUploadMimeType("ogg", "audio/ogg")
	v.registerUploadMimeType("oga", "audio/ogg")
	v.registerUploadMimeType("opus", "audio/ogg")
	v.registerUploadMimeType("webm", "video/webm")
	v.registerUploadMimeType("wav", "audio/wav")
	v.registerUploadMimeType("flac", "audio/flac")
	v.registerUploadMimeType("xhtml", "application/xhtml+xml")
	v.registerUploadMimeType("xht", "application/xhtml+xml")
	v.registerUploadMimeType("xhtm", "application/xhtml+xml")
	v.registerUploadMimeType("txt", "text/plain")
	v.registerUploadMimeType("text", "text/plain")
	return v
}

// registerFirefoxUploadTypes registers the upload MIME mappings shared by
// all Firefox lines.
func registerFirefoxUploadTypes(v *BrowserVersion) {
	v.registerUploadMimeType("html", "text/html")
	v.registerUploadMimeType("htm", "text/html")
	v.registerUploadMimeType("css", "text/css")
	v.registerUploadMimeType("xml", "text/xml")
	v.registerUploadMimeType("gif", "image/gif")
	v.registerUploadMimeType("jpeg", "image/jpeg")
	v.registerUploadMimeType("jpg", "image/jpeg")
	v.registerUploadMimeType("png", "image/png")
	v.registerUploadMimeType("mp4", "video/mp4")
	v.registerUploadMimeType("m4v", "video/mp4")
	v.registerUploadMimeType("m4a", "audio/mp4")
	v.registerUploadMimeType("mp3", "audio/mpeg")
	v.registerUploadMimeType("ogv", "video/ogg")
	v.registerUploadMimeType("ogm", "video/x-ogm")
	v.registerUploadMimeType("ogg", "video/ogg")
	v.registerUploadMimeType("oga", "audio/ogg")
	v.registerUploadMimeType("opus", "audio/ogg")
	v.registerUploadMimeType("webm", "video/webm")
	v.registerUploadMimeType("wav", "audio/wav")
	v.registerUploadMimeType("xhtml", "application/xhtml+xml")
	v.registerUploadMimeType("xht", "application/xhtml+xml")
	v.registerUploadMimeType("txt", "text/plain")
	v.registerUploadMimeType("text", "text/plain")
}
