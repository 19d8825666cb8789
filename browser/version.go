// Package browser models one specific version of a web browser: its
// user-agent surface, the HTTP headers it emits and their wire order, its
// per-content-type Accept headers, upload MIME mapping, font metrics, and
// the frozen set of behavioral feature flags the rest of the emulation
// consults through HasFeature.
//
// Canonical versions (Chrome, Firefox, Firefox68, Firefox60,
// InternetExplorer) are built once at package init. Custom identities are
// derived from an existing version with a Builder:
//
//	ff := browser.Firefox68
//	custom := browser.NewBuilder(ff).
//	    SetApplicationName("APPNAME").
//	    SetUserAgent("USERAGENT").
//	    Build()
//
// A derived version still behaves like its template — only what it reports
// to the outside changes, much like installing a user-agent switcher in a
// real browser.
package browser

import (
	"fmt"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// Application name reported by the Netscape lineage of browsers.
	netscape = "Netscape"

	languageEnglishUS = "en-US"
	cpuClassX86       = "x86"

	// PlatformWin32 and PlatformWin64 are the platform strings reported
	// by navigator.platform on Windows.
	PlatformWin32 = "Win32"
	PlatformWin64 = "Win64"
)

// defaultFontHeight is reported when a version carries no font table.
const defaultFontHeight = 18

// BrowserVersion is one browser's full observable identity. Instances are
// immutable once published and safe for unsynchronized concurrent reads;
// two versions with identical attributes are still distinct identities, so
// compare by pointer.
type BrowserVersion struct {
	version  int
	nickname string

	applicationCodeName     string
	applicationMinorVersion string
	applicationName         string
	applicationVersion      string
	buildID                 string
	productSub              string
	vendor                  string
	browserLanguage         string
	cpuClass                string
	onLine                  bool
	platform                string
	systemLanguage          string
	systemTimezone          *time.Location
	userAgent               string
	userLanguage            string

	acceptEncodingHeader string
	htmlAcceptHeader     string
	imgAcceptHeader      string
	cssAcceptHeader      string
	scriptAcceptHeader   string
	xhrAcceptHeader      string

	headerNamesOrdered []string
	fontHeights        []int
	plugins            []Plugin
	uploadMimeTypes    map[string]string
	features           map[Feature]struct{}
}

// newBrowserVersion creates a version with the lineage defaults and its
// feature set resolved from the compatibility table. Callers inside the
// package fill in the per-browser attributes before the value is published.
func newBrowserVersion(version int, nickname string) *BrowserVersion {
	return &BrowserVersion{
		version:                 version,
		nickname:                nickname,
		applicationCodeName:     "Mozilla",
		applicationMinorVersion: "0",
		applicationName:         netscape,
		browserLanguage:         languageEnglishUS,
		cpuClass:                cpuClassX86,
		onLine:                  true,
		platform:                PlatformWin64,
		systemLanguage:          languageEnglishUS,
		systemTimezone:          newYork,
		userLanguage:            languageEnglishUS,
		acceptEncodingHeader:    "gzip, deflate",
		htmlAcceptHeader:        "*/*",
		imgAcceptHeader:         "*/*",
		cssAcceptHeader:         "*/*",
		scriptAcceptHeader:      "*/*",
		xhrAcceptHeader:         "*/*",
		uploadMimeTypes:         make(map[string]string),
		features:                resolveFeatures(nickname, version),
	}
}

// registerUploadMimeType maps a file extension (case-insensitive) to the
// MIME type used when uploading files with that extension. Only reachable
// during construction; finished versions never change.
func (v *BrowserVersion) registerUploadMimeType(extension, mimeType string) {
	if extension == "" {
		return
	}
	v.uploadMimeTypes[strings.ToLower(extension)] = mimeType
}

// Nickname returns the short unique name of the browser, like "FF68" or
// "IE". The nickname prefix determines the browser family.
func (v *BrowserVersion) Nickname() string { return v.nickname }

// Version returns the numeric major version.
func (v *BrowserVersion) Version() int { return v.version }

// ApplicationCodeName returns the application code name, e.g. "Mozilla".
func (v *BrowserVersion) ApplicationCodeName() string { return v.applicationCodeName }

// ApplicationMinorVersion returns the application minor version, e.g. "0".
func (v *BrowserVersion) ApplicationMinorVersion() string { return v.applicationMinorVersion }

// ApplicationName returns the application name, e.g. "Netscape".
func (v *BrowserVersion) ApplicationName() string { return v.applicationName }

// ApplicationVersion returns the application version string.
func (v *BrowserVersion) ApplicationVersion() string { return v.applicationVersion }

// Vendor returns the navigator.vendor value.
func (v *BrowserVersion) Vendor() string { return v.vendor }

// BuildID returns the navigator.buildID value (Firefox only reports one).
func (v *BrowserVersion) BuildID() string { return v.buildID }

// ProductSub returns the navigator.productSub value.
func (v *BrowserVersion) ProductSub() string { return v.productSub }

// BrowserLanguage returns the browser application language, e.g. "en-US".
func (v *BrowserVersion) BrowserLanguage() string { return v.browserLanguage }

// SystemLanguage returns the operating system language.
func (v *BrowserVersion) SystemLanguage() string { return v.systemLanguage }

// UserLanguage returns the user language.
func (v *BrowserVersion) UserLanguage() string { return v.userLanguage }

// CPUClass returns navigator.cpuClass, e.g. "x86". Empty for browsers that
// do not report one.
func (v *BrowserVersion) CPUClass() string { return v.cpuClass }

// OnLine reports the navigator.onLine value.
func (v *BrowserVersion) OnLine() bool { return v.onLine }

// Platform returns navigator.platform, e.g. "Win32".
func (v *BrowserVersion) Platform() string { return v.platform }

// SystemTimezone returns the emulated system timezone.
func (v *BrowserVersion) SystemTimezone() *time.Location { return v.systemTimezone }

// UserAgent returns the User-Agent string.
func (v *BrowserVersion) UserAgent() string { return v.userAgent }

// AcceptEncoding returns the Accept-Encoding header value.
func (v *BrowserVersion) AcceptEncoding() string { return v.acceptEncodingHeader }

// HTMLAccept returns the Accept header sent when requesting a page.
func (v *BrowserVersion) HTMLAccept() string { return v.htmlAcceptHeader }

// ImgAccept returns the Accept header sent when requesting an image.
func (v *BrowserVersion) ImgAccept() string { return v.imgAcceptHeader }

// CSSAccept returns the Accept header sent when requesting a stylesheet.
func (v *BrowserVersion) CSSAccept() string { return v.cssAcceptHeader }

// ScriptAccept returns the Accept header sent when requesting a script.
func (v *BrowserVersion) ScriptAccept() string { return v.scriptAcceptHeader }

// XHRAccept returns the Accept header sent for XMLHttpRequests.
func (v *BrowserVersion) XHRAccept() string { return v.xhrAcceptHeader }

// HeaderNamesOrdered returns the header names in the order this browser
// puts them on the wire. The order is part of the fingerprint; the HTTP
// layer must emit headers in exactly this sequence. The returned slice is
// a copy.
func (v *BrowserVersion) HeaderNamesOrdered() []string {
	out := make([]string, len(v.headerNamesOrdered))
	copy(out, v.headerNamesOrdered)
	return out
}

// Plugins returns deep copies of the navigator plugins. Mutating the
// result never affects the version.
func (v *BrowserVersion) Plugins() []Plugin {
	return clonePlugins(v.plugins)
}

// HasFeature reports whether this browser exhibits the given behavioral
// feature. The feature set is resolved at construction and frozen.
func (v *BrowserVersion) HasFeature(f Feature) bool {
	_, ok := v.features[f]
	return ok
}

// Features returns the resolved feature set, sorted by name.
func (v *BrowserVersion) Features() []Feature {
	out := make([]Feature, 0, len(v.features))
	for f := range v.features {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// UploadMimeType returns the MIME type used when uploading the named file,
// matched case-insensitively on its extension. Unknown extensions and an
// empty filename yield "", never an error.
func (v *BrowserVersion) UploadMimeType(filename string) string {
	if filename == "" {
		return ""
	}
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return v.uploadMimeTypes[strings.ToLower(ext)]
}

// FontHeight returns the rendered pixel height for a font-size label like
// "10px". The label must end in a two-character unit suffix with a numeric
// prefix; anything else is a caller error and surfaces as a parse failure.
// Sizes beyond the measured table use the linear approximation size*1.2.
func (v *BrowserVersion) FontHeight(sizeLabel string) (int, error) {
	if v.fontHeights == nil {
		return defaultFontHeight, nil
	}
	if len(sizeLabel) < 2 {
		return 0, fmt.Errorf("browser: malformed font size %q", sizeLabel)
	}
	size, err := strconv.Atoi(sizeLabel[:len(sizeLabel)-2])
	if err != nil {
		return 0, fmt.Errorf("browser: malformed font size %q: %w", sizeLabel, err)
	}
	if size >= 0 && size < len(v.fontHeights) {
		return v.fontHeights[size], nil
	}
	return int(math.Round(float64(size) * 1.2)), nil
}

// PixelsPerChar returns the fixed per-character width estimate used by the
// layout layer.
func (v *BrowserVersion) PixelsPerChar() int { return 10 }

// IsChrome reports whether this version represents some version of Google
// Chrome. Chrome does not put "Chrome" in the application name, so the
// nickname is the only reliable signal.
func (v *BrowserVersion) IsChrome() bool { return strings.HasPrefix(v.nickname, "Chrome") }

// IsFirefox reports whether this version represents some version of
// Firefox.
func (v *BrowserVersion) IsFirefox() bool { return strings.HasPrefix(v.nickname, "FF") }

// IsFirefox60 reports whether this is the Firefox 60 ESR line.
func (v *BrowserVersion) IsFirefox60() bool { return v.IsFirefox() && v.version == 60 }

// IsFirefox68 reports whether this is the Firefox 68 ESR line.
func (v *BrowserVersion) IsFirefox68() bool { return v.IsFirefox() && v.version == 68 }

// IsIE reports whether this version represents some version of Internet
// Explorer.
func (v *BrowserVersion) IsIE() bool { return strings.HasPrefix(v.nickname, "IE") }

func (v *BrowserVersion) String() string { return v.nickname }

// clone returns an independent deep copy. Used by the Builder so that a
// built version never shares mutable state with the builder or the
// template.
func (v *BrowserVersion) clone() *BrowserVersion {
	c := *v

	c.headerNamesOrdered = make([]string, len(v.headerNamesOrdered))
	copy(c.headerNamesOrdered, v.headerNamesOrdered)

	if v.fontHeights != nil {
		c.fontHeights = make([]int, len(v.fontHeights))
		copy(c.fontHeights, v.fontHeights)
	}

	c.plugins = clonePlugins(v.plugins)

	c.uploadMimeTypes = make(map[string]string, len(v.uploadMimeTypes))
	for ext, mime := range v.uploadMimeTypes {
		c.uploadMimeTypes[ext] = mime
	}

	c.features = make(map[Feature]struct{}, len(v.features))
	for f := range v.features {
		c.features[f] = struct{}{}
	}

	return &c
}
