package browser

import "time"

// Builder derives a new BrowserVersion from a template. Every attribute is
// copied from the template, including its already-resolved feature set —
// overriding the user agent or platform never reclassifies the browser, so
// a spoofed identity keeps behaving like its template. Setters chain and
// perform no validation: deliberately inconsistent combinations (a Chrome
// user agent on an IE-derived version) are allowed.
//
// The builder may be reused after Build; later mutation never affects
// versions already built.
type Builder struct {
	work *BrowserVersion
}

// NewBuilder creates a builder seeded with an independent copy of the
// template's full state.
func NewBuilder(template *BrowserVersion) *Builder {
	return &Builder{work: template.clone()}
}

// Build finalizes the staged state into a new immutable BrowserVersion.
func (b *Builder) Build() *BrowserVersion {
	return b.work.clone()
}

// SetApplicationCodeName sets the application code name.
func (b *Builder) SetApplicationCodeName(name string) *Builder {
	b.work.applicationCodeName = name
	return b
}

// SetApplicationMinorVersion sets the application minor version.
func (b *Builder) SetApplicationMinorVersion(version string) *Builder {
	b.work.applicationMinorVersion = version
	return b
}

// SetApplicationName sets the application name.
func (b *Builder) SetApplicationName(name string) *Builder {
	b.work.applicationName = name
	return b
}

// SetApplicationVersion sets the application version string.
func (b *Builder) SetApplicationVersion(version string) *Builder {
	b.work.applicationVersion = version
	return b
}

// SetVendor sets the navigator.vendor value.
func (b *Builder) SetVendor(vendor string) *Builder {
	b.work.vendor = vendor
	return b
}

// SetBuildID sets the navigator.buildID value.
func (b *Builder) SetBuildID(buildID string) *Builder {
	b.work.buildID = buildID
	return b
}

// SetProductSub sets the navigator.productSub value.
func (b *Builder) SetProductSub(productSub string) *Builder {
	b.work.productSub = productSub
	return b
}

// SetBrowserLanguage sets the browser application language.
func (b *Builder) SetBrowserLanguage(lang string) *Builder {
	b.work.browserLanguage = lang
	return b
}

// SetSystemLanguage sets the operating system language.
func (b *Builder) SetSystemLanguage(lang string) *Builder {
	b.work.systemLanguage = lang
	return b
}

// SetUserLanguage sets the user language.
func (b *Builder) SetUserLanguage(lang string) *Builder {
	b.work.userLanguage = lang
	return b
}

// SetCPUClass sets navigator.cpuClass.
func (b *Builder) SetCPUClass(cpuClass string) *Builder {
	b.work.cpuClass = cpuClass
	return b
}

// SetOnLine sets the navigator.onLine value.
func (b *Builder) SetOnLine(onLine bool) *Builder {
	b.work.onLine = onLine
	return b
}

// SetPlatform sets navigator.platform.
func (b *Builder) SetPlatform(platform string) *Builder {
	b.work.platform = platform
	return b
}

// SetSystemTimezone sets the emulated system timezone.
func (b *Builder) SetSystemTimezone(loc *time.Location) *Builder {
	b.work.systemTimezone = loc
	return b
}

// SetUserAgent sets the User-Agent string.
func (b *Builder) SetUserAgent(userAgent string) *Builder {
	b.work.userAgent = userAgent
	return b
}

// SetAcceptEncoding sets the Accept-Encoding header value.
func (b *Builder) SetAcceptEncoding(value string) *Builder {
	b.work.acceptEncodingHeader = value
	return b
}

// SetHTMLAccept sets the Accept header used when requesting pages.
func (b *Builder) SetHTMLAccept(value string) *Builder {
	b.work.htmlAcceptHeader = value
	return b
}

// SetImgAccept sets the Accept header used when requesting images.
func (b *Builder) SetImgAccept(value string) *Builder {
	b.work.imgAcceptHeader = value
	return b
}

// SetCSSAccept sets the Accept header used when requesting stylesheets.
func (b *Builder) SetCSSAccept(value string) *Builder {
	b.work.cssAcceptHeader = value
	return b
}

// SetScriptAccept sets the Accept header used when requesting scripts.
func (b *Builder) SetScriptAccept(value string) *Builder {
	b.work.scriptAcceptHeader = value
	return b
}

// SetXHRAccept sets the Accept header used for XMLHttpRequests.
func (b *Builder) SetXHRAccept(value string) *Builder {
	b.work.xhrAcceptHeader = value
	return b
}

// SetHeaderNamesOrdered sets the wire order of emitted request headers.
// The slice is copied.
func (b *Builder) SetHeaderNamesOrdered(names []string) *Builder {
	b.work.headerNamesOrdered = make([]string, len(names))
	copy(b.work.headerNamesOrdered, names)
	return b
}

// SetFontHeights sets the measured font-height table, indexed by font size
// in pixels. The slice is copied.
func (b *Builder) SetFontHeights(heights []int) *Builder {
	if heights == nil {
		b.work.fontHeights = nil
		return b
	}
	b.work.fontHeights = make([]int, len(heights))
	copy(b.work.fontHeights, heights)
	return b
}

// SetPlugins replaces the navigator plugin list. Plugins are deep-copied.
func (b *Builder) SetPlugins(plugins []Plugin) *Builder {
	b.work.plugins = clonePlugins(plugins)
	return b
}

// AddPlugin appends a plugin to the staged list.
func (b *Builder) AddPlugin(p Plugin) *Builder {
	b.work.plugins = append(b.work.plugins, p.Clone())
	return b
}

// RegisterUploadMimeType maps a file extension (case-insensitive) to the
// MIME type reported when uploading files with that extension.
func (b *Builder) RegisterUploadMimeType(extension, mimeType string) *Builder {
	b.work.registerUploadMimeType(extension, mimeType)
	return b
}
