package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Corpus-2021/htmlunit/browser"
)

// overrideFile is the YAML schema for deriving a custom identity. Only
// set fields are applied; everything else keeps the template's value.
type overrideFile struct {
	ApplicationName *string `yaml:"application_name"`
	UserAgent       *string `yaml:"user_agent"`
	Platform        *string `yaml:"platform"`
	Vendor          *string `yaml:"vendor"`
	BuildID         *string `yaml:"build_id"`
	Language        *string `yaml:"language"`
	AcceptEncoding  *string `yaml:"accept_encoding"`

	HTMLAccept   *string `yaml:"html_accept"`
	ImgAccept    *string `yaml:"img_accept"`
	CSSAccept    *string `yaml:"css_accept"`
	ScriptAccept *string `yaml:"script_accept"`
	XHRAccept    *string `yaml:"xhr_accept"`

	HeaderOrder []string          `yaml:"header_order"`
	FontHeights []int             `yaml:"font_heights"`
	UploadMimes map[string]string `yaml:"upload_mime_types"`
}

// applyOverrides derives a new version from template with the overrides
// read from path.
func applyOverrides(template *browser.BrowserVersion, path string) (*browser.BrowserVersion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	var o overrideFile
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}

	b := browser.NewBuilder(template)
	if o.ApplicationName != nil {
		b.SetApplicationName(*o.ApplicationName)
	}
	if o.UserAgent != nil {
		b.SetUserAgent(*o.UserAgent)
	}
	if o.Platform != nil {
		b.SetPlatform(*o.Platform)
	}
	if o.Vendor != nil {
		b.SetVendor(*o.Vendor)
	}
	if o.BuildID != nil {
		b.SetBuildID(*o.BuildID)
	}
	if o.Language != nil {
		b.SetBrowserLanguage(*o.Language)
	}
	if o.AcceptEncoding != nil {
		b.SetAcceptEncoding(*o.AcceptEncoding)
	}
	if o.HTMLAccept != nil {
		b.SetHTMLAccept(*o.HTMLAccept)
	}
	if o.ImgAccept != nil {
		b.SetImgAccept(*o.ImgAccept)
	}
	if o.CSSAccept != nil {
		b.SetCSSAccept(*o.CSSAccept)
	}
	if o.ScriptAccept != nil {
		b.SetScriptAccept(*o.ScriptAccept)
	}
	if o.XHRAccept != nil {
		b.SetXHRAccept(*o.XHRAccept)
	}
	if o.HeaderOrder != nil {
		b.SetHeaderNamesOrdered(o.HeaderOrder)
	}
	if o.FontHeights != nil {
		b.SetFontHeights(o.FontHeights)
	}
	for ext, mime := range o.UploadMimes {
		b.RegisterUploadMimeType(ext, mime)
	}
	return b.Build(), nil
}
