// Package client prepares HTTP requests the way a specific browser version
// would issue them: its User-Agent, the Accept header matching the kind of
// resource being fetched, its Accept-Encoding set, and its header wire
// order (delegated to the transport). Response bodies are decoded for
// every encoding the emulated browsers advertise.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Corpus-2021/htmlunit/browser"
	"github.com/Corpus-2021/htmlunit/transport"
)

// Resource identifies what kind of resource a request fetches; it selects
// the Accept header the emulated browser sends.
type Resource int

const (
	ResourceDocument Resource = iota
	ResourceScript
	ResourceXHR
	ResourceImage
	ResourceCSS
)

// Client issues requests as one browser version.
type Client struct {
	version   *browser.BrowserVersion
	transport *transport.Transport
	timeout   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Default 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify() Option {
	return func(c *Client) { c.transport.SetInsecureSkipVerify(true) }
}

// NewClient creates a client for the given browser version. A nil version
// uses the process default.
func NewClient(version *browser.BrowserVersion, opts ...Option) *Client {
	if version == nil {
		version = browser.Default()
	}
	c := &Client{
		version:   version,
		transport: transport.NewTransport(version),
		timeout:   30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Version returns the browser version this client emulates.
func (c *Client) Version() *browser.BrowserVersion { return c.version }

// Request describes one fetch. Extra headers override the browser
// defaults; Resource picks the Accept header.
type Request struct {
	Method   string
	URL      string
	Resource Resource
	Referer  string
	Headers  map[string]string
	Body     []byte
}

// Response is a decoded HTTP response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	FinalURL   string
}

// Do executes the request with the browser's identity headers applied.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method == "" {
		return nil, errors.New("client: request method is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	headers := c.PrepareHeaders(req.Resource)
	if req.Referer != "" {
		headers[browser.HeaderReferer] = req.Referer
	}
	for name, value := range req.Headers {
		headers[name] = value
	}

	resp, err := c.transport.Do(ctx, &transport.Request{
		Method:  req.Method,
		URL:     req.URL,
		Headers: headers,
		Body:    req.Body,
	})
	if err != nil {
		return nil, err
	}

	body, err := Decompress(resp.Body, resp.Headers["content-encoding"])
	if err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       body,
		FinalURL:   resp.FinalURL,
	}, nil
}

// Get fetches a document.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	return c.Do(ctx, &Request{Method: "GET", URL: url, Resource: ResourceDocument})
}

// GetResource fetches a sub-resource of the given kind.
func (c *Client) GetResource(ctx context.Context, url string, kind Resource) (*Response, error) {
	return c.Do(ctx, &Request{Method: "GET", URL: url, Resource: kind})
}

// Post sends a body with the given content type.
func (c *Client) Post(ctx context.Context, url string, body []byte, contentType string) (*Response, error) {
	req := &Request{Method: "POST", URL: url, Resource: ResourceDocument, Body: body}
	if contentType != "" {
		req.Headers = map[string]string{"Content-Type": contentType}
	}
	return c.Do(ctx, req)
}

// PostForm uploads multipart form data, resolving file MIME types through
// the browser version's upload table.
func (c *Client) PostForm(ctx context.Context, url string, form *FormData) (*Response, error) {
	body, contentType, err := form.Encode(c.version)
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, url, body, contentType)
}

// PrepareHeaders returns the browser's default header set for a resource
// kind. The transport orders them on the wire; callers may override any
// entry before sending.
func (c *Client) PrepareHeaders(kind Resource) map[string]string {
	headers := map[string]string{
		browser.HeaderUserAgent:      c.version.UserAgent(),
		browser.HeaderAccept:         AcceptFor(c.version, kind),
		browser.HeaderAcceptEncoding: c.version.AcceptEncoding(),
		browser.HeaderAcceptLanguage: c.version.BrowserLanguage(),
		browser.HeaderConnection:     "keep-alive",
	}
	if kind == ResourceDocument && c.version.HasFeature(browser.FeatureHTTPHeaderUpgradeRequest) {
		headers[browser.HeaderUpgradeInsecureRequests] = "1"
	}
	return headers
}

// AcceptFor returns the Accept header the version sends for a resource
// kind.
func AcceptFor(v *browser.BrowserVersion, kind Resource) string {
	switch kind {
	case ResourceScript:
		return v.ScriptAccept()
	case ResourceXHR:
		return v.XHRAccept()
	case ResourceImage:
		return v.ImgAccept()
	case ResourceCSS:
		return v.CSSAccept()
	default:
		return v.HTMLAccept()
	}
}

// Close releases the client's connections.
func (c *Client) Close() {
	c.transport.Close()
}
