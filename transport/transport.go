// Package transport implements the HTTP/1.1 wire layer of the browser
// emulation. It consumes a resolved browser version for everything a
// server can observe: request headers are written in the version's exact
// wire order, and the TLS handshake presents a ClientHello matching the
// version's family.
package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"

	"github.com/Corpus-2021/htmlunit/browser"
	"github.com/Corpus-2021/htmlunit/dns"
)

var ErrTransportClosed = errors.New("transport is closed")

// Request is a fully prepared request: Headers already contains every
// header the emulated browser would send (the client layer fills them in
// from the browser version). The transport's job is ordering and delivery.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is a raw HTTP response. The body is returned exactly as
// received; content decoding happens in the client layer.
type Response struct {
	StatusCode int
	Status     string
	Headers    map[string]string
	Body       []byte
	FinalURL   string
}

// Transport is an HTTP/1.1 round-tripper bound to one browser version.
// One persistent connection is kept per host.
type Transport struct {
	version  *browser.BrowserVersion
	dnsCache *dns.Cache

	idleMu    sync.Mutex
	idleConns map[string]*persistConn

	connectTimeout     time.Duration
	responseTimeout    time.Duration
	maxIdleTime        time.Duration
	insecureSkipVerify bool

	closedMu sync.RWMutex
	closed   bool
}

type persistConn struct {
	conn       net.Conn
	br         *bufio.Reader
	bw         *bufio.Writer
	lastUsedAt time.Time
}

// NewTransport creates a transport emitting requests as the given browser
// version. A nil version uses the process default.
func NewTransport(version *browser.BrowserVersion) *Transport {
	if version == nil {
		version = browser.Default()
	}
	return &Transport{
		version:         version,
		dnsCache:        dns.NewCache(),
		idleConns:       make(map[string]*persistConn),
		connectTimeout:  10 * time.Second,
		responseTimeout: 30 * time.Second,
		maxIdleTime:     90 * time.Second,
	}
}

// Version returns the browser version this transport emulates.
func (t *Transport) Version() *browser.BrowserVersion { return t.version }

// SetInsecureSkipVerify disables TLS certificate verification. Testing
// against self-signed endpoints only.
func (t *Transport) SetInsecureSkipVerify(skip bool) {
	t.insecureSkipVerify = skip
}

// DNSCache exposes the transport's resolver cache.
func (t *Transport) DNSCache() *dns.Cache { return t.dnsCache }

// Do executes the request and reads the full response.
func (t *Transport) Do(ctx context.Context, req *Request) (*Response, error) {
	t.closedMu.RLock()
	if t.closed {
		t.closedMu.RUnlock()
		return nil, ErrTransportClosed
	}
	t.closedMu.RUnlock()

	u, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	key := net.JoinHostPort(host, port)

	pc := t.getIdleConn(key)
	fresh := false
	if pc == nil {
		pc, err = t.createConn(ctx, host, port, u.Scheme)
		if err != nil {
			return nil, err
		}
		fresh = true
	}

	resp, err := t.roundTrip(ctx, pc, req, u)
	if err != nil {
		pc.conn.Close()
		if !fresh {
			// Idle connection may have gone away; retry once on a new one.
			pc, cerr := t.createConn(ctx, host, port, u.Scheme)
			if cerr != nil {
				return nil, err
			}
			resp, err = t.roundTrip(ctx, pc, req, u)
			if err != nil {
				pc.conn.Close()
				return nil, err
			}
			t.putIdleConn(key, pc)
			return resp, nil
		}
		return nil, err
	}

	if keepAlive(resp) {
		t.putIdleConn(key, pc)
	} else {
		pc.conn.Close()
	}
	return resp, nil
}

func (t *Transport) roundTrip(ctx context.Context, pc *persistConn, req *Request, u *url.URL) (*Response, error) {
	deadline := time.Now().Add(t.responseTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	pc.conn.SetDeadline(deadline)
	defer pc.conn.SetDeadline(time.Time{})

	if err := t.writeRequest(pc.bw, req, u); err != nil {
		return nil, fmt.Errorf("write request: %w", err)
	}

	httpReq, err := http.NewRequest(req.Method, req.URL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := http.ReadResponse(pc.br, httpReq)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	headers := make(map[string]string, len(httpResp.Header))
	for name, values := range httpResp.Header {
		lower := strings.ToLower(name)
		if lower == "set-cookie" {
			// Cookie values may contain commas (expiry dates), so keep
			// one cookie per line instead of comma-joining.
			headers[lower] = strings.Join(values, "\n")
			continue
		}
		headers[lower] = strings.Join(values, ", ")
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    headers,
		Body:       body,
		FinalURL:   req.URL,
	}, nil
}

// writeRequest serializes the request line and the headers in the browser
// version's wire order.
func (t *Transport) writeRequest(bw *bufio.Writer, req *Request, u *url.URL) error {
	requestURI := u.RequestURI()
	fmt.Fprintf(bw, "%s %s HTTP/1.1\r\n", req.Method, requestURI)

	headers := make(map[string]string, len(req.Headers)+2)
	for name, value := range req.Headers {
		headers[name] = value
	}
	if _, ok := headers[browser.HeaderHost]; !ok {
		headers[browser.HeaderHost] = u.Host
	}
	if len(req.Body) > 0 {
		headers["Content-Length"] = strconv.Itoa(len(req.Body))
	}

	if err := WriteOrderedHeaders(bw, headers, t.version.HeaderNamesOrdered()); err != nil {
		return err
	}
	if _, err := bw.WriteString("\r\n"); err != nil {
		return err
	}
	if len(req.Body) > 0 {
		if _, err := bw.Write(req.Body); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOrderedHeaders emits headers following the given wire order: names
// from the order list come first, in sequence, when present; anything else
// follows sorted by name so repeated requests stay byte-identical.
func WriteOrderedHeaders(w io.Writer, headers map[string]string, order []string) error {
	written := make(map[string]bool, len(headers))
	for _, name := range order {
		value, ok := headers[name]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", name, value); err != nil {
			return err
		}
		written[name] = true
	}

	rest := make([]string, 0, len(headers))
	for name := range headers {
		if !written[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", name, headers[name]); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transport) createConn(ctx context.Context, host, port, scheme string) (*persistConn, error) {
	ip, err := t.dnsCache.ResolveOne(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}

	dialer := &net.Dialer{Timeout: t.connectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(ip.String(), port))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", host, err)
	}

	if scheme == "https" {
		tlsConn, err := t.handshake(ctx, conn, host)
		if err != nil {
			conn.Close()
			return nil, err
		}
		conn = tlsConn
	}

	return &persistConn{
		conn:       conn,
		br:         bufio.NewReader(conn),
		bw:         bufio.NewWriter(conn),
		lastUsedAt: time.Now(),
	}, nil
}

// handshake performs the TLS handshake with the ClientHello shape of the
// emulated browser family.
func (t *Transport) handshake(ctx context.Context, conn net.Conn, serverName string) (net.Conn, error) {
	cfg := &utls.Config{
		ServerName:         serverName,
		InsecureSkipVerify: t.insecureSkipVerify,
		NextProtos:         []string{"http/1.1"},
	}
	uconn := utls.UClient(conn, cfg, clientHelloFor(t.version))
	if err := uconn.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("tls handshake with %s: %w", serverName, err)
	}
	return uconn, nil
}

// clientHelloFor picks the ClientHello shape for a browser family. There
// is no published IE fingerprint, so IE and unclassified versions use the
// plain Go hello.
func clientHelloFor(v *browser.BrowserVersion) utls.ClientHelloID {
	switch {
	case v.IsChrome():
		return utls.HelloChrome_Auto
	case v.IsFirefox():
		return utls.HelloFirefox_Auto
	default:
		return utls.HelloGolang
	}
}

func keepAlive(resp *Response) bool {
	return !strings.EqualFold(resp.Headers["connection"], "close")
}

func (t *Transport) getIdleConn(key string) *persistConn {
	t.idleMu.Lock()
	defer t.idleMu.Unlock()
	pc, ok := t.idleConns[key]
	if !ok {
		return nil
	}
	delete(t.idleConns, key)
	if time.Since(pc.lastUsedAt) > t.maxIdleTime {
		pc.conn.Close()
		return nil
	}
	return pc
}

func (t *Transport) putIdleConn(key string, pc *persistConn) {
	t.idleMu.Lock()
	defer t.idleMu.Unlock()
	if t.closed {
		pc.conn.Close()
		return
	}
	if old, ok := t.idleConns[key]; ok {
		old.conn.Close()
	}
	pc.lastUsedAt = time.Now()
	t.idleConns[key] = pc
}

// Close closes every idle connection and rejects further requests.
func (t *Transport) Close() {
	t.closedMu.Lock()
	t.closed = true
	t.closedMu.Unlock()

	t.idleMu.Lock()
	defer t.idleMu.Unlock()
	for key, pc := range t.idleConns {
		pc.conn.Close()
		delete(t.idleConns, key)
	}
}
