// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509remote

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/cert-tree/src/internal/helper/gc"
	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
)

var (
	// ErrNotFound indicates the certificate file does not exist.
	ErrNotFound = errors.New("x509remote: certificate file not found")

	// ErrInvalidURL indicates the certificate URL could not be parsed.
	ErrInvalidURL = errors.New("x509remote: invalid certificate URL")

	// ErrNoCertificates indicates the server presented no certificates
	// during the TLS handshake.
	ErrNoCertificates = errors.New("x509remote: no certificates received from server")
)

// defaultHTTPSPort is used when the target URL carries no explicit port.
const defaultHTTPSPort = "443"

// pemCertMarker identifies a response body carrying PEM certificate data.
const pemCertMarker = "-----BEGIN CERTIFICATE-----"

// HTTPConfig holds HTTP client configuration for certificate retrieval.
type HTTPConfig struct {
	Timeout   time.Duration // HTTP request and dial timeout
	Version   string        // Application version for User-Agent
	UserAgent string        // Custom User-Agent string, if empty it is constructed from Version

	mu     sync.Mutex
	client *http.Client
}

// NewHTTPConfig creates a new HTTP configuration with a default timeout of
// 10 seconds and the provided application version.
func NewHTTPConfig(version string) *HTTPConfig {
	return &HTTPConfig{
		Timeout: 10 * time.Second,
		Version: version,
	}
}

// GetUserAgent returns the User-Agent string, constructing it if not set.
func (c *HTTPConfig) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return fmt.Sprintf("cert-tree/%s (+https://github.com/H0llyW00dzZ/cert-tree)", c.Version)
}

// Client returns an HTTP client configured with the current timeout.
//
// Thread Safety: Safe for concurrent use.
func (c *HTTPConfig) Client() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		c.client = &http.Client{Timeout: c.Timeout}
		return c.client
	}

	if c.client.Timeout != c.Timeout {
		c.client.Timeout = c.Timeout
	}

	return c.client
}

// Fetcher retrieves certificate chains from remote endpoints.
type Fetcher struct {
	decoder    *x509certinfo.Decoder
	HTTPConfig *HTTPConfig
}

// NewFetcher creates a Fetcher with default HTTP configuration.
func NewFetcher(version string) *Fetcher {
	return &Fetcher{
		decoder:    x509certinfo.New(),
		HTTPConfig: NewHTTPConfig(version),
	}
}

// LoadFile reads certificate bytes from a file, reporting [ErrNotFound]
// when the path does not exist.
func LoadFile(path string) ([]byte, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return os.ReadFile(path)
}

// FetchChain retrieves the certificate chain behind a URL.
//
// It first attempts a direct download: a URL that serves PEM content (for
// example a published cacert bundle) is decoded as a chain. When the body
// is not certificate data, or the download fails, it falls back to a TLS
// handshake against the URL's host and captures the certificates the peer
// presents.
//
// A URL without a scheme is treated as an https:// target.
func (f *Fetcher) FetchChain(ctx context.Context, rawURL string) ([]*x509.Certificate, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	target, err := url.Parse(rawURL)
	if err != nil || target.Hostname() == "" {
		return nil, ErrInvalidURL
	}

	if certs, err := f.fetchDirect(ctx, target.String()); err == nil && certs != nil {
		return certs, nil
	}

	port := target.Port()
	if port == "" {
		port = defaultHTTPSPort
	}

	return f.fetchViaHandshake(ctx, target.Hostname(), port)
}

// fetchDirect downloads the URL body and decodes it when it carries PEM
// certificate data. It returns (nil, nil) when the body is not certificate
// data so the caller can fall back to a handshake.
func (f *Fetcher) fetchDirect(ctx context.Context, rawURL string) ([]*x509.Certificate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.HTTPConfig.GetUserAgent())

	resp, err := f.HTTPConfig.Client().Do(req)
	if err != nil {
		return nil, err
	}

	// Download through the buffer pool, then keep a private copy.
	buf := gc.Default.Get()
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		resp.Body.Close()
		buf.Reset()
		gc.Default.Put(buf)
		return nil, err
	}
	resp.Body.Close()

	data := append([]byte(nil), buf.Bytes()...)
	buf.Reset()
	gc.Default.Put(buf)

	if !bytes.Contains(data, []byte(pemCertMarker)) {
		return nil, nil
	}

	return f.decoder.DecodeMultiple(data)
}

// fetchViaHandshake dials the host with TLS and captures the peer
// certificate chain presented during the handshake.
func (f *Fetcher) fetchViaHandshake(ctx context.Context, hostname, port string) ([]*x509.Certificate, error) {
	dialer := &net.Dialer{Timeout: f.HTTPConfig.Timeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(hostname, port),
		// We just want the presented chain, not to verify it.
		&tls.Config{InsecureSkipVerify: true})
	if err != nil {
		return nil, fmt.Errorf("x509remote: failed to connect to %s:%s: %w", hostname, port, err)
	}
	defer conn.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	peerCerts := conn.ConnectionState().PeerCertificates
	if len(peerCerts) == 0 {
		return nil, ErrNoCertificates
	}

	certs := make([]*x509.Certificate, len(peerCerts))
	copy(certs, peerCerts)
	return certs, nil
}
