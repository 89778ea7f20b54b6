// Package client is the Go SDK for the work-study job board backend.
//
// Every call goes through Fetch, which attaches the stored bearer credential
// when one exists and normalizes the outcome: the raw JSON body on success,
// nil for 204 No Content, or an *APIError carrying the response text.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Pavan19102006/Jagadeesh-project/client/store"
	apierrors "github.com/Pavan19102006/Jagadeesh-project/internal/errors"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	tokens  store.Store

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for baseURL (DefaultBaseURL when empty).
// Without WithStore the session lives in memory only.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No timeout: a request runs until it completes, fails or its
		// context ends.
		http:   &http.Client{},
		tokens: store.NewMemoryStore(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithToken()
	return c, nil
}

// BaseURL returns the URL every endpoint is appended to.
func (c *Client) BaseURL() string { return c.baseURL }

// Store returns the session store the client reads the credential from.
func (c *Client) Store() store.Store { return c.tokens }

// wrapTransportWithToken installs tokenTransport on a private copy of the
// configured http.Client so an injected client is never mutated.
func (c *Client) wrapTransportWithToken() {
	hc := *c.http
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &tokenTransport{base: base, tokens: c.tokens}
	c.http = &hc
}

// tokenTransport reads the credential at call time and sets
// Authorization: Bearer <token> only when one is stored.
type tokenTransport struct {
	base   http.RoundTripper
	tokens store.Store
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Get(store.TokenKey)
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// --------------------------------------------------------------------
// Fetch
// --------------------------------------------------------------------

// Fetch issues one request to baseURL+endpoint.
//
// Headers start from Content-Type: application/json; opts.Headers are
// merged over them (an empty value deletes a header). The stored token, if
// any, is attached by the transport.
//
// A non-2xx status yields an *APIError whose message is the response text,
// or FallbackMessage for an empty body. 204 yields (nil, nil). Any other
// success yields the body, which must be valid JSON. Transport failures are
// returned exactly as *http.Client reports them. Nothing is retried.
func (c *Client) Fetch(ctx context.Context, endpoint string, opts *RequestOptions) (json.RawMessage, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observeRequest(method, "error", start)
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	observeRequest(method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return nil, apierrors.NewHTTPError(resp.StatusCode, string(text), method, endpoint)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// encodeBody serializes a request body. Strings, []byte and
// json.RawMessage are sent as-is; anything else is marshaled.
func encodeBody(v any) (io.Reader, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case string:
		return strings.NewReader(b), nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(data), nil
	}
}
