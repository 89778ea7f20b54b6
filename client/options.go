package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Pavan19102006/Jagadeesh-project/client/store"
)

// Option configures a Client during construction in New.
//
// Options are applied before the token transport is installed, so
// transport-related options (like debug logging) end up underneath it.
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client (TLS settings, tracing,
// proxies). The client is copied, never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout bounds the total time of a single request.
//
// The client has no timeout by default; prefer per-call context deadlines.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
		return nil
	}
}

// WithStore sets where the bearer credential and user profile live.
func WithStore(s store.Store) Option {
	return func(c *Client) error {
		if s == nil {
			return fmt.Errorf("nil store")
		}
		c.tokens = s
		return nil
	}
}

// WithToken seeds the session store with a credential, for callers that
// obtained a token elsewhere. Apply it after WithStore.
func WithToken(token string) Option {
	return func(c *Client) error {
		return c.tokens.Set(store.TokenKey, token)
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport sits beneath the token transport, so the
// Authorization header never appears in the dumps.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if !enabled {
			return nil
		}
		if _, ok := c.http.Transport.(*debugTransport); ok {
			return nil
		}
		hc := *c.http
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = &debugTransport{base: base}
		c.http = &hc
		return nil
	}
}
