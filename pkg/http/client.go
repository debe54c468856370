package http

import (
	"net"
	"net/http"
	"time"
)

// TransportFunc decorates a round tripper, e.g. with auth headers or logging.
type TransportFunc func(http.RoundTripper) http.RoundTripper

type HttpOpts func(*clientConfig)

type clientConfig struct {
	dialTimeout           time.Duration
	requestTimeout        time.Duration
	keepAlive             time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxIdleConnsPerHost   int
	decorators            []TransportFunc
}

const (
	tlsHandshakeTimeout = 10 * time.Second
	maxIdleConns        = 100
)

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		dialTimeout:           30 * time.Second,
		requestTimeout:        60 * time.Second,
		keepAlive:             90 * time.Second,
		responseHeaderTimeout: 60 * time.Second,
		idleConnTimeout:       90 * time.Second,
		maxIdleConnsPerHost:   10,
	}
}

func WithConnClientTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.dialTimeout = timeout }
}

// WithRequestTimeout bounds a whole request including reading the body.
// Zero disables the client-level timeout and leaves it to the context.
func WithRequestTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.requestTimeout = timeout }
}

func WithClientKeepAlive(keepAlive time.Duration) HttpOpts {
	return func(c *clientConfig) { c.keepAlive = keepAlive }
}

func WithResponseHeaderTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.responseHeaderTimeout = timeout }
}

func WithIdleConnTimeout(timeout time.Duration) HttpOpts {
	return func(c *clientConfig) { c.idleConnTimeout = timeout }
}

// WithMaxIdleConnsPerHost should cover the number of concurrent generation
// requests, otherwise connections get reopened for every item.
func WithMaxIdleConnsPerHost(n int) HttpOpts {
	return func(c *clientConfig) {
		if n > 0 {
			c.maxIdleConnsPerHost = n
		}
	}
}

// WithTransport adds a decorator. Decorators are applied in order, so the last
// one added sees the request first.
func WithTransport(transport TransportFunc) HttpOpts {
	return func(c *clientConfig) { c.decorators = append(c.decorators, transport) }
}

// NewClient builds a standalone *http.Client, for SDKs that accept their own client.
func NewClient(opts ...HttpOpts) *http.Client {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dialer := net.Dialer{
		Timeout:   cfg.dialTimeout,
		KeepAlive: cfg.keepAlive,
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
	}
	for _, decorate := range cfg.decorators {
		transport = decorate(transport)
	}

	return &http.Client{
		Timeout:   cfg.requestTimeout,
		Transport: transport,
	}
}
