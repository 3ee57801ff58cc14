package taskapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-logr/logr"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an HTTP client for the task API. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	baseURL string
	http    Doer
	log     logr.Logger
}

// NewClient creates a new task API client.
//
// Example:
//
//	client, err := taskapi.NewClient(
//	    taskapi.WithBaseURL("http://localhost:8080"),
//	)
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	u, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", cfg.baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: host is required", cfg.baseURL)
	}

	doer := cfg.doer
	if doer == nil {
		doer = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.baseURL, "/"),
		http:    doer,
		log:     cfg.logger,
	}, nil
}

// BaseURL returns the server base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
