package taskapi

import (
	"time"

	"github.com/go-logr/logr"
)

// DefaultBaseURL is the base URL used when WithBaseURL is not given.
const DefaultBaseURL = "http://localhost:8080"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	baseURL string
	doer    Doer
	timeout time.Duration
	logger  logr.Logger
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL: DefaultBaseURL,
		logger:  logr.Discard(),
	}
}

// WithBaseURL sets the server base URL, e.g. "http://localhost:8080".
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the transport used for every request.
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *clientConfig) {
		c.doer = doer
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used to trace round-trips at V(1).
func WithLogger(logger logr.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
