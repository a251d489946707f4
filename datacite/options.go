package datacite

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Mode selects between the public REST API and the authenticated member API
type Mode string

const (
	ModePublic Mode = "public"
	ModeMember Mode = "member"
)

// ParseMode resolves a mode name, case-insensitively
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePublic, "":
		return ModePublic, nil
	case ModeMember:
		return ModeMember, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

func (m Mode) String() string {
	return string(m)
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another API host
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTestBaseURL points the client at the DataCite test environment
func WithTestBaseURL() Option {
	return WithBaseURL(TestBaseURL)
}

// WithMemberAuth enables member mode with HTTP basic credentials
func WithMemberAuth(username, password string) Option {
	return func(c *Client) {
		c.mode = ModeMember
		c.username = username
		c.password = password
	}
}

// WithMode sets the access mode without touching credentials
func WithMode(mode Mode) Option {
	return func(c *Client) {
		c.mode = mode
	}
}

// WithMailto adds a contact address to the User-Agent, as DataCite asks of
// scripts that make frequent requests
func WithMailto(email string) Option {
	return func(c *Client) {
		c.mailto = email
	}
}

// WithUserAgent replaces the product part of the User-Agent
func WithUserAgent(product string) Option {
	return func(c *Client) {
		c.product = product
	}
}

// WithHTTPClient sets the HTTP client. WithTimeout does not apply to it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMetrics records request counts and durations on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.registerer = reg
	}
}
