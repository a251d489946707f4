package datacite

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/s0up4200/datacite/requests"
)

const (
	// DefaultBaseURL is the production REST API
	DefaultBaseURL = "https://api.datacite.org"
	// TestBaseURL is the DataCite test environment
	TestBaseURL = "https://api.test.datacite.org"

	mediaType      = "application/vnd.api+json"
	defaultProduct = "s0up4200/datacite-go"
	defaultTimeout = 30 * time.Second
)

// Client represents a DataCite API client
type Client struct {
	baseURL    string
	mode       Mode
	username   string
	password   string
	mailto     string
	product    string
	timeout    time.Duration
	httpClient *http.Client
	registerer prometheus.Registerer
	metrics    *clientMetrics
	logger     zerolog.Logger
}

// Response is a raw API response with a 2xx status
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewClient creates a new DataCite client. Without options it talks to the
// public production API.
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	client := &Client{
		baseURL: DefaultBaseURL,
		mode:    ModePublic,
		product: defaultProduct,
		timeout: defaultTimeout,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(client)
	}

	if client.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	switch client.mode {
	case ModePublic:
	case ModeMember:
		if client.username == "" || client.password == "" {
			return nil, fmt.Errorf("%w: username and password are required for member API access", ErrInvalidConfig)
		}
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, client.mode)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
	}

	m, err := newClientMetrics(client.registerer)
	if err != nil {
		return nil, fmt.Errorf("%w: register metrics: %v", ErrInvalidConfig, err)
	}
	client.metrics = m

	return client, nil
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Mode returns the access mode of the client
func (c *Client) Mode() Mode {
	return c.mode
}

// UserAgent returns the User-Agent header sent with every request
func (c *Client) UserAgent() string {
	ua := c.product + " Go/" + runtime.Version()
	if c.mailto != "" {
		ua += " (mailto:" + c.mailto + ")"
	}
	return ua
}

// Send performs req and returns the raw response. Member-only requests are
// refused before any I/O when the client is in public mode, and so are
// parameter and body errors. Non-2xx responses are returned as *APIError.
func (c *Client) Send(ctx context.Context, req requests.Request) (*Response, error) {
	if req.MemberOnly() && c.mode != ModeMember {
		return nil, fmt.Errorf("%w: %s needs a client created with WithMemberAuth", ErrMemberRequired, req.Name())
	}

	params, err := req.Params()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name(), err)
	}
	body, err := req.Body()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name(), err)
	}

	url := c.baseURL + req.Endpoint()
	if len(params) > 0 {
		url += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", mediaType)
	httpReq.Header.Set("Content-Type", mediaType)
	httpReq.Header.Set("User-Agent", c.UserAgent())
	if c.mode == ModeMember {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.Name(), 0, start)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	c.metrics.observe(req.Name(), resp.StatusCode, start)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("request", req.Name()).
		Str("method", req.Method()).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("DataCite API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// Heartbeat reports whether the API answers its heartbeat with 200 OK.
// Other statuses report false; transport failures are returned.
func (c *Client) Heartbeat(ctx context.Context) (bool, error) {
	resp, err := c.Send(ctx, requests.NewGetHeartbeat())
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, err
	}
	return resp.StatusCode == http.StatusOK, nil
}
