// Package client is the thin HTTP transport for the camptocamp API: a single
// GET per call, no retries, no caching. Everything above it (pagination,
// matching) lives in the search package.
package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"c2cq/doc"

	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
)

const (
	DefaultBaseUrl = "https://api.camptocamp.org"
	DefaultTimeout = 15 * time.Second

	userAgent = "c2cq/0.1.0"
)

// Config holds the client configuration. It is passed explicitly to NewClient
// so that independent searches never share ambient state.
type Config struct {
	BaseUrl   string
	Timeout   time.Duration
	UserAgent string

	// DefaultParams are sent with every request and can be overridden per
	// call.
	DefaultParams map[string]string
}

func DefaultConfig() Config {
	return Config{
		BaseUrl:   DefaultBaseUrl,
		Timeout:   DefaultTimeout,
		UserAgent: userAgent,
	}
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.BaseUrl == "" {
		config.BaseUrl = DefaultBaseUrl
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = userAgent
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// ListRoutes fetches one page of the /routes collection.
func (c *Client) ListRoutes(ctx context.Context, query map[string]string) (*doc.Page, error) {
	return c.List(ctx, "routes", query)
}

// ListWaypoints fetches one page of the /waypoints collection.
func (c *Client) ListWaypoints(ctx context.Context, query map[string]string) (*doc.Page, error) {
	return c.List(ctx, "waypoints", query)
}

// List fetches one page of an arbitrary list endpoint. Failures propagate to
// the caller unchanged, there is no local recovery.
func (c *Client) List(ctx context.Context, endpoint string, query map[string]string) (*doc.Page, error) {
	requestUrl := strings.TrimRight(c.config.BaseUrl, "/") + "/" + strings.TrimLeft(endpoint, "/")

	values := url.Values{}
	for key, value := range c.config.DefaultParams {
		values.Set(key, value)
	}
	for key, value := range query {
		values.Set(key, value)
	}
	if len(values) > 0 {
		requestUrl += "?" + values.Encode()
	}

	sigolo.Debugf("GET %s", requestUrl)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to create request for %s", requestUrl)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", c.config.UserAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "Request to %s failed", requestUrl)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return nil, errors.Errorf("API returned status %d for %s: %s", response.StatusCode, requestUrl, string(body))
	}

	page := &doc.Page{}
	err = json.NewDecoder(response.Body).Decode(page)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to decode response of %s", requestUrl)
	}

	return page, nil
}
