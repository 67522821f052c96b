package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Sentinel errors for the two failure classes callers care about.
// ErrUnavailable covers transport failures and unexpected server responses;
// ErrNotFound means the requested theme id does not exist.
var (
	ErrUnavailable = errors.New("theme catalog unavailable")
	ErrNotFound    = errors.New("theme not found")
)

// Client fetches the theme catalog over HTTP. It holds no state beyond
// connection settings; callers own caching and retry decisions.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// NewClient constructs a client with defaults applied.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		Client:  &http.Client{Timeout: defaultTimeout},
	}
}

// ListThemes fetches the catalog listing from GET /themes.
func (c *Client) ListThemes(ctx context.Context) ([]ThemeSummary, error) {
	body, err := c.get(ctx, "/themes")
	if err != nil {
		return nil, err
	}

	var themes []ThemeSummary
	if err := json.Unmarshal(body, &themes); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %v", ErrUnavailable, err)
	}
	return themes, nil
}

// GetTheme fetches a single theme record from GET /themes/{id}.
func (c *Client) GetTheme(ctx context.Context, id string) (*ThemeRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty theme id", ErrNotFound)
	}

	body, err := c.get(ctx, "/themes/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var record ThemeRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("%w: decode theme %s: %v", ErrUnavailable, id, err)
	}
	return &record, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: catalog base URL is empty", ErrUnavailable)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, fmt.Errorf("%w: %s returned %s", ErrUnavailable, path, resp.Status)
	}

	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}
	return c.Client
}
