package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devnetwork-backend/internal/config"
)

var (
	// ErrNoProfile means GitHub answered with a non-200 status
	ErrNoProfile = errors.New("no github profile found")
	// ErrUnavailable means the request never completed (transport failure)
	ErrUnavailable = errors.New("github api unavailable")
)

// Client fetches repository listings from the GitHub REST API
type Client struct {
	config     *config.GitHubConfig
	httpClient *http.Client
}

// NewClient creates a new GitHub client
func NewClient(cfg *config.GitHubConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListRepos returns the 5 most recently created public repos for a username.
// The upstream JSON body is passed through untouched.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.config.APIURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}

	q := req.URL.Query()
	q.Set("per_page", "5")
	q.Set("sort", "created")
	if c.config.ClientID != "" {
		q.Set("client_id", c.config.ClientID)
		q.Set("client_secret", c.config.ClientSecret)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", "devnetwork-backend")
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoProfile
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return json.RawMessage(body), nil
}
