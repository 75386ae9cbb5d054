package logodev

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
)

var (
	ErrNotFound = errors.New("not found")
)

// Client resolves a domain to a hosted logo image through a Clearbit-style
// logo API. The API answers 200 with the image when a logo exists and 404
// when it knows nothing about the domain.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	baseURL := os.Getenv("LOGO_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://img.logo.dev/"
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Resolve checks whether the API hosts a logo for the domain and returns the
// stable image URL if so.
func (c *Client) Resolve(ctx context.Context, domain string) (string, error) {
	logoURL := c.baseURL + domain

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, logoURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("logo API failed with status code: %d", resp.StatusCode)
	}
	return logoURL, nil
}
