// Package lineups fetches per-match lineup documents from the statistics
// API and flattens them into per-player records.
package lineups

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const defaultBaseURL = "https://www.sofascore.com/api/v1"

var ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Fetch retrieves the lineups document for one match. One attempt only;
// skipping a failed match is the caller's policy, not this client's.
func (c *Client) Fetch(ctx context.Context, matchID string) (*Document, error) {
	url := fmt.Sprintf("%s/event/%s/lineups", c.baseURL, matchID)
	req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch lineups for match %s: %w", matchID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch lineups for match %s: status %d", matchID, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read lineups for match %s: %w", matchID, err)
	}
	var doc Document
	if err := sonic.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode lineups for match %s: %w", matchID, err)
	}
	return &doc, nil
}
