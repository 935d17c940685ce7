package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/interfaces"
)

// Client talks to the campus account directory. It is only consulted once per
// application, at submit time, to capture the identity snapshot.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Lookup(ctx context.Context, accountID uint) (*interfaces.AccountProfile, error) {
	url := fmt.Sprintf("%s/v1/accounts/%d", c.baseURL, accountID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d for account %d", resp.StatusCode, accountID)
	}

	var profile interfaces.AccountProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode directory response: %w", err)
	}
	return &profile, nil
}
