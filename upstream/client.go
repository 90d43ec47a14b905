// Package upstream talks to the third-party Twitter data API.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const lastTweetsPath = "/twitter/user/last_tweets"

// maxBodyBytes bounds how much of an upstream response is buffered
const maxBodyBytes = 10 << 20

// Client fetches recent posts for an account handle
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an upstream client. A nil httpClient uses http.DefaultClient,
// so no timeout is enforced beyond what the transport provides.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Response is the raw upstream reply
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// LastTweets issues one GET for the account's recent posts, authenticated with apiKey.
// A returned error means a transport failure; non-2xx replies are not errors.
func (c *Client) LastTweets(ctx context.Context, userName, apiKey string) (Response, error) {
	endpoint := c.baseURL + lastTweetsPath + "?" + url.Values{"userName": {userName}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("X-API-Key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("read upstream body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
