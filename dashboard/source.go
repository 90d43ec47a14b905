package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jsinelofficial/metamask-dashboard/model"
)

var ErrProxyStatus = errors.New("proxy returned non-success status")

// Source yields the recent posts of one competitor
type Source interface {
	Fetch(ctx context.Context, competitor model.Competitor) ([]model.RawPost, error)
	Name() string
}

// ProxySource fetches live posts through the proxy endpoint
type ProxySource struct {
	proxyURL   string
	httpClient *http.Client
}

// NewProxySource creates a live source calling proxyURL?userName=<handle>
func NewProxySource(proxyURL string, httpClient *http.Client) *ProxySource {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ProxySource{
		proxyURL:   proxyURL,
		httpClient: httpClient,
	}
}

func (s *ProxySource) Name() string { return "live" }

// Fetch calls the proxy once for the competitor's handle
func (s *ProxySource) Fetch(ctx context.Context, competitor model.Competitor) ([]model.RawPost, error) {
	u, err := url.Parse(s.proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	q := u.Query()
	q.Set("userName", competitor.Handle)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build proxy request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read proxy body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &e)
		return nil, fmt.Errorf("%w: %d %s", ErrProxyStatus, resp.StatusCode, e.Error)
	}

	return model.DecodeTweets(body)
}
