package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/jsinelofficial/metamask-dashboard/config"
	"github.com/jsinelofficial/metamask-dashboard/middleware"
	"github.com/jsinelofficial/metamask-dashboard/upstream"

	"github.com/rs/zerolog/log"
)

var (
	ErrUserNameRequired = errors.New("userName parameter is required")
	ErrAPIKeyMissing    = errors.New("API key not configured")
	ErrUpstreamFailed   = errors.New("Failed to fetch from Twitter API")
	ErrInternal         = errors.New("Internal server error")
)

// ProxyHandler forwards tweet lookups to the upstream API with a server-held key
type ProxyHandler struct {
	client    *upstream.Client
	apiKeyEnv string
}

// NewProxyHandler creates a proxy handler. The credential is read from the
// environment variable named in cfg on every request.
func NewProxyHandler(client *upstream.Client, cfg config.UpstreamConfig) *ProxyHandler {
	return &ProxyHandler{
		client:    client,
		apiKeyEnv: cfg.APIKeyEnv,
	}
}

// GetTweets handles GET /api/tweets?userName=<handle>
func (h *ProxyHandler) GetTweets(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	userName := r.URL.Query().Get("userName")
	if userName == "" {
		SendJSONError(w, http.StatusBadRequest, ErrUserNameRequired, "")
		return
	}

	apiKey := os.Getenv(h.apiKeyEnv)
	if apiKey == "" {
		log.Error().Str("env", h.apiKeyEnv).Msg("Upstream API key not configured")
		SendJSONError(w, http.StatusInternalServerError, ErrAPIKeyMissing, "")
		return
	}

	resp, err := h.client.LastTweets(r.Context(), userName, apiKey)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", middleware.RequestID(r.Context())).
			Str("user_name", userName).
			Msg("Error fetching tweets")
		SendJSONError(w, http.StatusInternalServerError, ErrInternal, "")
		return
	}

	if !resp.OK() {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("user_name", userName).
			Msg("Upstream returned non-success status")
		SendJSONError(w, resp.StatusCode, ErrUpstreamFailed, "")
		return
	}

	if !json.Valid(resp.Body) {
		log.Error().
			Str("request_id", middleware.RequestID(r.Context())).
			Str("user_name", userName).
			Msg("Error fetching tweets: malformed upstream JSON")
		SendJSONError(w, http.StatusInternalServerError, ErrInternal, "")
		return
	}

	SendRawJSON(w, http.StatusOK, resp.Body)
}
