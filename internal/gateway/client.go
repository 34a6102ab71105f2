// Package gateway is the remote data layer: one HTTP client per process that
// talks to the Dressify backend. Each screen-level operation issues its own
// independent request — no shared cache, no de-duplication, no retries; a
// failure surfaces once and that's it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"dressify/internal/apierror"
	"dressify/internal/config"
	"dressify/internal/session"
)

// Client calls the Dressify REST backend. The session is injected at
// construction and never mutated — WithSession returns a fresh client, so a
// login/logout can't leak state into requests already in flight.
type Client struct {
	baseURL string
	http    *http.Client
	sess    session.Session
}

func New(cfg *config.Config, sess session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		sess:    sess,
	}
}

// WithSession returns a copy of the client bound to another session.
func (c *Client) WithSession(sess session.Session) *Client {
	clone := *c
	clone.sess = sess
	return &clone
}

// do performs one request and returns the response body. Non-2xx statuses
// and transport failures both come back as *apierror.APIError, already
// carrying the user-facing message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("gateway: marshal payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("gateway: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

// send finishes a prepared request: auth header, correlation id, logging,
// error taxonomy. doMultipart shares this tail with do.
func (c *Client) send(req *http.Request) ([]byte, error) {
	if !c.sess.Vacia() {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Err(err).
			Msg("backend unreachable")
		return nil, apierror.FromTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.FromTransport(err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode >= 400 {
		return nil, apierror.FromResponse(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
