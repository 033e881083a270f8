// Package gateway implements the remote data gateway: a thin,
// stateless client for the mythology service's HTTP API. It owns no
// console state and performs no retries; retry policy belongs to the
// caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	consoleerrors "github.com/eidora/mythos/pkg/errors"
	"github.com/eidora/mythos/pkg/mythology"
)

const (
	apiPrefix      = "/api"
	defaultTimeout = 30 * time.Second

	// The service is single-tenant; the limiter only smooths bursts
	// from rapid key repeats in the console.
	defaultRateLimit = rate.Limit(5)
	defaultBurstSize = 10
)

// Gateway is the interface the console state store consumes. All
// operations may fail with a transport-class error; none of them
// retries.
type Gateway interface {
	FetchNarratives(ctx context.Context, limit int) ([]mythology.NarrativeFragment, error)
	FetchDreams(ctx context.Context, limit int) ([]mythology.DreamScenario, error)
	FetchStats(ctx context.Context) (mythology.AggregateStats, error)
	SubmitInteraction(ctx context.Context, draft mythology.InteractionDraft) (mythology.NarrativeFragment, error)
	TriggerDream(ctx context.Context) (mythology.DreamScenario, error)
	SearchNarratives(ctx context.Context, keyword string) ([]mythology.NarrativeFragment, error)
	TriggerEnhancedDream(ctx context.Context, seedEmotion mythology.EmotionalTone) (mythology.DreamScenario, error)
	TriggerMergerDream(ctx context.Context) (mythology.DreamScenario, error)
}

// Client is an HTTP gateway to the mythology service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOptions configures optional client behavior.
type ClientOptions struct {
	Timeout time.Duration
	// Transport overrides the HTTP transport; used for network logging
	// and by tests.
	Transport http.RoundTripper
}

// NewClient creates a gateway client rooted at baseURL. The fixed /api
// prefix is appended to every request path.
func NewClient(baseURL string) *Client {
	return NewClientWithOptions(baseURL, ClientOptions{})
}

// NewClientWithOptions creates a gateway client with explicit options.
func NewClientWithOptions(baseURL string, opts ClientOptions) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := opts.Transport
	if transport == nil {
		transport = DefaultTransport()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(defaultRateLimit, defaultBurstSize),
	}
}

// FetchNarratives retrieves the most recent narrative fragments,
// newest first.
func (c *Client) FetchNarratives(ctx context.Context, limit int) ([]mythology.NarrativeFragment, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []mythology.NarrativeFragment
	if err := c.getJSON(ctx, "/mythology/narratives", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchDreams retrieves the most recent dream scenarios, newest first.
func (c *Client) FetchDreams(ctx context.Context, limit int) ([]mythology.DreamScenario, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []mythology.DreamScenario
	if err := c.getJSON(ctx, "/mythology/dreams", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchStats retrieves the aggregate statistics snapshot.
func (c *Client) FetchStats(ctx context.Context) (mythology.AggregateStats, error) {
	var out mythology.AggregateStats
	if err := c.getJSON(ctx, "/mythology/stats", nil, &out); err != nil {
		return mythology.AggregateStats{}, err
	}
	return out, nil
}

// SubmitInteraction sends a completed draft for narrative processing
// and returns the generated fragment. Callers must ensure both required
// draft fields are non-empty; that precondition is not re-checked here.
func (c *Client) SubmitInteraction(ctx context.Context, draft mythology.InteractionDraft) (mythology.NarrativeFragment, error) {
	var out mythology.NarrativeFragment
	if err := c.postJSON(ctx, "/mythology/process", nil, draft, &out); err != nil {
		return mythology.NarrativeFragment{}, err
	}
	return out, nil
}

// TriggerDream asks the service to generate a dream scenario.
func (c *Client) TriggerDream(ctx context.Context) (mythology.DreamScenario, error) {
	var out mythology.DreamScenario
	if err := c.postJSON(ctx, "/mythology/dream", nil, nil, &out); err != nil {
		return mythology.DreamScenario{}, err
	}
	return out, nil
}

// SearchNarratives queries narratives by keyword, newest first.
func (c *Client) SearchNarratives(ctx context.Context, keyword string) ([]mythology.NarrativeFragment, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	var out []mythology.NarrativeFragment
	if err := c.getJSON(ctx, "/mythology/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TriggerEnhancedDream generates a dream seeded with an emotional tone.
func (c *Client) TriggerEnhancedDream(ctx context.Context, seedEmotion mythology.EmotionalTone) (mythology.DreamScenario, error) {
	q := url.Values{}
	if seedEmotion != mythology.ToneUnknown {
		q.Set("seed_emotion", string(seedEmotion))
	}
	var out mythology.DreamScenario
	if err := c.postJSON(ctx, "/mythology/enhanced-dream", q, nil, &out); err != nil {
		return mythology.DreamScenario{}, err
	}
	return out, nil
}

// TriggerMergerDream generates a dream where the existing consciousness
// encounters another entity.
func (c *Client) TriggerMergerDream(ctx context.Context) (mythology.DreamScenario, error) {
	var out mythology.DreamScenario
	if err := c.postJSON(ctx, "/mythology/consciousness-merger", nil, nil, &out); err != nil {
		return mythology.DreamScenario{}, err
	}
	return out, nil
}

// StatusCheck is the service's health-check record.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CheckStatus performs a round-trip health check against the service.
func (c *Client) CheckStatus(ctx context.Context, clientName string) (StatusCheck, error) {
	var out StatusCheck
	body := map[string]string{"client_name": clientName}
	if err := c.postJSON(ctx, "/status", nil, body, &out); err != nil {
		return StatusCheck{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return consoleerrors.Wrap(err, consoleerrors.ErrCodeTransport, "rate limiter wait").
			WithContext("path", path)
	}

	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return consoleerrors.Wrap(err, consoleerrors.ErrCodeInternal, "encoding request body").
				WithContext("path", path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return consoleerrors.Wrap(err, consoleerrors.ErrCodeTransport, "building request").
			WithContext("url", endpoint)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return consoleerrors.Wrap(err, consoleerrors.ErrCodeTransport, "request failed").
			WithContext("url", endpoint).
			WithRetryable(true)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return consoleerrors.New(consoleerrors.ErrCodeBadStatus,
			fmt.Sprintf("unexpected status %d", resp.StatusCode)).
			WithContext("url", endpoint).
			WithContext("status", resp.StatusCode).
			WithRetryable(resp.StatusCode >= 500)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return consoleerrors.Wrap(err, consoleerrors.ErrCodeDecode, "decoding response").
			WithContext("url", endpoint)
	}
	return nil
}

// Ensure Client satisfies the store-facing interface.
var _ Gateway = (*Client)(nil)
