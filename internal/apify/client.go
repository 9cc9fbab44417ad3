// Package apify is a REST client for the Apify actor platform, the external
// scraping provider behind both fetch tools. A fetch is one blocking
// round trip: start an actor run, poll until it finishes, download the
// default dataset.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/nossa-y/mistral-mcp-hackathon/pkg/clients"
	"github.com/nossa-y/mistral-mcp-hackathon/pkg/logging"
)

const DefaultBaseURL = "https://api.apify.com"

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("apify returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("apify returned status %d", e.StatusCode)
}

type Client struct {
	baseURL      string
	token        string
	client       *http.Client
	httpExecutor failsafe.Executor[*http.Response]
	shouldRetry  func(resp *http.Response, err error) bool
	pollInterval time.Duration
	logger       logging.Logger
}

type Option func(*Client)

func NewClient(token string, opts ...Option) *Client {
	defaultConfig := clients.DefaultHTTPExecutorConfig()
	c := &Client{
		baseURL:      DefaultBaseURL,
		token:        token,
		client:       &http.Client{Timeout: 60 * time.Second, Transport: clients.DefaultTransport()},
		httpExecutor: clients.NewHTTPExecutor(defaultConfig),
		shouldRetry:  defaultConfig.ShouldRetry,
		pollInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.client = httpClient
		}
	}
}

func WithHTTPExecutorConfig(cfg clients.HTTPExecutorConfig) Option {
	return func(c *Client) {
		c.httpExecutor = clients.NewHTTPExecutor(cfg)
		c.shouldRetry = cfg.ShouldRetry
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Run describes an actor run as reported by the platform.
type Run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

type runEnvelope struct {
	Data Run `json:"data"`
}

// Terminal run statuses per the Apify run lifecycle.
const (
	statusSucceeded = "SUCCEEDED"
	statusFailed    = "FAILED"
	statusAborted   = "ABORTED"
	statusTimedOut  = "TIMED-OUT"
)

// RunActor starts an actor, waits for it to reach a terminal state and
// returns the items of its default dataset.
func (c *Client) RunActor(ctx context.Context, actorID string, input map[string]any) ([]any, error) {
	run, err := c.startRun(ctx, actorID, input)
	if err != nil {
		return nil, err
	}

	if c.logger != nil {
		c.logger.WithFields(logging.Fields{
			"actor_id": actorID,
			"run_id":   run.ID,
		}).Info("Started actor run")
	}

	run, err = c.waitForRun(ctx, run)
	if err != nil {
		return nil, err
	}
	if run.Status != statusSucceeded {
		return nil, fmt.Errorf("actor run %s ended with status %s", run.ID, run.Status)
	}
	if run.DefaultDatasetID == "" {
		return nil, fmt.Errorf("actor run %s returned no dataset", run.ID)
	}

	return c.DatasetItems(ctx, run.DefaultDatasetID)
}

func (c *Client) startRun(ctx context.Context, actorID string, input map[string]any) (Run, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return Run{}, fmt.Errorf("marshal actor input: %w", err)
	}

	// REST paths use "~" where actor IDs use "/"
	path := fmt.Sprintf("%s/v2/acts/%s/runs", c.baseURL, strings.ReplaceAll(actorID, "/", "~"))

	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.token)
		return req, nil
	})
	if err != nil {
		return Run{}, fmt.Errorf("start actor run: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Run{}, c.apiError(resp)
	}

	var envelope runEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Run{}, fmt.Errorf("decode run response: %w", err)
	}
	return envelope.Data, nil
}

func (c *Client) waitForRun(ctx context.Context, run Run) (Run, error) {
	for !isTerminal(run.Status) {
		select {
		case <-ctx.Done():
			return run, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		updated, err := c.getRun(ctx, run.ID)
		if err != nil {
			return run, err
		}
		run = updated
	}
	return run, nil
}

func isTerminal(status string) bool {
	switch status {
	case statusSucceeded, statusFailed, statusAborted, statusTimedOut:
		return true
	default:
		return false
	}
}

func (c *Client) getRun(ctx context.Context, runID string) (Run, error) {
	path := fmt.Sprintf("%s/v2/actor-runs/%s", c.baseURL, runID)

	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		return req, nil
	})
	if err != nil {
		return Run{}, fmt.Errorf("get actor run: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Run{}, c.apiError(resp)
	}

	var envelope runEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return Run{}, fmt.Errorf("decode run response: %w", err)
	}
	return envelope.Data, nil
}

// DatasetItems downloads all items of a dataset as raw JSON values.
func (c *Client) DatasetItems(ctx context.Context, datasetID string) ([]any, error) {
	path := fmt.Sprintf("%s/v2/datasets/%s/items?format=json", c.baseURL, datasetID)

	resp, err := c.doRequest(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch dataset items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	var items []any
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode dataset items: %w", err)
	}
	return items, nil
}

func (c *Client) doRequest(ctx context.Context, build func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if c.httpExecutor == nil {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return c.client.Do(req)
	}

	resp, err := clients.ExecuteHTTP(ctx, c.httpExecutor, func() (*http.Response, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if c.shouldRetry != nil && c.shouldRetry(resp, err) {
			if resp != nil && resp.Body != nil {
				// Buffer the error body so the final attempt's message
				// survives retry exhaustion.
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				_ = resp.Body.Close()
				resp.Body = io.NopCloser(bytes.NewReader(body))
			}
		}
		return resp, err
	})
	if err != nil {
		// When retries run out failsafe wraps the last attempt instead of
		// returning it. Recover the final response so callers report the
		// upstream status and message rather than "retries exceeded".
		if exceeded := retrypolicy.AsExceededError(err); exceeded != nil {
			if last, ok := exceeded.LastResult.(*http.Response); ok && last != nil {
				return last, nil
			}
			if exceeded.LastError != nil {
				return nil, exceeded.LastError
			}
		}
		return nil, err
	}
	return resp, nil
}

func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := parseErrorMessage(body)
	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

func parseErrorMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return strings.TrimSpace(string(body))
}
