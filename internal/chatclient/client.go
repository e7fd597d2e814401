package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ChatPath is appended to every candidate base URL.
const ChatPath = "/api/llm/chat"

// DefaultTimeout bounds a single attempt against one candidate.
const DefaultTimeout = 15 * time.Second

// maxResponseBytes caps how much of a backend reply is read.
const maxResponseBytes = 4 << 20

// Asker answers a question given the conversation so far.
type Asker interface {
	Ask(ctx context.Context, question string, history []Message) (string, error)
}

// Options configures a Client. The zero value tries DefaultBaseURLs with
// DefaultTimeout.
type Options struct {
	// BaseURL is the externally configured backend address, tried first.
	BaseURL string
	// Defaults replaces DefaultBaseURLs when non-nil.
	Defaults []string
	// Timeout bounds each attempt. Zero means DefaultTimeout.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client delivers questions to the first reachable backend. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	candidates []string
	timeout    time.Duration
	client     *http.Client
	log        *zap.Logger
}

// New builds a Client. The candidate list is computed once here.
func New(opts Options) *Client {
	defaults := opts.Defaults
	if defaults == nil {
		defaults = DefaultBaseURLs
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		candidates: Candidates(opts.BaseURL, defaults),
		timeout:    timeout,
		client:     httpClient,
		log:        logger.Named("chatclient"),
	}
}

// Candidates returns a copy of the ordered base URLs this client tries.
func (c *Client) Candidates() []string {
	return slices.Clone(c.candidates)
}

// Budget is the longest Ask can take when every candidate times out.
func (c *Client) Budget() time.Duration {
	return time.Duration(len(c.candidates)) * c.timeout
}

// Ask posts the question and history to each candidate in turn and returns
// the first successful answer. When every candidate fails it returns a
// *BackendUnreachableError.
func (c *Client) Ask(ctx context.Context, question string, history []Message) (string, error) {
	if history == nil {
		history = []Message{}
	}
	body, err := json.Marshal(Request{Question: question, History: history})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	var (
		attempts      int
		lastMessage   string
		lastTransport error
	)

	answer, err := firstSuccess(ctx, c.candidates,
		func(ctx context.Context, base string) (string, error) {
			attempts++
			return c.attempt(ctx, base, body)
		},
		func(base string, err error) {
			var be *backendError
			if errors.As(err, &be) {
				lastMessage = be.message
			} else {
				lastMessage = ""
				lastTransport = err
			}
			c.log.Debug("chat candidate failed",
				zap.String("base_url", base),
				zap.Int("attempt", attempts),
				zap.Error(err),
			)
		},
	)
	if err == nil {
		if attempts > 1 {
			c.log.Info("chat answered by fallback candidate",
				zap.String("base_url", c.candidates[attempts-1]),
				zap.Int("attempts", attempts),
			)
		}
		return answer, nil
	}
	if !errors.Is(err, errExhausted) {
		return "", err
	}

	msg := lastMessage
	if msg == "" {
		msg = GenericErrorMessage
	}
	return "", &BackendUnreachableError{
		Message:  msg,
		Attempts: attempts,
		Cause:    lastTransport,
	}
}

// attempt makes exactly one request to one candidate.
func (c *Client) attempt(ctx context.Context, base string, body []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+ChatPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request for %s: %w", base, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to %s failed: %w", base, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", base, err)
	}

	var out Response
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%s returned status %d with undecodable body: %w", base, resp.StatusCode, err)
	}

	if !out.Success {
		msg := strings.TrimSpace(out.Message)
		if msg == "" {
			msg = GenericErrorMessage
		}
		return "", &backendError{message: msg}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%s returned status %d", base, resp.StatusCode)
	}
	return out.Answer, nil
}
