package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/eleven-am/metric-frames/internal/payload"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const maxBodyBytes = 8 << 20

var ErrMalformedPayload = errors.New("malformed upstream payload")

// StatusError reports a non-2xx upstream answer. Reason is the phrase from
// the upstream status line.
type StatusError struct {
	StatusCode int
	Reason     string
}

func newStatusError(resp *http.Response) *StatusError {
	reason := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	return &StatusError{
		StatusCode: resp.StatusCode,
		Reason:     strings.TrimSpace(reason),
	}
}

func (e *StatusError) Error() string {
	return strings.TrimSpace(fmt.Sprintf("RevenueCat responded with %d %s", e.StatusCode, e.Reason))
}

// Observer is told about every completed upstream round trip. Status is 0
// when no response was received.
type Observer interface {
	ObserveUpstream(status int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveUpstream(int, time.Duration) {}

type Client struct {
	transport http.RoundTripper
	timeout   time.Duration
	observer  Observer
	logger    *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger, observer Observer) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Client{
		transport: http.DefaultTransport.(*http.Transport).Clone(),
		timeout:   timeout,
		observer:  observer,
		logger:    logger,
	}
}

// Fetch performs one GET against endpoint on behalf of the caller owning
// token and decodes the JSON body.
func (c *Client) Fetch(ctx context.Context, endpoint *url.URL, token string) (payload.Record, error) {
	httpClient := &http.Client{
		Timeout: c.timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   c.transport,
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		c.observer.ObserveUpstream(0, time.Since(start))
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer resp.Body.Close()

	elapsed := time.Since(start)
	c.observer.ObserveUpstream(resp.StatusCode, elapsed)
	c.logger.Debug("upstream responded",
		zap.String("path", endpoint.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	doc, err := payload.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return doc, nil
}

// Probe checks that the upstream answers HTTP at all. Any response, including
// an authorization failure, counts as reachable.
func (c *Client) Probe(ctx context.Context, endpoint *url.URL) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := (&http.Client{Timeout: c.timeout, Transport: c.transport}).Do(req)
	if err != nil {
		return fmt.Errorf("probe upstream: %w", err)
	}
	resp.Body.Close()
	return nil
}
