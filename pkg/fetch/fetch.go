package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultUserAgent = "craftget"
	defaultAttempts  = 3
	defaultRetryWait = 500 * time.Millisecond
)

// Client is the one HTTP client the pipeline uses for every
// outbound request. Construct it once per run and pass it down.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string

	// Attempts is the total fetch budget for GetVerified,
	// transport failures and digest mismatches included.
	Attempts  int
	RetryWait time.Duration
}

func New() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 2 * time.Minute},
		UserAgent:  defaultUserAgent,
		Attempts:   defaultAttempts,
		RetryWait:  defaultRetryWait,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return defaultUserAgent
}

func (c *Client) attempts() int {
	if c.Attempts > 0 {
		return c.Attempts
	}
	return defaultAttempts
}

// Get performs a single GET. Transport failure and status >= 400
// are both errors; no integrity check happens at this layer.
func (c *Client) Get(
	ctx context.Context, url string,
) ([]byte, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, url, nil,
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent())

	slog.Debug("get", "url", url)
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
		}
	}
	return io.ReadAll(resp.Body)
}

// GetVerified fetches url until the body's SHA-1 matches sha1Hex,
// consuming one attempt per failure regardless of whether the
// failure was a transport error, a bad status, or a digest
// mismatch. Only exhausting the budget is terminal.
func (c *Client) GetVerified(
	ctx context.Context, url, sha1Hex string,
) ([]byte, error) {
	attempts := c.attempts()
	want := strings.ToLower(sha1Hex)

	var body []byte
	op := func() error {
		b, err := c.Get(ctx, url)
		if err != nil {
			slog.Debug("fetch attempt failed",
				"url", url, "err", err,
			)
			return err
		}
		if !Verify(b, want) {
			slog.Debug("fetch attempt bad digest",
				"url", url, "want", want,
			)
			return &IntegrityError{
				URL:      url,
				Want:     want,
				Got:      Sum(b),
				Attempts: attempts,
			}
		}
		body = b
		return nil
	}

	bo := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(c.retryWait()),
			uint64(attempts-1),
		),
		ctx,
	)
	if err := backoff.Retry(op, bo); err != nil {
		var ie *IntegrityError
		if errors.As(err, &ie) {
			return nil, ie
		}
		return nil, fmt.Errorf(
			"download %s failed after %d attempts: %w",
			url, attempts, err,
		)
	}
	return body, nil
}

func (c *Client) retryWait() time.Duration {
	if c.RetryWait > 0 {
		return c.RetryWait
	}
	return defaultRetryWait
}
