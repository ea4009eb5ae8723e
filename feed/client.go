package feed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// Client performs the blocking GET behind every feed fetch. Timeout and
// User-Agent are fixed at construction; redirects follow the default
// http.Client policy.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get fetches one feed URL and returns the raw XML body. Any failure is
// reported as a *FetchError carrying the URL.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	span := sentry.StartSpan(ctx, "feed.get")
	span.Description = "Fetch feed XML"
	span.SetTag("url", url)
	defer span.Finish()

	log.Tracef("Fetching feed: %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.Status = sentry.SpanStatusInvalidArgument
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Feed request failed for %s: %v", url, err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warnf("Feed request for %s returned HTTP %d", url, resp.StatusCode)
		span.Status = sentry.SpanStatusInternalError
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode, Err: errors.New(resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return "", &FetchError{URL: url, Err: err}
	}

	if strings.TrimSpace(string(body)) == "" {
		span.Status = sentry.SpanStatusInternalError
		return "", &FetchError{URL: url, Err: errors.New("empty response body")}
	}

	log.Debugf("Fetched %d bytes from %s", len(body), url)
	span.Status = sentry.SpanStatusOK
	return string(body), nil
}
