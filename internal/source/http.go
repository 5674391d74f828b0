package source

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// FetchOptions configures the HTTP fetcher for published source sheets.
type FetchOptions struct {
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	// RatePerSec throttles requests; MoH portals are small and slow.
	RatePerSec float64
	Burst      int
	// HostLimits overrides the default limiter per host.
	HostLimits map[string]*rate.Limiter
}

// Fetcher downloads published source sheets with retry and politeness
// limits.
type Fetcher struct {
	client   *http.Client
	opts     FetchOptions
	fallback *rate.Limiter
}

// NewFetcher creates a Fetcher with sane defaults filled in.
func NewFetcher(opts FetchOptions) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "mfl-cli/1.0"
	}
	if opts.RatePerSec == 0 {
		opts.RatePerSec = 4
	}
	if opts.Burst == 0 {
		opts.Burst = 4
	}
	return &Fetcher{
		client:   &http.Client{Timeout: opts.Timeout},
		opts:     opts,
		fallback: rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.Burst),
	}
}

func (f *Fetcher) limiterFor(rawURL string) *rate.Limiter {
	u, err := url.Parse(rawURL)
	if err != nil {
		return f.fallback
	}
	if lim, ok := f.opts.HostLimits[u.Host]; ok {
		return lim
	}
	return f.fallback
}

// Fetch downloads the URL body, retrying transient failures with
// exponential backoff.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := range f.opts.MaxRetries {
		if err := f.limiterFor(rawURL).Wait(ctx); err != nil {
			return nil, eris.Wrap(err, "fetch: rate limiter wait")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, eris.Wrap(err, "fetch: create request")
		}
		req.Header.Set("User-Agent", f.opts.UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			zap.L().Warn("fetch failed, retrying",
				zap.String("url", rawURL),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			f.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			_ = resp.Body.Close()
			lastErr = eris.Errorf("fetch: http %d from %s", resp.StatusCode, rawURL)
			zap.L().Warn("server busy, retrying",
				zap.String("url", rawURL),
				zap.Int("status", resp.StatusCode),
				zap.Int("attempt", attempt+1),
			)
			f.backoff(ctx, attempt)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			_ = resp.Body.Close()
			return nil, eris.Errorf("fetch: unexpected status %d from %s", resp.StatusCode, rawURL)
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, eris.Wrap(err, "fetch: read body")
		}
		return body, nil
	}

	return nil, eris.Wrap(lastErr, "fetch: all retries exhausted")
}

func (f *Fetcher) backoff(ctx context.Context, attempt int) {
	base := 500 * time.Millisecond
	maxBackoff := 15 * time.Second
	d := time.Duration(float64(base) * math.Pow(2, float64(attempt)))
	if d > maxBackoff {
		d = maxBackoff
	}
	d += time.Duration(rand.Int64N(int64(d) / 2))

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
