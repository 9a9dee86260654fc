package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TokenSource supplies the bearer token attached to every request.
// An empty token means the session is unauthenticated and no
// Authorization header is sent.
type TokenSource interface {
	Token() string
}

// Doer executes a single HTTP request. Both Transport and BreakerTransport
// implement it.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Transport wraps http.Client with retry logic, bearer-token injection and
// global 401 handling. Retry policy lives here and nowhere else: callers
// issue exactly one logical request.
type Transport struct {
	httpClient     *http.Client
	cfg            Config
	tokens         TokenSource
	onUnauthorized func()
	logger         *slog.Logger
}

// NewTransport creates a transport with connection pooling and OpenTelemetry
// instrumentation. onUnauthorized is invoked whenever the backend answers 401;
// it should invalidate stored credentials. It may be nil.
func NewTransport(cfg Config, tokens TokenSource, onUnauthorized func(), logger *slog.Logger) *Transport {
	base := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   cfg.MaxConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Transport{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(base),
			Timeout:   cfg.Timeout,
		},
		cfg:            cfg,
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		logger:         logger,
	}
}

// Do executes an HTTP request with bearer injection and retry on network
// errors and 5xx responses. A 401 response triggers the onUnauthorized hook
// exactly once and is returned to the caller unretried.
func (t *Transport) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)

	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	// Request bodies are consumed on send; replay requires GetBody.
	maxRetries := t.cfg.MaxRetries
	if req.Body != nil && req.GetBody == nil {
		maxRetries = 0
	}

	var resp *http.Response
	var err error

	start := time.Now()
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff between attempts.
			wait := t.cfg.RetryWaitMin * time.Duration(1<<uint(attempt-1))
			if wait > t.cfg.RetryWaitMax {
				wait = t.cfg.RetryWaitMax
			}

			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}

			if req.Body != nil {
				body, bodyErr := req.GetBody()
				if bodyErr != nil {
					return nil, fmt.Errorf("replay request body: %w", bodyErr)
				}
				req.Body = body
			}
		}

		resp, err = t.httpClient.Do(req)
		if err != nil {
			if isRetryableError(err) && attempt < maxRetries {
				continue
			}
			observeFailure(req.Method)
			return nil, fmt.Errorf("http request failed after %d attempts: %w", attempt+1, err)
		}

		// Retry on 5xx errors (except 501 Not Implemented).
		if resp.StatusCode >= 500 && resp.StatusCode != 501 && attempt < maxRetries {
			resp.Body.Close()
			continue
		}

		observeRequest(req.Method, resp.StatusCode, time.Since(start).Seconds())

		if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
			t.logger.WarnContext(ctx, "unauthorized response, invalidating session",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
			)
			t.onUnauthorized()
		}

		return resp, nil
	}

	return resp, err
}

// isRetryableError determines if an error is retryable.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// ErrCircuitOpen is returned when the circuit breaker is open and rejects the request.
var ErrCircuitOpen = gobreaker.ErrOpenState

// BreakerTransport wraps a Transport with circuit breaker protection so a
// degraded backend stops absorbing storefront requests.
type BreakerTransport struct {
	transport *Transport
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	logger    *slog.Logger
}

// NewBreakerTransport wraps the given transport with a circuit breaker
// configured from cfg.
func NewBreakerTransport(transport *Transport, cfg Config, logger *slog.Logger) *BreakerTransport {
	settings := gobreaker.Settings{
		Name:        "openshop-api",
		MaxRequests: 1,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.BreakerFailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &BreakerTransport{
		transport: transport,
		breaker:   gobreaker.NewCircuitBreaker[*http.Response](settings),
		logger:    logger,
	}
}

// Do executes an HTTP request through the circuit breaker. 5xx responses
// count as failures.
func (b *BreakerTransport) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	return b.breaker.Execute(func() (*http.Response, error) {
		resp, err := b.transport.Do(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			body, readErr := io.ReadAll(resp.Body)
			if readErr != nil {
				body = []byte{}
			}
			_ = resp.Body.Close()
			return nil, fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
		}
		return resp, nil
	})
}

// State returns the current state of the circuit breaker.
func (b *BreakerTransport) State() gobreaker.State {
	return b.breaker.State()
}
