package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ncobase/coursenav/config"
	"github.com/ncobase/coursenav/ctxutil"
	"github.com/ncobase/coursenav/logging/logger"
	"github.com/ncobase/coursenav/net/resp"
	"github.com/ncobase/coursenav/observes"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-Id"
	maxBodySize         = 10 << 20
)

// errServerStatus marks 5xx replies as breaker failures
var errServerStatus = errors.New("server error status")

// Request describes an API call. URL is relative to the base URL unless absolute.
type Request struct {
	Method  string
	URL     string
	Data    any
	Params  url.Values
	Headers map[string]string
}

// Reply is a completed HTTP exchange. Error is non-nil exactly when Status >= 400.
type Reply struct {
	Status int
	Header http.Header
	Body   []byte
	Error  *resp.ErrorData
}

// Decode decodes the body into v
func (r *Reply) Decode(v any) error {
	if len(r.Body) == 0 {
		return errors.New("empty response body")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Doer issues API requests
type Doer interface {
	Do(ctx context.Context, req Request) (*Reply, error)
}

// Credentialer attaches and removes the process-wide credential
type Credentialer interface {
	SetCredential(token string)
	ClearCredential()
}

// Client is the API gateway
type Client struct {
	baseURL string
	scheme  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	tracer  trace.Tracer

	mu      sync.RWMutex
	headers http.Header
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL overrides the configured base URL
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// New creates a new API client
func New(cfg *config.API, opts ...Option) *Client {
	if cfg == nil {
		cfg = &config.API{}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	scheme := cfg.AuthScheme
	if scheme == "" {
		scheme = "Token"
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		scheme:  scheme,
		http:    &http.Client{Timeout: timeout},
		tracer:  observes.Tracer(),
		headers: http.Header{},
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		c.headers.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.Breaker != nil && cfg.Breaker.Enabled {
		c.breaker = newBreaker(cfg.Breaker)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newBreaker creates the circuit breaker guarding the transport
func newBreaker(bc *config.Breaker) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "api",
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= bc.MinRequests && failureRatio >= bc.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf(context.Background(), "circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

// SetCredential attaches the credential to every subsequent request
func (c *Client) SetCredential(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Set(headerAuthorization, c.scheme+" "+token)
}

// ClearCredential removes the credential from the default headers
func (c *Client) ClearCredential() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.headers.Del(headerAuthorization)
}

// Credential returns the attached credential, empty when none
func (c *Client) Credential() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return strings.TrimPrefix(c.headers.Get(headerAuthorization), c.scheme+" ")
}

// BaseURL returns the base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues the request. HTTP failures are reported through Reply.Error;
// the returned error is reserved for transport failures.
func (c *Client) Do(ctx context.Context, req Request) (*Reply, error) {
	ctx, traceID := ctxutil.EnsureTraceID(ctx)
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	ctx, span := c.tracer.Start(ctx, "api "+method+" "+req.URL, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	hr, err := c.newHTTPRequest(ctx, method, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	hr.Header.Set(headerRequestID, traceID)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(hr.Header))
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", hr.URL.String()),
	)

	start := time.Now()
	reply, err := c.execute(hr)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warnf(ctx, "api %s %s failed: %v", method, hr.URL.Path, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", reply.Status))
	if reply.Error != nil {
		span.SetStatus(codes.Error, reply.Error.Message)
	}
	logger.Debugf(ctx, "api %s %s -> %d (%s)", method, hr.URL.Path, reply.Status, time.Since(start))
	return reply, nil
}

// execute runs the round trip, through the breaker when configured
func (c *Client) execute(hr *http.Request) (*Reply, error) {
	if c.breaker == nil {
		return c.roundTrip(hr)
	}

	out, err := c.breaker.Execute(func() (any, error) {
		reply, err := c.roundTrip(hr)
		if err != nil {
			return nil, err
		}
		if reply.Status >= http.StatusInternalServerError {
			return reply, errServerStatus
		}
		return reply, nil
	})
	if errors.Is(err, errServerStatus) {
		return out.(*Reply), nil
	}
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", hr.Method, hr.URL.Path, err)
	}
	return out.(*Reply), nil
}

// roundTrip sends the request and normalizes the reply
func (c *Client) roundTrip(hr *http.Request) (*Reply, error) {
	res, err := c.http.Do(hr)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Reply{
		Status: res.StatusCode,
		Header: res.Header,
		Body:   body,
		Error:  resp.FromHTTP(res.StatusCode, body),
	}, nil
}

// newHTTPRequest builds the HTTP request with merged headers
func (c *Client) newHTTPRequest(ctx context.Context, method string, req Request) (*http.Request, error) {
	u, err := c.resolve(req.URL, req.Params)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if req.Data != nil {
		data, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	hr, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.mu.RLock()
	for k, vs := range c.headers {
		for _, v := range vs {
			hr.Header.Add(k, v)
		}
	}
	c.mu.RUnlock()
	for k, v := range req.Headers {
		hr.Header.Set(k, v)
	}
	return hr, nil
}

// resolve joins the request URL with the base URL and appends params
func (c *Client) resolve(path string, params url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		raw = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid request url %q: %w", raw, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
