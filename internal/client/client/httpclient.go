package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/common"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	defaultBackoff = 500 * time.Millisecond
	maxBodySize    = 32 << 20
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	retries int
	backoff time.Duration
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithTokens sets the bearer token source.
func WithTokens(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithRetry sets how many extra attempts a GET gets after a network error
// or 5xx, and the delay between them.
func WithRetry(retries int, backoff time.Duration) Option {
	return func(c *HTTPClient) {
		c.retries = max(retries, 0)
		c.backoff = backoff
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient creates a client for the backend rooted at baseURL, e.g.
// "http://localhost:5000/api".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	trimmed := strings.TrimRight(baseURL, "/")
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be an absolute http(s) url", baseURL)
	}

	c := &HTTPClient{
		baseURL: trimmed,
		http:    &http.Client{Timeout: defaultTimeout},
		log:     logging.NewNop(),
		retries: 1,
		backoff: defaultBackoff,
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With("adapter", "http")
	return c, nil
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (r *response) ok() bool { return r.status >= 200 && r.status < 300 }

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	if len(query) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

func (c *HTTPClient) roundTrip(ctx context.Context, method, path string, query url.Values, payload []byte, accept, requestID string) (*response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set(common.RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok && token != "" {
			req.Header.Set(common.AuthorizationHeader, common.BearerValue(token))
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

// send performs the request, retrying GETs on network errors and 5xx.
func (c *HTTPClient) send(ctx context.Context, method, path string, query url.Values, payload []byte, accept string) (*response, error) {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	log := c.log.With("method", method, "path", path)

	attempts := 1
	if method == http.MethodGet {
		attempts += c.retries
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			log.Debug(ctx, "retrying request", "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, &TransportError{Method: method, Path: path, Err: ctx.Err()}
			case <-time.After(c.backoff):
			}
		}

		start := time.Now()
		res, err := c.roundTrip(ctx, method, path, query, payload, accept, requestID)
		if err != nil {
			lastErr = &TransportError{Method: method, Path: path, Err: err}
			if ctx.Err() != nil {
				return nil, lastErr
			}
			continue
		}
		log.Debug(ctx, "request finished", "status", res.status, "duration", time.Since(start))

		if res.status >= http.StatusInternalServerError && attempt < attempts {
			lastErr = &TransportError{Method: method, Path: path, Status: res.status}
			continue
		}
		return res, nil
	}
	return nil, lastErr
}

func isWrite(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}

// isRejection reports whether a write answered with status was refused by a
// reachable backend. 401 and 403 are credential problems and stay transport
// failures.
func isRejection(status int) bool {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return false
	}
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

type envelopeProbe struct {
	Success *bool             `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func (p *envelopeProbe) reason() string {
	if p.Error != "" {
		return p.Error
	}
	return p.Message
}

// Do sends a JSON request and decodes the response envelope into out.
func (c *HTTPClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	res, err := c.send(ctx, method, path, query, payload, "application/json")
	if err != nil {
		return err
	}
	return decode(method, path, res, out)
}

func decode(method, path string, res *response, out any) error {
	var probe envelopeProbe
	empty := len(bytes.TrimSpace(res.body)) == 0
	perr := errors.New("empty body")
	if !empty {
		perr = json.Unmarshal(res.body, &probe)
	}

	if !res.ok() {
		if isWrite(method) && isRejection(res.status) && perr == nil && probe.reason() != "" {
			return &APIError{Status: res.status, Message: probe.reason(), Fields: probe.Errors}
		}
		te := &TransportError{Method: method, Path: path, Status: res.status}
		if perr == nil && probe.reason() != "" {
			te.Err = errors.New(probe.reason())
		}
		return te
	}

	if empty {
		return nil
	}
	if perr != nil {
		return &TransportError{Method: method, Path: path, Status: res.status, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, perr)}
	}
	if probe.Success != nil && !*probe.Success {
		msg := probe.reason()
		if msg == "" {
			msg = "request was not successful"
		}
		if isWrite(method) {
			return &APIError{Status: res.status, Message: msg, Fields: probe.Errors}
		}
		return &TransportError{Method: method, Path: path, Status: res.status, Err: errors.New(msg)}
	}
	if out != nil {
		if err := json.Unmarshal(res.body, out); err != nil {
			return &TransportError{Method: method, Path: path, Status: res.status, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
		}
	}
	return nil
}

// Download fetches a binary document. The file name is taken from the
// Content-Disposition header when the backend sends one.
func (c *HTTPClient) Download(ctx context.Context, path string, query url.Values) (*models.Blob, error) {
	res, err := c.send(ctx, http.MethodGet, path, query, nil, "*/*")
	if err != nil {
		return nil, err
	}
	if !res.ok() {
		return nil, decode(http.MethodGet, path, res, nil)
	}

	blob := &models.Blob{ContentType: res.header.Get("Content-Type"), Data: res.body}
	if _, params, err := mime.ParseMediaType(res.header.Get("Content-Disposition")); err == nil {
		blob.Name = params["filename"]
	}
	return blob, nil
}

// Ping performs a single GET /health.
func (c *HTTPClient) Ping(ctx context.Context) error {
	res, err := c.roundTrip(ctx, http.MethodGet, PathHealth, nil, nil, "application/json", uuid.NewString())
	if err != nil {
		return &TransportError{Method: http.MethodGet, Path: PathHealth, Err: err}
	}
	if !res.ok() {
		return &TransportError{Method: http.MethodGet, Path: PathHealth, Status: res.status}
	}
	return nil
}
