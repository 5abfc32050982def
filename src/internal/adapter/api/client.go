package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/banco-portal/src/internal/logger"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Client talks to the credenciales and cuentas resources. Each call is a single
// request: no retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	channelID  string
	channelKey string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient = &http.Client{Timeout: d, Transport: c.httpClient.Transport}
		}
	}
}

// WithChannelCredentials sets the basic-auth pair used by the credential
// administration endpoints.
func WithChannelCredentials(id, key string) Option {
	return func(c *Client) {
		c.channelID = id
		c.channelKey = key
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSessionToken returns a copy of c that sends token as a bearer header.
func (c *Client) WithSessionToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type call struct {
	method    string
	path      string
	body      any
	out       any
	channel   bool
	operation string
}

func (c *Client) do(ctx context.Context, in call) error {
	start := time.Now()
	url := c.baseURL + in.path
	requestID := uuid.NewString()

	var reader io.Reader
	if in.body != nil {
		raw, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", in.operation, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, url, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", in.operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if in.channel && c.channelID != "" && c.channelKey != "" {
		req.SetBasicAuth(c.channelID, c.channelKey)
	}

	logger.Debug("api client request", logger.Fields{
		"operation": in.operation,
		"method":    in.method,
		"url":       url,
		"requestId": requestID,
		"payload":   logger.SanitizePayload(in.body),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("api client transport failure", err, logger.Fields{
			"operation": in.operation,
			"url":       url,
			"requestId": requestID,
		})
		return &Error{Method: in.method, URL: url, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Method: in.method, URL: url, StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	fields := logger.Fields{
		"operation":  in.operation,
		"method":     in.method,
		"url":        url,
		"requestId":  requestID,
		"status":     resp.StatusCode,
		"durationMs": time.Since(start).Milliseconds(),
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := messageFromBody(raw)
		if msg == "" {
			msg = statusFailureMessage(url, resp.StatusCode)
		}
		fields["message"] = msg
		logger.Warn("api client error response", fields)
		return &Error{Method: in.method, URL: url, StatusCode: resp.StatusCode, Message: msg}
	}
	logger.Debug("api client response", fields)

	if in.out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, in.out); err != nil {
		return &Error{
			Method:     in.method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    "Http failure during parsing for " + url,
			Err:        err,
		}
	}
	return nil
}

// messageFromBody pulls "message" out of an error body, if there is one.
func messageFromBody(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
