package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"sort"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/rest/packages/core/failure"
	"github.com/abdul-hamid-achik/rest/packages/request"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
)

type Client struct {
	httpClient      *http.Client
	timeout         time.Duration
	followRedirect  bool
	maxRedirects    int
	validateSSL     bool
	proxyURL        string
	acceptAnyStatus bool
	defaultHeaders  map[string]string
	log             logrus.FieldLogger
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:        DefaultTimeout,
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		validateSSL:    true,
		defaultHeaders: make(map[string]string),
		log:            logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Configure TLS verification
	if !c.validateSSL {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	// Configure proxy if specified
	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		} else {
			c.log.WithError(err).Warnf("ignoring invalid proxy URL %q", c.proxyURL)
		}
	}

	redirectPolicy := func(req *http.Request, via []*http.Request) error {
		if !c.followRedirect {
			return http.ErrUseLastResponse
		}
		if len(via) >= c.maxRedirects {
			return fmt.Errorf("stopped after %d redirects", c.maxRedirects)
		}
		return nil
	}

	c.httpClient = &http.Client{
		Transport:     transport,
		Timeout:       c.timeout,
		CheckRedirect: redirectPolicy,
	}

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithFollowRedirects(follow bool) ClientOption {
	return func(c *Client) {
		c.followRedirect = follow
	}
}

func WithMaxRedirects(max int) ClientOption {
	return func(c *Client) {
		c.maxRedirects = max
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithValidateSSL enables or disables SSL certificate validation
func WithValidateSSL(validate bool) ClientOption {
	return func(c *Client) {
		c.validateSSL = validate
	}
}

// WithProxy sets the proxy URL for all requests
func WithProxy(proxyURL string) ClientOption {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithAcceptAnyStatus returns 4xx and 5xx responses instead of failing
func WithAcceptAnyStatus(accept bool) ClientOption {
	return func(c *Client) {
		c.acceptAnyStatus = accept
	}
}

func WithLogger(log logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// StatusError reports a response whose status is outside 2xx.
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.Response.StatusCode)
}

// Send performs the request described by d. Any failure is a
// failure.KindTransport error wrapping the cause.
func (c *Client) Send(ctx context.Context, d *request.Descriptor) (*Response, error) {
	resp, err := c.send(ctx, d)
	if err != nil {
		return nil, failure.Wrap(err, failure.KindTransport, "request failed")
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, d *request.Descriptor) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, d)
	if err != nil {
		return nil, err
	}

	log := c.log.WithFields(logrus.Fields{
		"method": httpReq.Method,
		"url":    httpReq.URL.String(),
	})
	log.Debug("sending request")

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := NewResponse(
		httpResp.StatusCode,
		reasonPhrase(httpResp.StatusCode, httpResp.Status),
		normalizeHeaders(httpResp.Header),
		body,
	)
	resp.Duration = time.Since(start)

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": resp.DurationMs(),
		"bytes":    len(resp.Body),
	}).Debug("response received")

	if !resp.IsSuccess() && !c.acceptAnyStatus {
		return nil, &StatusError{Response: resp}
	}
	return resp, nil
}

// normalizeHeaders lower-cases names and joins repeated values with ", ".
func normalizeHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		name := strings.ToLower(k)
		value := strings.Join(h[k], ", ")
		if prev, ok := headers[name]; ok {
			value = prev + ", " + value
		}
		headers[name] = value
	}
	return headers
}
