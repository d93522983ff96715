package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"

	"github.com/abdul-hamid-achik/rest/packages/request"
)

// ContentTypeJSON is sent with every body unless the user set a Content-Type
const ContentTypeJSON = "application/json"

// ValidateURL checks that a URL is well-formed and uses an allowed scheme
func ValidateURL(rawURL string) error {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q (only http and https are allowed)", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}

	return nil
}

func (c *Client) buildRequest(ctx context.Context, d *request.Descriptor) (*http.Request, error) {
	if err := ValidateURL(d.URL); err != nil {
		return nil, err
	}

	var body io.Reader
	if d.HasBody() {
		body = bytes.NewReader(d.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, d.Method.Method(), d.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range c.defaultHeaders {
		httpReq.Header.Set(k, v)
	}

	for k, v := range d.Headers {
		httpReq.Header.Set(k, v)
	}

	if d.HasBody() && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", ContentTypeJSON)
	}

	return httpReq, nil
}
