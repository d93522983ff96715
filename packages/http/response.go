package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Response is the normalized result of a successful exchange.
type Response struct {
	StatusCode int
	// Status is the reason phrase, without the code
	Status  string
	Headers map[string]string
	Body    []byte
	// BodyIsJSON is set when Body holds a valid JSON document
	BodyIsJSON bool
	Duration   time.Duration
}

// NewResponse builds a Response and classifies its body.
func NewResponse(statusCode int, status string, headers map[string]string, body []byte) *Response {
	if headers == nil {
		headers = make(map[string]string)
	}
	return &Response{
		StatusCode: statusCode,
		Status:     status,
		Headers:    headers,
		Body:       body,
		BodyIsJSON: len(body) > 0 && gjson.ValidBytes(body),
	}
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

// reasonPhrase strips the numeric code from a status line such as "200 OK".
func reasonPhrase(code int, status string) string {
	return strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(code)))
}
