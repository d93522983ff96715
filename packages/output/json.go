package output

import (
	"bytes"
	"encoding/json"

	"github.com/abdul-hamid-achik/rest/packages/http"
	"github.com/tidwall/pretty"
)

// JSONResponse is the structured echo of a response
type JSONResponse struct {
	Status     string            `json:"status"`
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       json.RawMessage   `json:"body"`
}

// RenderJSON renders resp as an indented JSON object. Header names are
// sorted by encoding/json. With colorize the result carries ANSI colors.
func RenderJSON(resp *http.Response, colorize bool) (string, error) {
	out, err := marshal(JSONResponse{
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       bodyJSON(resp),
	}, "  ")
	if err != nil {
		return "", err
	}

	if colorize {
		out = pretty.Color(out, nil)
	}
	return string(out), nil
}

// bodyJSON returns the body as a compact, normalized JSON document;
// non-JSON payloads become a JSON string.
func bodyJSON(resp *http.Response) json.RawMessage {
	if resp.BodyIsJSON {
		return json.RawMessage(stringify(resp.Body, ""))
	}
	return json.RawMessage(quote(resp.BodyString()))
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
