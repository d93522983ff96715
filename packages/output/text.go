package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/rest/packages/http"
)

// RenderText renders resp as an HTTP/1.1 message: status line, one line per
// header sorted by name, a blank line, then the body stringified with a
// one-space indent.
func RenderText(resp *http.Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\n", resp.StatusCode, resp.Status)

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, resp.Headers[name])
	}
	b.WriteString("\n")

	if resp.BodyIsJSON {
		b.WriteString(stringify(resp.Body, " "))
	} else {
		b.WriteString(quote(resp.BodyString()))
	}

	return b.String()
}
