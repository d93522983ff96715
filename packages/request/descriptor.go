package request

import (
	"encoding/json"

	"github.com/abdul-hamid-achik/rest/packages/command"
)

// Descriptor is a fully validated request, ready for the transport.
type Descriptor struct {
	Method  command.Command
	URL     string
	Headers map[string]string
	// Body is nil for commands without a body.
	Body json.RawMessage
}

func (d *Descriptor) HasBody() bool {
	return d.Body != nil
}
