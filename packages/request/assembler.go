package request

import (
	"encoding/json"
	"fmt"

	"github.com/abdul-hamid-achik/rest/packages/builtin"
	"github.com/abdul-hamid-achik/rest/packages/command"
	"github.com/abdul-hamid-achik/rest/packages/core/failure"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// EmptyObject is used for blank header and body answers
const EmptyObject = "{}"

// headerSchema accepts a flat object; values are sent in their string form.
const headerSchema = `{
  "type": "object",
  "additionalProperties": {"type": ["string", "number", "boolean", "null"]}
}`

var headerSchemaLoader = gojsonschema.NewStringLoader(headerSchema)

// Prompter asks a single question and returns the trimmed answer.
type Prompter interface {
	Prompt(question string) (string, error)
}

type Assembler struct {
	prompter Prompter
	funcs    *builtin.Registry
	log      logrus.FieldLogger
}

type AssemblerOption func(*Assembler)

func WithLogger(log logrus.FieldLogger) AssemblerOption {
	return func(a *Assembler) {
		a.log = log
	}
}

// WithRegistry replaces the placeholder registry.
func WithRegistry(r *builtin.Registry) AssemblerOption {
	return func(a *Assembler) {
		a.funcs = r
	}
}

func NewAssembler(p Prompter, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		prompter: p,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.funcs == nil {
		a.funcs = builtin.NewRegistry()
	}
	a.funcs.SetWarnFunc(func(format string, args ...any) {
		a.log.Warnf(format, args...)
	})
	return a
}

// Assemble runs the prompt sequence for method.
func (a *Assembler) Assemble(method command.Command) (*Descriptor, error) {
	if !method.IsRequest() {
		return nil, failure.Newf(failure.KindArgument, "command %q does not send a request", method.String())
	}

	blue := color.New(color.FgBlue).SprintFunc()

	url, err := a.ask(blue("Type in url: "))
	if err != nil {
		return nil, err
	}
	if url == "" {
		return nil, failure.New(failure.KindMissingURL, "URL is required argument")
	}

	rawHeaders, err := a.ask(blue("Type in headers: \n"))
	if err != nil {
		return nil, err
	}
	headers, err := ParseHeaders(rawHeaders)
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Method:  method,
		URL:     url,
		Headers: headers,
	}

	if method.HasBody() {
		rawBody, err := a.ask(blue("Type in body: \n"))
		if err != nil {
			return nil, err
		}
		body, err := ParseBody(rawBody)
		if err != nil {
			return nil, err
		}
		d.Body = body
	}

	a.log.WithFields(logrus.Fields{
		"method":  method.Method(),
		"url":     d.URL,
		"headers": len(d.Headers),
		"body":    d.HasBody(),
	}).Debug("request assembled")

	return d, nil
}

func (a *Assembler) ask(question string) (string, error) {
	answer, err := a.prompter.Prompt(question)
	if err != nil {
		return "", err
	}
	return a.funcs.Expand(answer), nil
}

// ParseHeaders parses a JSON object of header values. Blank input and a bare
// null yield an empty map. null values are dropped.
func ParseHeaders(raw string) (map[string]string, error) {
	if raw == "" {
		raw = EmptyObject
	}
	if !gjson.Valid(raw) {
		return nil, headerSyntaxError("")
	}
	if gjson.Parse(raw).Type == gjson.Null {
		return map[string]string{}, nil
	}

	result, err := gojsonschema.Validate(headerSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, headerSyntaxError(err.Error())
	}
	if !result.Valid() {
		return nil, headerSyntaxError(result.Errors()[0].String())
	}

	headers := make(map[string]string)
	gjson.Parse(raw).ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Null {
			headers[key.String()] = value.String()
		}
		return true
	})
	return headers, nil
}

// ParseBody validates a JSON body. Blank input yields {}.
func ParseBody(raw string) (json.RawMessage, error) {
	if raw == "" {
		raw = EmptyObject
	}
	if !gjson.Valid(raw) {
		return nil, failure.Newf(failure.KindInvalidBodySyntax,
			"Body syntax is invalid.\nSyntax example:\n\n%s", failure.SyntaxExample)
	}
	return json.RawMessage(raw), nil
}

func headerSyntaxError(detail string) error {
	if detail != "" {
		detail = fmt.Sprintf(" (%s)", detail)
	}
	return failure.Newf(failure.KindInvalidHeaderSyntax,
		"Header syntax is invalid%s.\nSyntax example:\n\n%s", detail, failure.SyntaxExample)
}
