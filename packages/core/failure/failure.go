package failure

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	// KindArgument covers a missing, repeated or unknown command
	KindArgument Kind = iota + 1
	KindMissingURL
	KindInvalidHeaderSyntax
	KindInvalidBodySyntax
	// KindTransport covers everything the HTTP client surfaces
	KindTransport
	KindPromptIO
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "ArgumentError"
	case KindMissingURL:
		return "MissingURL"
	case KindInvalidHeaderSyntax:
		return "InvalidHeaderSyntax"
	case KindInvalidBodySyntax:
		return "InvalidBodySyntax"
	case KindTransport:
		return "TransportError"
	case KindPromptIO:
		return "PromptIOError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SyntaxExample is shown with header and body syntax errors
const SyntaxExample = `{"user":"Joe","token":"blahblahblah"}`

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind. A nil err yields nil.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, Err: errors.WithStack(err)}
}

// KindOf reports the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
