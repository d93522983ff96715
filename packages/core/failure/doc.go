// Package failure defines the error taxonomy shared by every stage of a rest
// session.
//
// Every stage returns a *Error tagged with a Kind. The dispatcher prints the
// message in red followed by the usage text; no kind is ever retried.
package failure
