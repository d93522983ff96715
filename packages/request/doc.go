// Package request assembles a request Descriptor from the answers to a fixed
// sequence of prompts.
//
// The sequence is URL, headers, and for post, put and patch a body. Headers
// and body are typed as JSON; a blank answer means {}. Answers may contain
// {{fn()}} placeholders from package builtin. Any invalid answer aborts the
// sequence before the next prompt.
package request
