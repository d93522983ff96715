// Package session runs one request from prompt to printed response.
//
// A session is a fixed sequence of stages: assemble the request, send it,
// render the response. Each stage starts only after the previous one
// succeeded; the first error ends the session and nothing of the later
// stages is printed.
package session
