// Package command parses the single command-line argument of rest into a
// Command and dispatches it.
//
// Commands:
//   - get, delete: prompt for URL and headers, then send
//   - post, put, patch: prompt for URL, headers and body, then send
//   - help: print the usage text
package command
