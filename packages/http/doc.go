// Package http sends an assembled request and normalizes the outcome.
//
// It wraps the standard library's http package with:
//   - Configurable timeouts
//   - Redirect handling
//   - TLS verification and proxy settings
//   - Response normalization: reason phrase, lower-cased headers, JSON
//     detection of the payload
//
// Every failure, including a non-2xx status unless WithAcceptAnyStatus is
// set, is returned as a single TransportError.
package http
