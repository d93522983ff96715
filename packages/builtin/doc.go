// Package builtin provides dynamic values that can be typed into any prompt.
//
// Available functions:
//   - uuid(): Generate a random UUID v4
//   - now(): Current UTC time in RFC 3339 format
//   - timestamp(): Current Unix timestamp
//   - timestampMs(): Current Unix timestamp in milliseconds
//   - date(layout): Current UTC date, 2006-01-02 by default
//   - random(min, max): Random integer in range
//   - randomString(length): Random alphanumeric string
//   - base64(value): Base64 encode a string
//   - urlEncode(value): Query-escape a string
//
// Functions are invoked using the {{functionName(args)}} syntax, for example
//
//	{"id":"{{uuid()}}","at":{{timestamp()}}}
package builtin
