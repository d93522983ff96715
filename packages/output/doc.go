// Package output prints everything the user sees: colored errors, the usage
// text and the rendered response.
//
// Supported response formats:
//   - json (default): the response as an indented JSON object with status,
//     statusCode, headers and body
//   - text: an HTTP/1.1 style message with the body indented by one space
package output
