// Package cmd implements the rest CLI using Cobra.
//
// The single positional argument selects the command:
//   - get, post, put, patch, delete: prompt for a request, send it and print
//     the response
//   - help: show the usage guide
//
// Flags tune the HTTP client and the console; see rest --help.
package cmd
