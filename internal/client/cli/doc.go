// Package cli implements the interactive cvdesk shell: a read-eval-print
// loop whose commands mirror the product's screens (upload, candidate
// directory, ask-the-assistant, dashboard). Commands talk to the backend
// through the api gateway and consult the session manager before running
// anything protected.
package cli
