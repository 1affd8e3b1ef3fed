// Package formatter renders the aggregate trip reports for output.
//
// This package is organized into:
// - report.go: the report payload and builder dispatch
// - json.go: JSON serialization
// - text.go: aligned plain-text rendering
package formatter
