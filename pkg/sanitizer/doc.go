// Package sanitizer normalizes free-text input before it reaches validation
// and storage. Functions are idempotent and never fail; blank input comes
// back as an empty string.
package sanitizer
