// Package errors provides CLI exit-code handling on top of
// cockroachdb/errors, plus passthroughs so callers need a single errors
// import.
package errors
