// Package rfc9110 implements the subset of HTTP semantics (RFC 9110) a
// file-serving backend needs: conditional request evaluation against a
// single selected representation, entity-tag comparison, and HTTP-date
// handling.
//
// Evaluation is purely local. Malformed conditional headers never produce
// errors; they are resolved into a decision as the standard mandates.
package rfc9110

import (
	"net/http"
	"time"
)

// Decision is the outcome of evaluating a request against the selected
// representation's validators.
type Decision int

const (
	// Serve the full representation (200). For HEAD this still means
	// status 200, just without the body.
	Serve Decision = iota
	// NotModified means the client's stored copy is current (304).
	NotModified
	// MethodNotAllowed means the method is neither GET nor HEAD (405).
	MethodNotAllowed
)

// §  13.2.2.  Precedence of Preconditions
// §
// §     [...] a recipient cache or origin server MUST evaluate received
// §     request preconditions after it has successfully performed its
// §     normal request checks and just before it would process the request
// §     content (if any) or perform the action associated with the request
// §     method. [...]
// §
// §     2.  When recipient is the origin server, If-Match is not present,
// §         and If-Unmodified-Since is present, [...]
// §
// §     3.  When If-None-Match is present, evaluate the If-None-Match
// §         precondition:
// §
// §         *  if true, continue to step 5
// §
// §         *  if false for GET/HEAD, respond 304 (Not Modified)
// §
// §     4.  When the method is GET or HEAD, If-None-Match is not present,
// §         and If-Modified-Since is present, evaluate the
// §         If-Modified-Since precondition:
// §
// §         *  if true, continue to step 5
// §
// §         *  if false, respond 304 (Not Modified)

// Evaluate decides how to answer a request for the representation
// identified by etag and modified. Absent conditional headers are passed
// as empty strings.
//
// Methods other than GET and HEAD are rejected outright, without looking
// at the conditional headers. If-None-Match takes precedence over
// If-Modified-Since: when present, If-Modified-Since is never consulted,
// matching or not.
func Evaluate(method, ifNoneMatch, ifModifiedSince, etag string, modified time.Time) Decision {
	if method != http.MethodGet && method != http.MethodHead {
		return MethodNotAllowed
	}
	if ifNoneMatch != "" {
		if ifNoneMatchFails(ifNoneMatch, etag) {
			return NotModified
		}
		return Serve
	}
	if ifModifiedSince != "" && ifModifiedSinceFails(ifModifiedSince, modified) {
		return NotModified
	}
	return Serve
}
