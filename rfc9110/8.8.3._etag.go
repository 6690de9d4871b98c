package rfc9110

import "strings"

// §  8.8.3.  ETag
// §
// §     The "ETag" field in a response provides the current entity tag for
// §     the selected representation, as determined at the conclusion of
// §     handling the request.  An entity tag is an opaque validator for
// §     differentiating between multiple representations of the same
// §     resource [...]
// §
// §       ETag       = entity-tag
// §
// §       entity-tag = [ weak ] opaque-tag
// §       weak       = %s"W/"
// §       opaque-tag = DQUOTE *etagc DQUOTE
// §       etagc      = %x21 / %x23-7E / obs-text
// §                  ; VCHAR except double quotes, plus obs-text

const weakPrefix = "W/"

// §  8.8.3.2.  Comparison
// §
// §     There are two entity tag comparison functions, depending on whether
// §     or not the comparison context allows the use of weak validators:
// §
// §     Strong comparison:  two entity tags are equivalent if both are not
// §        weak and their opaque-tags match character-by-character.
// §
// §     Weak comparison:  two entity tags are equivalent if their opaque-
// §        tags match character-by-character, regardless of either or both
// §        being tagged as "weak".

// etagWeakMatch compares a client-supplied entity tag against a strong
// entity tag generated by this server, using weak comparison. Since
// generated tags are never weak, only the client tag can carry the prefix.
func etagWeakMatch(clientTag, etag string) bool {
	if clientTag == etag {
		return true
	}
	return strings.HasPrefix(clientTag, weakPrefix) &&
		strings.TrimPrefix(clientTag, weakPrefix) == etag
}
