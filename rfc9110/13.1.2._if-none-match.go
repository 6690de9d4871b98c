package rfc9110

// §  13.1.2.  If-None-Match
// §
// §     The "If-None-Match" header field makes the request method
// §     conditional on a recipient cache or origin server either not having
// §     any current representation of the target resource, when the field
// §     value is "*", or having a selected representation with an entity
// §     tag that does not match any of those listed in the field value.
// §
// §     A recipient server that has a current representation for the target
// §     resource [...] MUST evaluate the condition [...] as follows:
// §
// §     1.  If the field value is "*", the condition is false [...]
// §
// §     2.  If the field value is a list of entity tags, the condition is
// §         false if one of the listed tags matches the entity tag of the
// §         selected representation.
// §
// §     A recipient MUST use the weak comparison function when comparing
// §     entity tags for If-None-Match (Section 8.8.3.2), since weak entity
// §     tags can be used for cache validation even if there have been
// §     changes to the representation data.

// ifNoneMatchFails reports whether the If-None-Match condition is false,
// i.e. whether the client's entity tag matches the selected
// representation's and a 304 should be sent.
//
// Clients of this backend send back the single tag they received, so the
// field value is compared as one entity tag rather than parsed as a list.
func ifNoneMatchFails(fieldValue, etag string) bool {
	return etagWeakMatch(fieldValue, etag)
}
