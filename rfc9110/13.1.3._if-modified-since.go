package rfc9110

import "time"

// §  13.1.3.  If-Modified-Since
// §
// §     The "If-Modified-Since" header field makes a GET or HEAD request
// §     method conditional on the selected representation's modification
// §     date being more recent than the date provided in the field value.
// §     Transfer of the selected representation's data is avoided if that
// §     data has not changed.
// §
// §       If-Modified-Since = HTTP-date
// §
// §     An example of the field is:
// §
// §       If-Modified-Since: Sat, 29 Oct 1994 19:43:31 GMT
// §
// §     A recipient MUST ignore If-Modified-Since if the request contains
// §     an If-None-Match header field; the condition in If-None-Match is
// §     considered to be a more accurate replacement [...]
// §
// §     A recipient MUST ignore the If-Modified-Since header field if the
// §     received field value is not a valid HTTP-date [...]

// ifModifiedSinceFails reports whether the If-Modified-Since condition is
// false, i.e. whether the representation has not changed since the
// client's date and a 304 should be sent.
//
// HTTP dates carry second resolution while modification times need not,
// so the comparison truncates modified to seconds. A field value at or
// after the truncated modification time means the client's copy is at
// least as fresh. An unparseable date makes the condition succeed, as if
// the header were absent.
func ifModifiedSinceFails(fieldValue string, modified time.Time) bool {
	date, err := HttpDate(fieldValue)
	if err != nil {
		return false
	}
	return !date.Before(modified.Truncate(time.Second))
}
