package rfc9110

import (
	"fmt"
	"strings"
	"time"
)

// §  5.6.7.  Date/Time Formats
// §
// §     Prior to 1995, there were three different formats commonly used by
// §     servers to communicate timestamps.  For compatibility with old
// §     implementations, all three are defined here.  The preferred format
// §     is a fixed-length and single-zone subset of the date and time
// §     specification used by the Internet Message Format [RFC5322].
// §
// §       HTTP-date    = IMF-fixdate / obs-date
// §
// §     An example of the preferred format is
// §
// §       Sun, 06 Nov 1994 08:49:37 GMT    ; IMF-fixdate
// §
// §     Examples of the two obsolete formats are
// §
// §       Sunday, 06-Nov-94 08:49:37 GMT   ; obsolete RFC 850 format
// §       Sun Nov  6 08:49:37 1994         ; ANSI C's asctime() format
// §
// §     A recipient that parses a timestamp value in an HTTP field MUST
// §     accept all three HTTP-date formats.  When a sender generates a
// §     field that contains one or more timestamps defined as HTTP-date,
// §     the sender MUST generate those timestamps in the IMF-fixdate
// §     format.
const (
	imfDateLayout = "Mon, 02 Jan 2006 15:04:05 MST"
	// generation layout with the zone fixed to GMT, for UTC times only
	imfFixdateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// HttpDate parses an HTTP-date field value in any of the three formats a
// recipient must accept.
func HttpDate(dateStr string) (time.Time, error) {
	if date, err := imfDate(dateStr); err == nil {
		return date, nil
	}
	return obsDate(dateStr)
}

// ToHttpDate formats a timestamp as an IMF-fixdate string in GMT, the
// only format a sender may generate.
func ToHttpDate(date time.Time) string {
	return date.UTC().Format(imfFixdateLayout)
}

func imfDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(imfDateLayout, normalizeDateStr(dateStr))
	if err != nil {
		return date, err
	}
	// §     An HTTP-date value represents time as an instance of
	// §     Coordinated Universal Time (UTC).  The first two formats
	// §     indicate UTC by the three-letter abbreviation for Greenwich
	// §     Mean Time, "GMT" [...]
	if date.Location().String() != "GMT" {
		return date, fmt.Errorf("date %s is not in GMT time, but %s", date, date.Location())
	}
	return date, nil
}

// §     Obsolete formats:
// §
// §       obs-date     = rfc850-date / asctime-date
func obsDate(dateStr string) (time.Time, error) {
	str := normalizeDateStr(dateStr)
	if date, err := time.Parse(time.RFC850, str); err == nil {
		return date, nil
	}
	return time.Parse(time.ANSIC, str)
}

// §     HTTP-date is case sensitive.  Note that Section 4.2 of [CACHING]
// §     relaxes this for cache recipients.
func normalizeDateStr(dateStr string) string {
	return strings.ToUpper(dateStr)
}
