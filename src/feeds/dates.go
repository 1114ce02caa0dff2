package feeds

import (
	"strings"
	"time"

	"git.wavelength.fm/wvl/wvl/src/oops"
)

// Date formats seen in real-world feeds, most common first. RSS nominally
// requires RFC 822 dates but nobody agrees on the details.
var pubDateFormats = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func ParsePubDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, oops.New(nil, "empty publication date")
	}
	for _, format := range pubDateFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, oops.New(nil, "unrecognized publication date %q", raw)
}
