package analytics

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts are tried in order before the free-form fallback. The
// export's native "01 Jan 2024" format comes first so ambiguous numeric
// dates never reach the generic parser.
var dateLayouts = []string{
	"2 Jan 2006",
	"2006-01-02",
}

// daysPerMonth is the month length used by all recency thresholds.
const daysPerMonth = 30

// ParseDate parses a loosely formatted export date into a UTC instant.
// ok is false when no format matches; it never panics.
func ParseDate(raw string) (t time.Time, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), true
		}
	}

	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

// day is the length of one calendar day in UTC.
const day = 24 * time.Hour

// elapsedDays returns the whole calendar days from t to now, both taken
// as UTC dates. Export dates carry no time of day, so the clock time of
// now must not push a date across a threshold.
func elapsedDays(t, now time.Time) int {
	from := t.UTC().Truncate(day)
	to := now.UTC().Truncate(day)
	return int(to.Sub(from) / day)
}
