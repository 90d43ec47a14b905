package intel

import (
	"time"

	"github.com/dustin/go-humanize"
)

// RelativeAge renders the time elapsed between created and now, e.g. "2 hours ago".
// The string is computed once at ingestion and is not refreshed afterwards.
func RelativeAge(created, now time.Time) string {
	if created.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(created, now, "ago", "from now")
}
