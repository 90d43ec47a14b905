package intel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/model"
)

// All disables a competitor, type or range filter
const All = "all"

var (
	ErrInvalidRange = errors.New("range must be one of 7d, 30d, 90d or all")
	ErrUnknownType  = errors.New("type must be one of partnership, campaign, content or all")
)

// ranges are the look-back windows offered by the dashboard
var ranges = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
}

// Criteria is a conjunctive filter over activities. Empty fields match everything.
type Criteria struct {
	Competitor string    // Exact competitor name, or "all"
	Type       string    // Exact activity type, or "all"
	Query      string    // Case-insensitive substring of the post text
	Since      time.Time // Drop activities created before this instant
}

// SinceFor resolves a range name like "30d" to the earliest included instant.
// "all" and "" resolve to the zero time.
func SinceFor(rangeName string, now time.Time) (time.Time, error) {
	if rangeName == "" || rangeName == All {
		return time.Time{}, nil
	}
	d, ok := ranges[rangeName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRange, rangeName)
	}
	return now.Add(-d), nil
}

// ParseType validates an activity type filter value
func ParseType(s string) (string, error) {
	switch model.ActivityType(s) {
	case "", All, model.TypePartnership, model.TypeCampaign, model.TypeContent:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Filter returns the activities matching c, preserving order.
// The input slice is never modified.
func Filter(activities []model.Activity, c Criteria) []model.Activity {
	query := strings.ToLower(c.Query)
	out := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		if c.Competitor != "" && c.Competitor != All && a.Competitor != c.Competitor {
			continue
		}
		if c.Type != "" && c.Type != All && string(a.Type) != c.Type {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(a.Text), query) {
			continue
		}
		if !c.Since.IsZero() && a.CreatedAt.Before(c.Since) {
			continue
		}
		out = append(out, a)
	}
	return out
}
