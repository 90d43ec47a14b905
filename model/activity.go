package model

import "time"

// ActivityType is the coarse subject classification of a post
type ActivityType string

const (
	TypePartnership ActivityType = "partnership"
	TypeCampaign    ActivityType = "campaign"
	TypeContent     ActivityType = "content"
)

// Impact is the coarse significance tier of a post
type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Activity is a RawPost enriched with classification at ingestion time.
// Type, Impact and RelativeAge are computed once and never revised.
type Activity struct {
	RawPost
	Competitor  string       `json:"competitor"`  // Owning competitor name
	Type        ActivityType `json:"type"`        // partnership, campaign or content
	Impact      Impact       `json:"impact"`      // low, medium or high
	RelativeAge string       `json:"relativeAge"` // e.g. "2 hours ago", not refreshed after ingestion
}

// CompetitorStats aggregates one competitor's activity set
type CompetitorStats struct {
	Competitor   string `json:"competitor"`
	Activities   int    `json:"activities"`   // Total activity count
	Engagement   int    `json:"engagement"`   // Likes + retweets (replies excluded)
	Partnerships int    `json:"partnerships"` // Activities typed partnership
	Campaigns    int    `json:"campaigns"`    // Activities typed campaign
	Content      int    `json:"content"`      // Activities typed content
}

// Alert is a high-priority notice derived from a high-impact activity
type Alert struct {
	Level      string `json:"level"` // "high"
	Competitor string `json:"competitor"`
	Message    string `json:"message"`
	ActivityID string `json:"activityId,omitempty"`
}

// Snapshot is the full dashboard state produced by one refresh
type Snapshot struct {
	Activities  []Activity        `json:"activities"`  // Sorted by CreatedAt, newest first
	Stats       []CompetitorStats `json:"stats"`       // One entry per configured competitor
	Alerts      []Alert           `json:"alerts"`
	Failures    map[string]string `json:"failures,omitempty"` // Competitor name -> fetch error
	Source      string            `json:"source"`             // "live" or "static"
	RefreshedAt time.Time         `json:"refreshedAt"`
}
