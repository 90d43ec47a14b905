package intel

import "github.com/jsinelofficial/metamask-dashboard/model"

// Impact thresholds are exclusive lower bounds
const (
	highImpactScore   = 1000
	mediumImpactScore = 200
)

// Score is the weighted engagement of a post: likes + 2*retweets + replies.
// Views are not weighted.
func Score(p model.RawPost) int {
	return p.LikeCount + 2*p.RetweetCount + p.ReplyCount
}

// ImpactOf maps an engagement score to an impact tier
func ImpactOf(score int) model.Impact {
	switch {
	case score > highImpactScore:
		return model.ImpactHigh
	case score > mediumImpactScore:
		return model.ImpactMedium
	default:
		return model.ImpactLow
	}
}
