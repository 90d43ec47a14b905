package intel

import "github.com/jsinelofficial/metamask-dashboard/model"

// Aggregate computes stats for every competitor, in the given order, by
// re-scanning the full activity set. Competitors without activity get zero stats.
func Aggregate(competitors []model.Competitor, activities []model.Activity) []model.CompetitorStats {
	index := make(map[string]int, len(competitors))
	stats := make([]model.CompetitorStats, len(competitors))
	for i, comp := range competitors {
		index[comp.Name] = i
		stats[i].Competitor = comp.Name
	}

	for _, a := range activities {
		i, ok := index[a.Competitor]
		if !ok {
			continue
		}
		s := &stats[i]
		s.Activities++
		// Replies are left out here even though Score counts them.
		s.Engagement += a.LikeCount + a.RetweetCount
		switch a.Type {
		case model.TypePartnership:
			s.Partnerships++
		case model.TypeCampaign:
			s.Campaigns++
		default:
			s.Content++
		}
	}

	return stats
}
