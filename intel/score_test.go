package intel

import (
	"testing"

	"github.com/jsinelofficial/metamask-dashboard/model"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	p := model.RawPost{LikeCount: 100, RetweetCount: 10, ReplyCount: 5, ViewCount: 100000}
	assert.Equal(t, 125, Score(p))
	assert.Equal(t, 0, Score(model.RawPost{}))
}

func TestImpactOf_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.Impact
	}{
		{0, model.ImpactLow},
		{200, model.ImpactLow},
		{201, model.ImpactMedium},
		{1000, model.ImpactMedium},
		{1001, model.ImpactHigh},
		{50000, model.ImpactHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ImpactOf(tt.score), "score %d", tt.score)
	}
}

func TestImpactOf_FromCounters(t *testing.T) {
	// 400 likes + 2*300 retweets = 1000, exactly on the high bound
	p := model.RawPost{LikeCount: 400, RetweetCount: 300}
	assert.Equal(t, model.ImpactMedium, ImpactOf(Score(p)))

	p.ReplyCount = 1
	assert.Equal(t, model.ImpactHigh, ImpactOf(Score(p)))
}
