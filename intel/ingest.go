package intel

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsinelofficial/metamask-dashboard/model"
)

const defaultExcerptLen = 80

// FetchResult is the outcome of fetching one competitor's posts.
// Exactly one of Posts or Err is meaningful.
type FetchResult struct {
	Competitor model.Competitor
	Posts      []model.RawPost
	Err        error
}

// Pipeline classifies, scores and aggregates fetch results into a snapshot
type Pipeline struct {
	classifier *Classifier
	excerptLen int
	now        func() time.Time
}

// NewPipeline creates a pipeline. A nil clock uses time.Now.
func NewPipeline(classifier *Classifier, excerptLen int, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	if excerptLen <= 0 {
		excerptLen = defaultExcerptLen
	}
	return &Pipeline{
		classifier: classifier,
		excerptLen: excerptLen,
		now:        now,
	}
}

// Classify enriches a single post. It is a pure function of the post and the clock.
func (p *Pipeline) Classify(competitor string, post model.RawPost, now time.Time) model.Activity {
	return model.Activity{
		RawPost:     post,
		Competitor:  competitor,
		Type:        p.classifier.Classify(post.Text),
		Impact:      ImpactOf(Score(post)),
		RelativeAge: RelativeAge(post.CreatedAt, now),
	}
}

// Ingest builds a complete snapshot from fan-in results. Failed fetches are
// recorded in Failures and contribute no activity.
func (p *Pipeline) Ingest(results []FetchResult) model.Snapshot {
	now := p.now()

	snap := model.Snapshot{
		Activities:  []model.Activity{},
		Alerts:      []model.Alert{},
		RefreshedAt: now,
	}

	competitors := make([]model.Competitor, 0, len(results))
	for _, r := range results {
		competitors = append(competitors, r.Competitor)
		if r.Err != nil {
			if snap.Failures == nil {
				snap.Failures = make(map[string]string)
			}
			snap.Failures[r.Competitor.Name] = r.Err.Error()
			continue
		}
		for _, post := range r.Posts {
			snap.Activities = append(snap.Activities, p.Classify(r.Competitor.Name, post, now))
		}
	}

	SortByRecency(snap.Activities)
	snap.Stats = Aggregate(competitors, snap.Activities)
	snap.Alerts = p.Alerts(snap.Activities)

	return snap
}

// SortByRecency orders activities newest first. Ties keep their input order.
func SortByRecency(activities []model.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
}

// Alerts derives one high-priority alert per high-impact activity
func (p *Pipeline) Alerts(activities []model.Activity) []model.Alert {
	alerts := []model.Alert{}
	for _, a := range activities {
		if a.Impact != model.ImpactHigh {
			continue
		}
		alerts = append(alerts, model.Alert{
			Level:      string(model.ImpactHigh),
			Competitor: a.Competitor,
			Message:    a.Competitor + " " + string(a.Type) + ": " + excerpt(a.Text, p.excerptLen),
			ActivityID: a.ID,
		})
	}
	return alerts
}

func excerpt(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:max])) + "…"
}
