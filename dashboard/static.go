package dashboard

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/model"

	"gopkg.in/yaml.v3"
)

//go:embed static_data.yaml
var staticDataYAML []byte

// staticPost is one mock post. Age is an offset back from load time.
type staticPost struct {
	ID       string `yaml:"id"`
	Text     string `yaml:"text"`
	URL      string `yaml:"url"`
	Age      string `yaml:"age"`
	Likes    int    `yaml:"likes"`
	Retweets int    `yaml:"retweets"`
	Replies  int    `yaml:"replies"`
	Views    int    `yaml:"views"`
}

// StaticSource serves an embedded mock dataset keyed by competitor name
type StaticSource struct {
	posts map[string][]model.RawPost
}

// NewStaticSource parses the embedded dataset, anchoring ages at now
func NewStaticSource(now time.Time) (*StaticSource, error) {
	return ParseStaticSource(staticDataYAML, now)
}

// ParseStaticSource parses a YAML dataset of competitor name -> posts
func ParseStaticSource(data []byte, now time.Time) (*StaticSource, error) {
	var raw map[string][]staticPost
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse static dataset: %w", err)
	}

	s := &StaticSource{posts: make(map[string][]model.RawPost, len(raw))}
	for name, items := range raw {
		for _, it := range items {
			age, err := time.ParseDuration(it.Age)
			if err != nil {
				return nil, fmt.Errorf("static post %s: invalid age %q: %w", it.ID, it.Age, err)
			}
			s.posts[name] = append(s.posts[name], model.RawPost{
				ID:           it.ID,
				Text:         it.Text,
				URL:          it.URL,
				CreatedAt:    now.Add(-age),
				LikeCount:    it.Likes,
				RetweetCount: it.Retweets,
				ReplyCount:   it.Replies,
				ViewCount:    it.Views,
			})
		}
	}
	return s, nil
}

func (s *StaticSource) Name() string { return "static" }

// Fetch returns a copy of the competitor's mock posts. Unknown competitors have none.
func (s *StaticSource) Fetch(ctx context.Context, competitor model.Competitor) ([]model.RawPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	posts := s.posts[competitor.Name]
	out := make([]model.RawPost, len(posts))
	copy(out, posts)
	return out, nil
}
