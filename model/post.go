package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// twitterTimeLayout is the createdAt layout used by the Twitter data API
const twitterTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// RawPost is a single post as returned by the upstream tweet API.
// All counters are optional and default to zero.
type RawPost struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	URL          string    `json:"url,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"likeCount"`
	RetweetCount int       `json:"retweetCount"`
	ReplyCount   int       `json:"replyCount"`
	ViewCount    int       `json:"viewCount"`
}

// wirePost mirrors RawPost with the timestamp left as the upstream string
type wirePost struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	URL          string `json:"url"`
	CreatedAt    string `json:"createdAt"`
	LikeCount    int    `json:"likeCount"`
	RetweetCount int    `json:"retweetCount"`
	ReplyCount   int    `json:"replyCount"`
	ViewCount    int    `json:"viewCount"`
}

// tweetsEnvelope is the body returned by the last_tweets endpoint.
// Depending on the API version posts are either top-level or nested under data.
type tweetsEnvelope struct {
	Tweets []wirePost `json:"tweets"`
	Data   *struct {
		Tweets []wirePost `json:"tweets"`
	} `json:"data"`
}

// DecodeTweets parses an upstream last_tweets body into RawPosts.
// Only a malformed body is an error; a bad createdAt leaves that post undated.
func DecodeTweets(body []byte) ([]RawPost, error) {
	var env tweetsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode tweets: %w", err)
	}

	wire := env.Tweets
	if len(wire) == 0 && env.Data != nil {
		wire = env.Data.Tweets
	}

	posts := make([]RawPost, 0, len(wire))
	for _, w := range wire {
		post := RawPost{
			ID:           w.ID,
			Text:         w.Text,
			URL:          w.URL,
			LikeCount:    w.LikeCount,
			RetweetCount: w.RetweetCount,
			ReplyCount:   w.ReplyCount,
			ViewCount:    w.ViewCount,
		}
		if w.CreatedAt != "" {
			t, err := ParsePostTime(w.CreatedAt)
			if err != nil {
				// Keep the post; it sorts last and shows an unknown age.
				log.Warn().Err(err).Str("post_id", w.ID).Msg("Unparseable post timestamp")
			}
			post.CreatedAt = t
		}
		posts = append(posts, post)
	}

	return posts, nil
}

// ParsePostTime parses a post timestamp in the Twitter layout or RFC3339
func ParsePostTime(s string) (time.Time, error) {
	for _, layout := range []string{twitterTimeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized post timestamp %q", s)
}
