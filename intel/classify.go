// Package intel turns raw competitor posts into classified, scored and
// aggregated dashboard activity.
package intel

import (
	"sort"
	"strings"

	"github.com/jsinelofficial/metamask-dashboard/config"
	"github.com/jsinelofficial/metamask-dashboard/model"
)

// keywordSet is one activity type and the lowercase keywords that select it
type keywordSet struct {
	kind     model.ActivityType
	keywords []string
}

// Classifier assigns an activity type to post text by keyword matching.
// Sets are checked in priority order and the first match wins.
type Classifier struct {
	sets []keywordSet
}

// NewClassifier builds a classifier from configured keyword sets.
// When no priority is given, partnership is checked before campaign and any
// other sets follow in name order.
func NewClassifier(cfg config.ClassifierConfig) *Classifier {
	priority := cfg.Priority
	if len(priority) == 0 {
		priority = defaultPriority(cfg.Keywords)
	}

	c := &Classifier{}
	for _, name := range priority {
		words, ok := cfg.Keywords[name]
		if !ok {
			continue
		}
		set := keywordSet{kind: model.ActivityType(strings.ToLower(name))}
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				set.keywords = append(set.keywords, w)
			}
		}
		c.sets = append(c.sets, set)
	}
	return c
}

// Classify returns the activity type of text. Text matching no set is content.
func (c *Classifier) Classify(text string) model.ActivityType {
	lower := strings.ToLower(text)
	for _, set := range c.sets {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.kind
			}
		}
	}
	return model.TypeContent
}

// defaultPriority orders the configured sets with the built-in priority first
func defaultPriority(keywords map[string][]string) []string {
	var priority []string
	known := make(map[string]bool)
	for _, name := range config.DefaultClassifier().Priority {
		known[name] = true
		if _, ok := keywords[name]; ok {
			priority = append(priority, name)
		}
	}

	var rest []string
	for name := range keywords {
		if !known[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(priority, rest...)
}
