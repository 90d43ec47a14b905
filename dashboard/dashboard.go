// Package dashboard refreshes competitor activity from a Source and keeps the
// latest snapshot for presentation.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/intel"
	"github.com/jsinelofficial/metamask-dashboard/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Dashboard holds the configured competitors and the most recent snapshot
type Dashboard struct {
	competitors []model.Competitor
	source      Source
	pipeline    *intel.Pipeline

	mu       sync.RWMutex
	snapshot *model.Snapshot
}

// New creates a dashboard. No data is loaded until the first Refresh.
func New(competitors []model.Competitor, source Source, pipeline *intel.Pipeline) *Dashboard {
	return &Dashboard{
		competitors: competitors,
		source:      source,
		pipeline:    pipeline,
	}
}

// Competitors returns the configured competitors in display order
func (d *Dashboard) Competitors() []model.Competitor {
	return d.competitors
}

// Refresh fetches every competitor concurrently, then classifies and aggregates
// the results in one pass and replaces the current snapshot. A failed competitor
// is logged and recorded but does not fail the refresh. Overlapping refreshes
// are not cancelled; whichever finishes last wins.
func (d *Dashboard) Refresh(ctx context.Context) model.Snapshot {
	start := time.Now()
	results := d.fetchAll(ctx)

	snap := d.pipeline.Ingest(results)
	snap.Source = d.source.Name()

	d.mu.Lock()
	d.snapshot = &snap
	d.mu.Unlock()

	log.Info().
		Str("source", snap.Source).
		Int("activities", len(snap.Activities)).
		Int("failures", len(snap.Failures)).
		Dur("duration", time.Since(start)).
		Msg("Dashboard refreshed")

	return snap
}

// fetchAll fans out one fetch per competitor. Each goroutine owns one slot of
// the result slice, so no locking is needed.
func (d *Dashboard) fetchAll(ctx context.Context) []intel.FetchResult {
	results := make([]intel.FetchResult, len(d.competitors))

	var g errgroup.Group
	for i, comp := range d.competitors {
		i, comp := i, comp
		g.Go(func() error {
			posts, err := d.source.Fetch(ctx, comp)
			if err != nil {
				log.Warn().
					Err(err).
					Str("competitor", comp.Name).
					Str("handle", comp.Handle).
					Msg("Failed to fetch competitor activity, skipping")
			}
			results[i] = intel.FetchResult{Competitor: comp, Posts: posts, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Snapshot returns the current snapshot, refreshing first if none exists yet
func (d *Dashboard) Snapshot(ctx context.Context) model.Snapshot {
	d.mu.RLock()
	snap := d.snapshot
	d.mu.RUnlock()

	if snap != nil {
		return *snap
	}
	return d.Refresh(ctx)
}
