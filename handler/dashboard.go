package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/jsinelofficial/metamask-dashboard/intel"
	"github.com/jsinelofficial/metamask-dashboard/model"

	"github.com/rs/zerolog/log"
)

//go:embed dashboard.html
var dashboardFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").Funcs(template.FuncMap{
		"impactClass": impactClass,
		"typeIcon":    typeIcon,
	}).ParseFS(dashboardFS, "dashboard.html"),
)

// Snapshotter is the dashboard state the handlers read and refresh
type Snapshotter interface {
	Snapshot(ctx context.Context) model.Snapshot
	Refresh(ctx context.Context) model.Snapshot
	Competitors() []model.Competitor
}

// DashboardHandler serves the dashboard page and its JSON API
type DashboardHandler struct {
	dash Snapshotter
	now  func() time.Time
}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler(dash Snapshotter) *DashboardHandler {
	return &DashboardHandler{dash: dash, now: time.Now}
}

// FilterValues echoes the active filters back to the page
type FilterValues struct {
	Competitor string `json:"competitor"`
	Type       string `json:"type"`
	Query      string `json:"q"`
	Range      string `json:"range"`
}

// competitorCard pairs a competitor with its stats for the header row
type competitorCard struct {
	model.Competitor
	Stats    model.CompetitorStats
	Selected bool
	Failure  string
}

type pageData struct {
	Cards       []competitorCard
	Activities  []model.Activity
	Alerts      []model.Alert
	Icons       map[string]string
	Filter      FilterValues
	Source      string
	RefreshedAt string
}

// ActivityResponse is the body of GET /api/activity
type ActivityResponse struct {
	Activities  []model.Activity `json:"activities"`
	Count       int              `json:"count"`
	Filter      FilterValues     `json:"filter"`
	RefreshedAt time.Time        `json:"refreshedAt"`
}

// StatsResponse is the body of GET /api/stats
type StatsResponse struct {
	Stats       []model.CompetitorStats `json:"stats"`
	Failures    map[string]string       `json:"failures,omitempty"`
	RefreshedAt time.Time               `json:"refreshedAt"`
}

// RefreshResponse is the body of POST /api/refresh
type RefreshResponse struct {
	Activities  int               `json:"activities"`
	Alerts      int               `json:"alerts"`
	Failures    map[string]string `json:"failures,omitempty"`
	Source      string            `json:"source"`
	RefreshedAt time.Time         `json:"refreshedAt"`
}

// parseFilter reads competitor, type, q and range from the query string
func (h *DashboardHandler) parseFilter(r *http.Request) (intel.Criteria, FilterValues, error) {
	q := r.URL.Query()
	fv := FilterValues{
		Competitor: q.Get("competitor"),
		Type:       q.Get("type"),
		Query:      q.Get("q"),
		Range:      q.Get("range"),
	}

	if _, err := intel.ParseType(fv.Type); err != nil {
		return intel.Criteria{}, fv, err
	}
	since, err := intel.SinceFor(fv.Range, h.now())
	if err != nil {
		return intel.Criteria{}, fv, err
	}

	return intel.Criteria{
		Competitor: fv.Competitor,
		Type:       fv.Type,
		Query:      fv.Query,
		Since:      since,
	}, fv, nil
}

// ServePage handles GET /
func (h *DashboardHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	criteria, fv, err := h.parseFilter(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	snap := h.dash.Snapshot(r.Context())

	data := pageData{
		Activities:  intel.Filter(snap.Activities, criteria),
		Alerts:      snap.Alerts,
		Icons:       make(map[string]string),
		Filter:      fv,
		Source:      snap.Source,
		RefreshedAt: snap.RefreshedAt.Format(time.RFC1123),
	}

	stats := make(map[string]model.CompetitorStats, len(snap.Stats))
	for _, s := range snap.Stats {
		stats[s.Competitor] = s
	}
	for _, comp := range h.dash.Competitors() {
		data.Icons[comp.Name] = comp.Icon
		data.Cards = append(data.Cards, competitorCard{
			Competitor: comp,
			Stats:      stats[comp.Name],
			Selected:   fv.Competitor == comp.Name,
			Failure:    snap.Failures[comp.Name],
		})
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("Failed to render dashboard")
		SendJSONError(w, http.StatusInternalServerError, ErrInternal, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Msg("Failed to write dashboard response")
	}
}

// ListActivity handles GET /api/activity
func (h *DashboardHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	criteria, fv, err := h.parseFilter(r)
	if err != nil {
		SendJSONError(w, http.StatusBadRequest, err, "Invalid filter")
		return
	}

	snap := h.dash.Snapshot(r.Context())
	activities := intel.Filter(snap.Activities, criteria)

	SendJSONSuccess(w, http.StatusOK, ActivityResponse{
		Activities:  activities,
		Count:       len(activities),
		Filter:      fv,
		RefreshedAt: snap.RefreshedAt,
	})
}

// GetStats handles GET /api/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snap := h.dash.Snapshot(r.Context())

	SendJSONSuccess(w, http.StatusOK, StatsResponse{
		Stats:       snap.Stats,
		Failures:    snap.Failures,
		RefreshedAt: snap.RefreshedAt,
	})
}

// Refresh handles POST /api/refresh
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snap := h.dash.Refresh(r.Context())

	SendJSONSuccess(w, http.StatusOK, RefreshResponse{
		Activities:  len(snap.Activities),
		Alerts:      len(snap.Alerts),
		Failures:    snap.Failures,
		Source:      snap.Source,
		RefreshedAt: snap.RefreshedAt,
	})
}

func impactClass(impact model.Impact) string {
	switch impact {
	case model.ImpactHigh:
		return "impact-high"
	case model.ImpactMedium:
		return "impact-medium"
	case model.ImpactLow:
		return "impact-low"
	default:
		return "impact-unknown"
	}
}

func typeIcon(t model.ActivityType) string {
	switch t {
	case model.TypePartnership:
		return "🤝"
	case model.TypeCampaign:
		return "📣"
	case model.TypeContent:
		return "📄"
	default:
		return "🌐"
	}
}
