package frame

import (
	"github.com/eleven-am/metric-frames/internal/format"
	"github.com/eleven-am/metric-frames/internal/payload"
)

const BundleMetric = "overview_bundle"

// Preset pins a well-known overview metric to an icon and caption. Presets
// are rendered first, in catalogue order.
type Preset struct {
	ID        string
	Icon      string
	Label     string
	Precision int
}

var presets = []Preset{
	{ID: "active_users", Icon: "42832", Label: "Active Users"},
	{ID: "new_customers", Icon: "406", Label: "New Customers"},
	{ID: "revenue", Icon: "30756", Label: "Revenue"},
	{ID: "active_subscriptions", Icon: "40354", Label: "Subscribers"},
	{ID: "active_trials", Icon: "41036", Label: "Trials"},
	{ID: "mrr", Icon: "30756", Label: "MRR"},
}

type OverviewOptions struct {
	FallbackIcon string
	Goals        Goals
}

// Overview turns an overview payload into the full bundle: preset metrics,
// then any other non-zero metric, then the requested goals. It returns nil
// when the payload lists no metrics.
func Overview(doc payload.Record, opts OverviewOptions) []Frame {
	entries, _ := doc.Records("metrics")
	if len(entries) == 0 {
		return nil
	}

	byID := make(map[string]payload.Record, len(entries))
	for _, entry := range entries {
		if id, ok := entry.String("id"); ok && id != "" {
			byID[id] = entry
		}
	}

	icon := opts.FallbackIcon
	if icon == "" {
		icon = DefaultIcon
	}

	frames := make([]Frame, 0, len(entries)+2)
	consumed := make(map[string]bool, len(presets))

	for _, p := range presets {
		entry, ok := byID[p.ID]
		if !ok {
			continue
		}
		text, ok := overviewValue(entry, p.Precision)
		if !ok {
			continue
		}
		label := p.Label
		if label == "" {
			label = format.Prettify(p.ID)
		}
		frames = append(frames, NewText(label+": "+text, p.Icon))
		consumed[p.ID] = true
	}

	for _, entry := range entries {
		id, ok := entry.String("id")
		if !ok || id == "" || consumed[id] {
			continue
		}
		if n, ok := entry.Number("value"); !ok || n == 0 {
			continue
		}
		text, _ := overviewValue(entry, 0)
		label, ok := entry.String("name")
		if !ok {
			label = format.Prettify(id)
		}
		frames = append(frames, NewText(label+": "+text, icon))
	}

	return append(frames, overviewGoals(byID, opts.Goals)...)
}

func overviewValue(entry payload.Record, precision int) (string, bool) {
	n, ok := entry.Number("value")
	if !ok {
		return "", false
	}
	unit, _ := entry.String("unit")
	return format.WithUnit(format.Number(n, precision), unit), true
}

func overviewGoals(byID map[string]payload.Record, goals Goals) []Frame {
	var frames []Frame
	if goals.MRR != nil {
		if current, ok := byID["mrr"].Number("current", "value", "total"); ok {
			frames = append(frames, GoalFrame(MRRGoalIcon, current, *goals.MRR))
		}
	}
	if goals.Subscribers != nil {
		if current, ok := byID["active_subscriptions"].Number("current", "value", "total"); ok {
			frames = append(frames, GoalFrame(SubscribersGoalIcon, current, *goals.Subscribers))
		}
	}
	return frames
}
