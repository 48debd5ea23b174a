package frame

import (
	"github.com/eleven-am/metric-frames/internal/format"
	"github.com/eleven-am/metric-frames/internal/metric"
)

// SingleOptions carries the already resolved display overrides for one
// metric. Label, Suffix and Icon are used exactly as given.
type SingleOptions struct {
	Metric    string
	Label     string
	Suffix    string
	Icon      string
	Precision int
	Goals     Goals
}

func Single(v metric.Value, opts SingleOptions) []Frame {
	frames := []Frame{
		NewText(opts.Label+": "+format.Number(v.Value, opts.Precision)+opts.Suffix, opts.Icon),
	}
	if v.Label != "" {
		frames = append(frames, NewText(v.Label, opts.Icon))
	}

	switch opts.Metric {
	case "mrr":
		if opts.Goals.MRR != nil {
			frames = append(frames, GoalFrame(MRRGoalIcon, v.Value, *opts.Goals.MRR))
		}
	case "active_subscriptions", "subscribers":
		if opts.Goals.Subscribers != nil {
			frames = append(frames, GoalFrame(SubscribersGoalIcon, v.Value, *opts.Goals.Subscribers))
		}
	}
	return frames
}
