package frame

import "github.com/eleven-am/metric-frames/internal/format"

const (
	MRRGoalIcon         = "30756"
	SubscribersGoalIcon = "40354"
)

// Goals holds the optional targets requested by the caller.
type Goals struct {
	MRR         *float64
	Subscribers *float64
}

func ParseGoals(mrr, subscribers string) Goals {
	return Goals{
		MRR:         parseGoal(mrr),
		Subscribers: parseGoal(subscribers),
	}
}

func parseGoal(raw string) *float64 {
	n, ok := format.LeadingInt(raw)
	if !ok || n < 0 {
		return nil
	}
	return &n
}

// GoalFrame starts every goal at zero and leaves current unclamped.
func GoalFrame(icon string, current, goal float64) Frame {
	return NewGoal(icon, GoalData{
		Start:   0,
		Current: current,
		End:     goal,
		Unit:    "",
	})
}
