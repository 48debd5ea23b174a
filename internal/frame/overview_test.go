package frame

import (
	"testing"

	"github.com/eleven-am/metric-frames/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) payload.Record {
	t.Helper()
	rec, err := payload.Decode([]byte(raw))
	require.NoError(t, err)
	return rec
}

func goalPtr(v float64) *float64 {
	return &v
}

func texts(frames []Frame) []string {
	out := make([]string, 0, len(frames))
	for _, f := range frames {
		if !f.IsGoal() {
			out = append(out, f.Text)
		}
	}
	return out
}

const overviewPayload = `{"metrics": [
	{"id": "mrr", "value": 1234.5, "unit": "$"},
	{"id": "churn_rate", "name": "Churn", "value": 2.4, "unit": "%"},
	{"id": "active_trials", "value": 12, "unit": "#"},
	{"id": "refund_count", "value": 0},
	{"id": "active_subscriptions", "value": 321, "unit": " "},
	{"id": "revenue", "value": 98765.4, "unit": "€"},
	{"id": "conversion_to_paying", "value": 7},
	{"value": 99},
	{"id": "mystery", "value": "n/a"}
]}`

func TestOverview_PresetsThenOverflow(t *testing.T) {
	frames := Overview(decode(t, overviewPayload), OverviewOptions{})

	assert.Equal(t, []string{
		"Revenue: €98,765",
		"Subscribers: 321",
		"Trials: 12",
		"MRR: $1,235",
		"Churn: 2 %",
		"Conversion To Paying: 7",
	}, texts(frames))

	assert.Equal(t, "30756", frames[0].Icon)
	assert.Equal(t, "40354", frames[1].Icon)
	assert.Equal(t, "41036", frames[2].Icon)
	assert.Equal(t, "30756", frames[3].Icon)
	assert.Equal(t, DefaultIcon, frames[4].Icon)
	assert.Equal(t, DefaultIcon, frames[5].Icon)
}

func TestOverview_FallbackIcon(t *testing.T) {
	frames := Overview(decode(t, overviewPayload), OverviewOptions{FallbackIcon: "i99"})
	assert.Equal(t, "i99", frames[len(frames)-1].Icon)
}

func TestOverview_DuplicateIDsLastWinsForPresets(t *testing.T) {
	frames := Overview(decode(t, `{"metrics": [
		{"id": "mrr", "value": 1},
		{"id": "mrr", "value": 2}
	]}`), OverviewOptions{})

	assert.Equal(t, []string{"MRR: 2"}, texts(frames))
}

func TestOverview_PresetWithoutValueFallsToOverflowCheck(t *testing.T) {
	frames := Overview(decode(t, `{"metrics": [
		{"id": "mrr", "value": null},
		{"id": "active_users", "value": 5, "name": "ignored for presets"}
	]}`), OverviewOptions{})

	assert.Equal(t, []string{"Active Users: 5"}, texts(frames))
}

func TestOverview_Goals(t *testing.T) {
	frames := Overview(decode(t, `{"metrics": [
		{"id": "mrr", "value": 1234.5, "current": 1300},
		{"id": "active_subscriptions", "total": 40}
	]}`), OverviewOptions{Goals: Goals{MRR: goalPtr(5000), Subscribers: goalPtr(100)}})

	require.Len(t, frames, 3)
	assert.Equal(t, "MRR: 1,235", frames[0].Text)

	require.True(t, frames[1].IsGoal())
	assert.Equal(t, MRRGoalIcon, frames[1].Icon)
	assert.Equal(t, 1300.0, frames[1].Goal.Current)
	assert.Equal(t, 5000.0, frames[1].Goal.End)

	require.True(t, frames[2].IsGoal())
	assert.Equal(t, SubscribersGoalIcon, frames[2].Icon)
	assert.Equal(t, 40.0, frames[2].Goal.Current)
	assert.Equal(t, 100.0, frames[2].Goal.End)
}

func TestOverview_GoalWithoutRecordIsSkipped(t *testing.T) {
	frames := Overview(decode(t, `{"metrics": [{"id": "revenue", "value": 10}]}`),
		OverviewOptions{Goals: Goals{MRR: goalPtr(5000)}})

	require.Len(t, frames, 1)
	assert.False(t, frames[0].IsGoal())
}

func TestOverview_NoMetrics(t *testing.T) {
	for _, raw := range []string{`{}`, `{"metrics": []}`, `{"metrics": [1, "a", null]}`, `[]`} {
		assert.Empty(t, Overview(decode(t, raw), OverviewOptions{Goals: Goals{MRR: goalPtr(1)}}), raw)
	}
}

func TestOverview_AllZeroOverflowYieldsNothing(t *testing.T) {
	frames := Overview(decode(t, `{"metrics": [{"id": "refunds", "value": 0}]}`), OverviewOptions{})
	assert.Empty(t, frames)
}

func TestPresets_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool, len(presets))
	for _, p := range presets {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, presets, 6)
}
