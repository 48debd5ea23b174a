package metric

import "github.com/eleven-am/metric-frames/internal/payload"

// Value is a number pulled out of an upstream payload, optionally with the
// caption the upstream attached to it.
type Value struct {
	Value float64
	Label string
}

var valueKeys = []string{"value", "total", "current"}

// Extract locates the value for metric in doc. Overview payloads carrying a
// metrics list are searched by id only; everything else falls back to a
// top-level value and then to the newest entry of the data series.
func Extract(doc payload.Record, scope Scope, metric string) (Value, bool) {
	if doc == nil {
		return Value{}, false
	}

	if scope == ScopeOverview {
		if entries, ok := doc.Records("metrics"); ok {
			return fromOverview(entries, metric)
		}
	}

	if n, ok := doc.Number(valueKeys...); ok {
		return Value{Value: n}, true
	}

	series, _ := doc.Records("data")
	for i := len(series) - 1; i >= 0; i-- {
		n, ok := series[i].Number(valueKeys...)
		if !ok {
			continue
		}
		label, _ := series[i].Label("label")
		return Value{Value: n, Label: label}, true
	}

	return Value{}, false
}

func fromOverview(entries []payload.Record, metric string) (Value, bool) {
	for _, entry := range entries {
		if id, ok := entry.String("id"); !ok || id != metric {
			continue
		}
		n, ok := entry.Number("value")
		if !ok {
			return Value{}, false
		}
		label, _ := entry.Label("description", "period", "name")
		return Value{Value: n, Label: label}, true
	}
	return Value{}, false
}
