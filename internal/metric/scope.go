package metric

import "strings"

type Scope string

const (
	ScopeOverview Scope = "overview"
	ScopeChart    Scope = "chart"
)

var scopeAliases = map[string]Scope{
	"overview":          ScopeOverview,
	"developer_metrics": ScopeOverview,
	"chart":             ScopeChart,
	"charts":            ScopeChart,
}

// ScopeResolver maps the scope named by a request onto one the upstream
// understands. Unless chart scope is enabled every request resolves to the
// overview.
type ScopeResolver struct {
	fallback     Scope
	chartEnabled bool
}

func NewScopeResolver(defaultScope string, chartEnabled bool) *ScopeResolver {
	fallback, ok := lookupScope(defaultScope)
	if !ok || !chartEnabled {
		fallback = ScopeOverview
	}
	return &ScopeResolver{
		fallback:     fallback,
		chartEnabled: chartEnabled,
	}
}

func (r *ScopeResolver) Resolve(raw string) Scope {
	if !r.chartEnabled {
		return ScopeOverview
	}
	if scope, ok := lookupScope(raw); ok {
		return scope
	}
	return r.fallback
}

func lookupScope(raw string) (Scope, bool) {
	scope, ok := scopeAliases[strings.ToLower(strings.TrimSpace(raw))]
	return scope, ok
}
