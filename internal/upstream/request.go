package upstream

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/eleven-am/metric-frames/internal/metric"
)

// Target names what a single inbound request asks the upstream for.
type Target struct {
	Project string
	Scope   metric.Scope
	Metric  string
	Query   url.Values
}

type RequestBuilder struct {
	base           *url.URL
	endpointPath   string
	windowDefaults map[string]string
}

func NewRequestBuilder(cfg Config) (*RequestBuilder, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", raw)
	}

	return &RequestBuilder{
		base:           base,
		endpointPath:   strings.TrimPrefix(cfg.EndpointPath, "/"),
		windowDefaults: cfg.WindowDefaults,
	}, nil
}

func (b *RequestBuilder) BaseURL() *url.URL {
	u := *b.base
	return &u
}

func (b *RequestBuilder) Build(t Target) (*url.URL, error) {
	path := b.endpointPath
	if path == "" {
		path = resourcePath(t)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint path: %w", err)
	}
	u := b.base.ResolveReference(ref)

	q := u.Query()
	if t.Scope == metric.ScopeChart {
		for _, name := range WindowParams {
			if t.Query.Has(name) {
				q.Set(name, t.Query.Get(name))
			} else if v := b.windowDefaults[name]; v != "" {
				q.Set(name, v)
			}
		}
	}
	for key, values := range t.Query {
		name, ok := strings.CutPrefix(key, ForwardPrefix)
		if !ok || len(values) == 0 {
			continue
		}
		q.Set(name, values[len(values)-1])
	}
	u.RawQuery = q.Encode()

	return u, nil
}

func resourcePath(t Target) string {
	project := url.PathEscape(t.Project)
	if t.Scope == metric.ScopeChart {
		return "projects/" + project + "/charts/" + url.PathEscape(t.Metric)
	}
	return "projects/" + project + "/metrics/overview"
}
