package frames

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/eleven-am/metric-frames/internal/frame"
	"github.com/eleven-am/metric-frames/internal/metric"
	"github.com/eleven-am/metric-frames/internal/upstream"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUpstream struct {
	mu       sync.Mutex
	status   int
	body     string
	requests []*http.Request
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	f.mu.Unlock()

	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeUpstream) last(t *testing.T) *http.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "upstream was not called")
	return f.requests[len(f.requests)-1]
}

type testServer struct {
	echo     *echo.Echo
	upstream *fakeUpstream
}

func newTestServer(t *testing.T, settings Settings, body string) *testServer {
	t.Helper()

	fake := &fakeUpstream{body: body}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	cfg := upstream.Config{BaseURL: srv.URL + "/v2"}
	requests, err := upstream.NewRequestBuilder(cfg)
	require.NoError(t, err)

	logger := zap.NewNop()
	h := NewHandler(
		settings,
		metric.NewScopeResolver(settings.DefaultScope, false),
		requests,
		upstream.NewClient(cfg, logger, nil),
		logger,
	)

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(logger)
	h.RegisterRoutes(e)

	return &testServer{echo: e, upstream: fake}
}

func (s *testServer) get(t *testing.T, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decodeFrames(t *testing.T, rec *httptest.ResponseRecorder) []frame.Frame {
	t.Helper()
	var resp frame.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Frames
}

func assertErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, jsonContentType, rec.Header().Get(echo.HeaderContentType))

	var resp frame.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, message, resp.Error)
	require.Len(t, resp.Frames, 1)
	assert.Equal(t, "Error: "+message, resp.Frames[0].Text)
	assert.Equal(t, frame.ErrorIcon, resp.Frames[0].Icon)
}

const overviewBody = `{"metrics": [
	{"id": "mrr", "value": 1234.5, "unit": "$", "period": "P28D"},
	{"id": "active_subscriptions", "value": 321},
	{"id": "churn", "value": 3}
]}`

func TestFrames_MissingToken(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	rec := s.get(t, "/?project=p", "")
	assertErrorEnvelope(t, rec, http.StatusUnauthorized, "Authorization header with Bearer token is required")
	assert.Empty(t, s.upstream.requests)
}

func TestFrames_MissingProject(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	rec := s.get(t, "/?metric=mrr", "tok")
	assertErrorEnvelope(t, rec, http.StatusBadRequest, "Query parameter 'project' is required")
}

func TestFrames_EmptyMetric(t *testing.T) {
	s := newTestServer(t, Settings{DefaultMetric: "mrr"}, overviewBody)

	rec := s.get(t, "/?metric=&project=p", "tok")
	assertErrorEnvelope(t, rec, http.StatusBadRequest, "Metric is required")
}

func TestFrames_OverviewBundle(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	rec := s.get(t, "/?project=proj_1&mrr_goal=5000&icon=i7&rc.currency=EUR", "sk_test")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "public, max-age=30", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, jsonContentType, rec.Header().Get(echo.HeaderContentType))

	frames := decodeFrames(t, rec)
	require.Len(t, frames, 4)
	assert.Equal(t, frame.NewText("Subscribers: 321", "40354"), frames[0])
	assert.Equal(t, frame.NewText("MRR: $1,235", "30756"), frames[1])
	assert.Equal(t, frame.NewText("Churn: 3", "i7"), frames[2])
	assert.Equal(t, frame.GoalFrame(frame.MRRGoalIcon, 1234.5, 5000), frames[3])

	req := s.upstream.last(t)
	assert.Equal(t, "/v2/projects/proj_1/metrics/overview", req.URL.Path)
	assert.Equal(t, "EUR", req.URL.Query().Get("currency"))
	assert.Equal(t, "Bearer sk_test", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestFrames_SingleMetric(t *testing.T) {
	s := newTestServer(t, Settings{DefaultSuffix: " USD"}, overviewBody)

	rec := s.get(t, "/anything?project=p&metric=mrr&precision=2&mrr_goal=5000", "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	frames := decodeFrames(t, rec)
	assert.Equal(t, []frame.Frame{
		frame.NewText("Mrr: 1,234.50 USD", frame.DefaultIcon),
		frame.NewText("P28D", frame.DefaultIcon),
		frame.GoalFrame(frame.MRRGoalIcon, 1234.5, 5000),
	}, frames)
}

func TestFrames_SingleMetricOverrides(t *testing.T) {
	s := newTestServer(t, Settings{DefaultLabel: "Configured", DefaultIcon: "i1", DefaultPrecision: "3"}, overviewBody)

	rec := s.get(t, "/?project=p&metric=active_subscriptions&label=&icon=i2&precision=9&subscribers_goal=400", "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, []frame.Frame{
		frame.NewText(": 321", "i2"),
		frame.GoalFrame(frame.SubscribersGoalIcon, 321, 400),
	}, decodeFrames(t, rec))

	rec = s.get(t, "/?project=p&metric=active_subscriptions", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []frame.Frame{frame.NewText("Configured: 321.000", "i1")}, decodeFrames(t, rec))
}

func TestFrames_GoalBeyondInt64StillRendered(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	rec := s.get(t, "/?project=p&metric=mrr&mrr_goal=99999999999999999999", "tok")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	frames := decodeFrames(t, rec)
	require.Len(t, frames, 3)
	assert.Equal(t, frame.GoalFrame(frame.MRRGoalIcon, 1234.5, 1e20), frames[2])
}

func TestFrames_DefaultMetricFromSettings(t *testing.T) {
	s := newTestServer(t, Settings{DefaultMetric: "churn"}, overviewBody)

	rec := s.get(t, "/?project=p", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []frame.Frame{frame.NewText("Churn: 3", frame.DefaultIcon)}, decodeFrames(t, rec))
}

func TestFrames_UnknownMetric(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	rec := s.get(t, "/?project=p&metric=nope", "tok")
	assertErrorEnvelope(t, rec, http.StatusBadGateway, "No numeric data found in RevenueCat response")
}

func TestFrames_EmptyBundle(t *testing.T) {
	s := newTestServer(t, Settings{}, `{"metrics": []}`)

	rec := s.get(t, "/?project=p&mrr_goal=10", "tok")
	assertErrorEnvelope(t, rec, http.StatusBadGateway, "No numeric data found in RevenueCat response")
}

func TestFrames_UpstreamStatusPassedThrough(t *testing.T) {
	s := newTestServer(t, Settings{}, `{"message": "nope"}`)
	s.upstream.status = http.StatusNotFound

	rec := s.get(t, "/?project=p", "tok")
	assertErrorEnvelope(t, rec, http.StatusNotFound, "RevenueCat responded with 404 Not Found")
}

func TestFrames_UpstreamGarbageIsInternalError(t *testing.T) {
	s := newTestServer(t, Settings{}, `not json`)

	rec := s.get(t, "/?project=p", "tok")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body frame.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "malformed upstream payload")
	assert.Contains(t, body.Error, "invalid character")
	require.Len(t, body.Frames, 1)
	assert.Equal(t, "Error: "+body.Error, body.Frames[0].Text)
}

func TestFrames_UpstreamNonObjectIsNoData(t *testing.T) {
	s := newTestServer(t, Settings{}, `[1, 2, 3]`)

	rec := s.get(t, "/?project=p", "tok")
	assertErrorEnvelope(t, rec, http.StatusBadGateway, noDataMessage)
}

func TestFrames_LegacyScopeAliasResolvesToOverview(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	rec := s.get(t, "/?project=p&scope=Charts&metric=churn&period=P7D", "tok")
	require.Equal(t, http.StatusOK, rec.Code)

	req := s.upstream.last(t)
	assert.True(t, strings.HasSuffix(req.URL.Path, "/metrics/overview"))
	assert.Empty(t, req.URL.Query().Get("period"))
}

func TestFrames_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, Settings{}, overviewBody)

	req := httptest.NewRequest(http.MethodPost, "/?project=p", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	assertErrorEnvelope(t, rec, http.StatusMethodNotAllowed, "Method Not Allowed")
}

func TestParam(t *testing.T) {
	q := url.Values{"label": {""}, "icon": {"i9"}}

	assert.Equal(t, "", param(q, "label", "configured", "fallback"))
	assert.Equal(t, "i9", param(q, "icon", "configured", "fallback"))
	assert.Equal(t, "configured", param(q, "suffix", "configured", "fallback"))
	assert.Equal(t, "fallback", param(q, "suffix", "", "fallback"))
}
