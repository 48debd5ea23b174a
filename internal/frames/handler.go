package frames

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/eleven-am/metric-frames/internal/auth"
	"github.com/eleven-am/metric-frames/internal/format"
	"github.com/eleven-am/metric-frames/internal/frame"
	"github.com/eleven-am/metric-frames/internal/metric"
	"github.com/eleven-am/metric-frames/internal/payload"
	"github.com/eleven-am/metric-frames/internal/shared"
	"github.com/eleven-am/metric-frames/internal/upstream"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	jsonContentType = "application/json; charset=utf-8"
	noDataMessage   = "No numeric data found in RevenueCat response"
)

type Fetcher interface {
	Fetch(ctx context.Context, endpoint *url.URL, token string) (payload.Record, error)
}

type Handler struct {
	settings Settings
	scopes   *metric.ScopeResolver
	requests *upstream.RequestBuilder
	fetcher  Fetcher
	logger   *zap.Logger
}

func NewHandler(settings Settings, scopes *metric.ScopeResolver, requests *upstream.RequestBuilder, fetcher Fetcher, logger *zap.Logger) *Handler {
	return &Handler{
		settings: settings,
		scopes:   scopes,
		requests: requests,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// RegisterRoutes claims every path not taken by a more specific route.
func (h *Handler) RegisterRoutes(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	e.GET("/*", h.Frames, append(middleware, auth.RequireBearer)...)
}

// @Summary      Metric frames
// @Description  Fetches metrics for a project and renders them as display frames
// @Tags         frames
// @Produce      json
// @Param        project           query  string  true   "Project identifier"
// @Param        metric            query  string  false  "Metric id, overview_bundle for the full overview"
// @Param        scope             query  string  false  "Metric scope"
// @Param        label             query  string  false  "Label for a single metric"
// @Param        suffix            query  string  false  "Suffix appended to a single metric value"
// @Param        icon              query  string  false  "Icon for single metric and non-preset frames"
// @Param        precision         query  int     false  "Fraction digits, 0 to 6"
// @Param        mrr_goal          query  int     false  "MRR goal"
// @Param        subscribers_goal  query  int     false  "Active subscriptions goal"
// @Success      200  {object}  frame.Response
// @Failure      400  {object}  frame.ErrorResponse
// @Failure      401  {object}  frame.ErrorResponse
// @Failure      429  {object}  frame.ErrorResponse
// @Failure      500  {object}  frame.ErrorResponse
// @Failure      502  {object}  frame.ErrorResponse
// @Security     BearerAuth
// @Router       / [get]
func (h *Handler) Frames(c echo.Context) error {
	token, err := auth.RequireToken(c)
	if err != nil {
		return err
	}

	query := c.QueryParams()

	metricID := param(query, "metric", h.settings.DefaultMetric, frame.BundleMetric)
	if metricID == "" {
		return shared.BadRequest("Metric is required")
	}

	project := query.Get("project")
	if project == "" {
		return shared.BadRequest("Query parameter 'project' is required")
	}

	scope := h.scopes.Resolve(param(query, "scope", h.settings.DefaultScope, string(metric.ScopeOverview)))

	endpoint, err := h.requests.Build(upstream.Target{
		Project: project,
		Scope:   scope,
		Metric:  metricID,
		Query:   query,
	})
	if err != nil {
		return shared.InternalError(err)
	}

	doc, err := h.fetcher.Fetch(c.Request().Context(), endpoint, token)
	if err != nil {
		return classifyFetchError(err)
	}

	goals := frame.ParseGoals(query.Get("mrr_goal"), query.Get("subscribers_goal"))
	icon := param(query, "icon", h.settings.DefaultIcon, frame.DefaultIcon)

	var frames []frame.Frame
	if scope == metric.ScopeOverview && metricID == frame.BundleMetric {
		frames = frame.Overview(doc, frame.OverviewOptions{
			FallbackIcon: icon,
			Goals:        goals,
		})
	} else {
		value, ok := metric.Extract(doc, scope, metricID)
		if !ok {
			return shared.NoData(noDataMessage)
		}
		frames = frame.Single(value, frame.SingleOptions{
			Metric:    metricID,
			Label:     param(query, "label", h.settings.DefaultLabel, format.Prettify(metricID)),
			Suffix:    param(query, "suffix", h.settings.DefaultSuffix, ""),
			Icon:      icon,
			Precision: format.Precision(param(query, "precision", h.settings.DefaultPrecision, "")),
			Goals:     goals,
		})
	}

	if len(frames) == 0 {
		return shared.NoData(noDataMessage)
	}

	h.logger.Debug("frames rendered",
		zap.String("metric", metricID),
		zap.String("scope", string(scope)),
		zap.Int("frames", len(frames)),
	)

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, jsonContentType)
	header.Set(echo.HeaderCacheControl, "public, max-age=30")
	return c.JSON(http.StatusOK, frame.Response{Frames: frames})
}

// param resolves a request parameter: a present query value wins even when
// empty, then the configured default, then fallback.
func param(query url.Values, key, configured, fallback string) string {
	if query.Has(key) {
		return query.Get(key)
	}
	if configured != "" {
		return configured
	}
	return fallback
}

func classifyFetchError(err error) error {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		return shared.Upstream(statusErr.StatusCode, statusErr.Error()).Wrap(err)
	}
	return shared.InternalError(err)
}
