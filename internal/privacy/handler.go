package privacy

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	policy *Policy
}

func NewHandler(policy *Policy) *Handler {
	return &Handler{policy: policy}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	for _, path := range Paths {
		e.GET(path, h.Get)
	}
}

// @Summary      Privacy policy
// @Description  Returns the privacy policy of this deployment
// @Tags         privacy
// @Produce      json
// @Success      200  {object}  privacy.Policy
// @Router       /privacy [get]
func (h *Handler) Get(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")
	return c.JSON(http.StatusOK, h.policy)
}
