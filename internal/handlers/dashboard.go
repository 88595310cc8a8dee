package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmtrack/internal/middleware"
	"github.com/umalmyha/crmtrack/internal/service"
)

// DashboardHTTPHandler is http handler for dashboard endpoint
type DashboardHTTPHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHTTPHandler builds new DashboardHTTPHandler
func NewDashboardHTTPHandler(dashboardSvc service.DashboardService) *DashboardHTTPHandler {
	return &DashboardHTTPHandler{dashboardSvc: dashboardSvc}
}

// Stats gets customer counts by status
// @Summary     Customer statistics
// @Description Returns total customer count and count per status for the current user
// @Tags        dashboard
// @Security	ApiKeyAuth
// @Produce     json
// @Success     200    {object} model.Stats
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/dashboard/stats [get]
// @Router      /api/v2/dashboard/stats [get]
func (h *DashboardHTTPHandler) Stats(c echo.Context) error {
	ownerID, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboardSvc.Stats(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// FollowUps gets upcoming follow-ups
// @Summary     Upcoming follow-ups
// @Description Returns nearest scheduled follow-ups of the current user, soonest first
// @Tags        dashboard
// @Security	ApiKeyAuth
// @Produce     json
// @Param       limit  query    int false "Max entries to return, defaults to 5"
// @Success     200    {array}  model.FollowUp
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/dashboard/follow-ups [get]
// @Router      /api/v2/dashboard/follow-ups [get]
func (h *DashboardHTTPHandler) FollowUps(c echo.Context) error {
	ownerID, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	limit := 0
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		limit, err = strconv.Atoi(rawLimit)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
	}

	followUps, err := h.dashboardSvc.UpcomingFollowUps(c.Request().Context(), ownerID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, followUps)
}
