package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crmtrack/internal/middleware"
	"github.com/umalmyha/crmtrack/internal/model"
	"github.com/umalmyha/crmtrack/internal/service"
)

type newInteraction struct {
	CustomerID      string                `param:"id" validate:"required,uuid"`
	Type            model.InteractionType `json:"type" validate:"required,oneof=call email meeting"`
	Notes           string                `json:"notes" validate:"required"`
	InteractionDate *time.Time            `json:"interactionDate"`
	FollowUpDate    *time.Time            `json:"followUpDate"`
}

// InteractionHTTPHandler is http handler for interaction endpoint
type InteractionHTTPHandler struct {
	interactionSvc service.InteractionService
}

// NewInteractionHTTPHandler builds new InteractionHTTPHandler
func NewInteractionHTTPHandler(interactionSvc service.InteractionService) *InteractionHTTPHandler {
	return &InteractionHTTPHandler{interactionSvc: interactionSvc}
}

// History gets customer interaction history
// @Summary     Customer interaction history
// @Description Returns interactions of the customer, most recent interaction date first
// @Tags        interactions
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Customer guid" Format(uuid)
// @Success     200    {array}  model.Interaction
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/interactions [get]
// @Router      /api/v2/customers/{id}/interactions [get]
func (h *InteractionHTTPHandler) History(c echo.Context) error {
	ownerID, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	customerID := c.Param("id")
	if err := c.Validate(&identifier{ID: customerID}); err != nil {
		return err
	}

	interactions, err := h.interactionSvc.History(c.Request().Context(), ownerID, customerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, interactions)
}

// Log logs new customer interaction
// @Summary     Log interaction
// @Description Appends new interaction to the customer history
// @Tags        interactions
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param       id     		   path 	string 		   true "Customer guid" Format(uuid)
// @Param 		newInteraction body	    newInteraction true "Data for new interaction"
// @Success     201    		   {object} model.Interaction
// @Failure     400    		   {object} echo.HTTPError
// @Failure     404    		   {object} echo.HTTPError
// @Failure     500    		   {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/interactions [post]
// @Router      /api/v2/customers/{id}/interactions [post]
func (h *InteractionHTTPHandler) Log(c echo.Context) error {
	ownerID, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	var ni newInteraction
	if err := c.Bind(&ni); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ni); err != nil {
		return err
	}

	interaction, err := h.interactionSvc.Log(c.Request().Context(), ownerID, ni.CustomerID, &model.NewInteraction{
		Type:            ni.Type,
		Notes:           ni.Notes,
		InteractionDate: ni.InteractionDate,
		FollowUpDate:    ni.FollowUpDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, interaction)
}

// DeleteByID deletes interaction
// @Summary     Delete interaction by id
// @Description Removes single interaction from the history
// @Tags        interactions
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	string true "Interaction guid" Format(uuid)
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/interactions/{id} [delete]
// @Router      /api/v2/interactions/{id} [delete]
func (h *InteractionHTTPHandler) DeleteByID(c echo.Context) error {
	ownerID, err := middleware.Identity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.interactionSvc.Remove(c.Request().Context(), ownerID, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
