package handlers

import (
	"errors"
	"net/http"
	"strings"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/http/dto/response"
	"estimatepro/internal/domain/entities"
	"estimatepro/internal/usecase"
	"estimatepro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler serves the builder's client submissions.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// ListLeads godoc
// @Summary List leads, newest first
// @Tags leads
// @Produce json
// @Security Bearer
// @Param status query string false "Filter by status"
// @Success 200 {array} response.LeadResponse
// @Router /v1/leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	status := entities.LeadStatus(strings.TrimSpace(c.Query("status")))

	leads, err := h.usecase.List(c.Request.Context(), builderID(c), status)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// GetLead godoc
// @Summary Lead details
// @Tags leads
// @Produce json
// @Security Bearer
// @Param id path string true "Lead ID"
// @Success 200 {object} response.LeadResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.Get(c.Request.Context(), builderID(c), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// UpdateLeadStatus godoc
// @Summary Move a lead to another follow-up stage
// @Tags leads
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Lead ID"
// @Param body body request.LeadStatusRequest true "Status"
// @Success 200 {object} response.LeadResponse
// @Router /v1/leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var req request.LeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), builderID(c), c.Param("id"), entities.LeadStatus(req.Status))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[lead][handler] status updated lead_id=%s status=%s", lead.ID, lead.Status)
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// UpdateLeadNotes godoc
// @Summary Replace the builder's notes on a lead
// @Tags leads
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Lead ID"
// @Param body body request.LeadNotesRequest true "Notes"
// @Success 200 {object} response.LeadResponse
// @Router /v1/leads/{id}/notes [patch]
func (h *LeadHandler) UpdateLeadNotes(c *gin.Context) {
	var req request.LeadNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateNotes(c.Request.Context(), builderID(c), c.Param("id"), req.Notes)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// DeleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Security Bearer
// @Param id path string true "Lead ID"
// @Success 204
// @Router /v1/leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), builderID(c), c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidBuilderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("INVALID_LEAD_STATUS", "Invalid lead status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotesTooLong):
		return pkg.NewDomainErrorSimple("NOTES_TOO_LONG", "Notes exceed 5000 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
