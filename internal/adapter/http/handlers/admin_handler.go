package handlers

import (
	"net/http"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/http/dto/response"
	"estimatepro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the platform operator endpoints. Routes are gated on the admin role.
type AdminHandler struct {
	usecase  usecase.IAdminUseCase
	builders *BuilderHandler
}

func NewAdminHandler(uc usecase.IAdminUseCase, builderUC usecase.IBuilderUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc, builders: NewBuilderHandler(builderUC)}
}

// Summary godoc
// @Summary Platform counters
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} response.AdminSummaryResponse
// @Failure 403 {object} pkg.HTTPError
// @Router /v1/admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdminSummary(s))
}

// ListBuilders godoc
// @Summary All builder accounts
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {array} response.BuilderResponse
// @Router /v1/admin/builders [get]
func (h *AdminHandler) ListBuilders(c *gin.Context) {
	builders, err := h.usecase.ListBuilders(c.Request.Context())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuilders(builders))
}

// GetBuilder godoc
// @Summary One builder account
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Builder ID"
// @Success 200 {object} response.BuilderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/admin/builders/{id} [get]
func (h *AdminHandler) GetBuilder(c *gin.Context) {
	b, err := h.usecase.GetBuilder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuilder(b))
}

// SetBuilderAccess godoc
// @Summary Enable or disable a builder account
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Builder ID"
// @Param body body request.AccessToggleRequest true "Access"
// @Success 200 {object} response.BuilderResponse
// @Router /v1/admin/builders/{id}/access [patch]
func (h *AdminHandler) SetBuilderAccess(c *gin.Context) {
	var req request.AccessToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	b, err := h.usecase.SetAccessDisabled(c.Request.Context(), c.Param("id"), *req.IsAccessDisabled)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[admin][handler] access updated builder_id=%s disabled=%t by=%s", b.ID, b.IsAccessDisabled, builderID(c))
	c.JSON(http.StatusOK, response.FromBuilder(b))
}

// GetBuilderPricing godoc
// @Summary Any builder's pricing catalog
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path string true "Builder ID"
// @Success 200 {object} response.PricingResponse
// @Router /v1/admin/builders/{id}/pricing [get]
func (h *AdminHandler) GetBuilderPricing(c *gin.Context) {
	h.builders.getPricing(c, c.Param("id"))
}

// UpdateBuilderPricing godoc
// @Summary Replace any builder's pricing catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Builder ID"
// @Param body body request.PricingUpdateRequest true "Catalog"
// @Success 200 {object} response.PricingResponse
// @Router /v1/admin/builders/{id}/pricing [put]
func (h *AdminHandler) UpdateBuilderPricing(c *gin.Context) {
	h.builders.updatePricing(c, c.Param("id"))
}

// ListLeads godoc
// @Summary Leads across all builders
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {array} response.LeadResponse
// @Router /v1/admin/leads [get]
func (h *AdminHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.ListAllLeads(c.Request.Context())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}
