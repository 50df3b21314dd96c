package handlers

import (
	"errors"
	"io"
	"net/http"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/http/dto/response"
	"estimatepro/internal/adapter/http/middleware"
	"estimatepro/internal/domain/pricing"
	"estimatepro/internal/usecase"
	"estimatepro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	xlsxContentType    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pricingExportName  = "estimatepro-pricing.xlsx"
	maxPricingFileSize = 5 << 20
)

// BuilderHandler serves the signed-in builder's profile and pricing catalog.
type BuilderHandler struct {
	usecase usecase.IBuilderUseCase
}

func NewBuilderHandler(uc usecase.IBuilderUseCase) *BuilderHandler {
	return &BuilderHandler{usecase: uc}
}

// GetProfile godoc
// @Summary Builder profile
// @Tags builder
// @Produce json
// @Security Bearer
// @Success 200 {object} response.BuilderResponse
// @Router /v1/builder/profile [get]
func (h *BuilderHandler) GetProfile(c *gin.Context) {
	b, err := h.usecase.GetProfile(c.Request.Context(), builderID(c))
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuilder(b))
}

// UpdateProfile godoc
// @Summary Update builder profile
// @Tags builder
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body request.ProfileUpdateRequest true "Profile"
// @Success 200 {object} response.BuilderResponse
// @Router /v1/builder/profile [put]
func (h *BuilderHandler) UpdateProfile(c *gin.Context) {
	var req request.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateProfile(c.Request.Context(), builderID(c), req.ToProfileUpdate())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBuilder(b))
}

// RegenerateSurveySlug godoc
// @Summary Issue a new public survey link
// @Tags builder
// @Produce json
// @Security Bearer
// @Success 200 {object} response.BuilderResponse
// @Router /v1/builder/survey-link [post]
func (h *BuilderHandler) RegenerateSurveySlug(c *gin.Context) {
	b, err := h.usecase.RegenerateSurveySlug(c.Request.Context(), builderID(c))
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[builder][handler] survey slug regenerated builder_id=%s slug=%s", b.ID, b.SurveySlug)
	c.JSON(http.StatusOK, response.FromBuilder(b))
}

// GetPricing godoc
// @Summary Pricing catalog
// @Tags pricing
// @Produce json
// @Security Bearer
// @Success 200 {object} response.PricingResponse
// @Failure 402 {object} pkg.HTTPError
// @Router /v1/builder/pricing [get]
func (h *BuilderHandler) GetPricing(c *gin.Context) {
	h.getPricing(c, builderID(c))
}

// UpdatePricing godoc
// @Summary Replace the pricing catalog
// @Tags pricing
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body request.PricingUpdateRequest true "Catalog"
// @Success 200 {object} response.PricingResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 402 {object} pkg.HTTPError
// @Router /v1/builder/pricing [put]
func (h *BuilderHandler) UpdatePricing(c *gin.Context) {
	h.updatePricing(c, builderID(c))
}

func (h *BuilderHandler) getPricing(c *gin.Context, id string) {
	catalog, err := h.usecase.GetPricing(c.Request.Context(), id)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingCatalog(catalog))
}

func (h *BuilderHandler) updatePricing(c *gin.Context, id string) {
	var req request.PricingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	catalog, err := h.usecase.UpdatePricing(c.Request.Context(), id, req.ToCatalog())
	if err != nil {
		zap.S().Warnf("[pricing][handler] update failed builder_id=%s err=%v", id, err)
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[pricing][handler] update success builder_id=%s items=%d", id, len(catalog.Items))
	c.JSON(http.StatusOK, response.FromPricingCatalog(catalog))
}

// ExportPricing godoc
// @Summary Download the catalog as XLSX
// @Tags pricing
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Success 200 {file} file
// @Router /v1/builder/pricing/export [get]
func (h *BuilderHandler) ExportPricing(c *gin.Context) {
	data, err := h.usecase.ExportPricing(c.Request.Context(), builderID(c))
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+pricingExportName+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ImportPricing godoc
// @Summary Replace the catalog from an XLSX upload
// @Tags pricing
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param file formData file true "Pricing workbook"
// @Success 200 {object} response.PricingResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/builder/pricing/import [post]
func (h *BuilderHandler) ImportPricing(c *gin.Context) {
	r, closeFn, err := pricingUpload(c)
	if err != nil {
		zap.S().Warnf("[pricing][handler] import upload invalid err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	defer closeFn()

	catalog, err := h.usecase.ImportPricing(c.Request.Context(), builderID(c), r)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingCatalog(catalog))
}

// PreviewEstimate godoc
// @Summary Run the estimate engine on the saved catalog
// @Tags pricing
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body request.SurveyPayloadRequest true "Survey answers"
// @Success 200 {object} response.EstimateResponse
// @Router /v1/builder/pricing/preview [post]
func (h *BuilderHandler) PreviewEstimate(c *gin.Context) {
	var req request.SurveyPayloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	res, err := h.usecase.PreviewEstimate(c.Request.Context(), builderID(c), req.ToPayload())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateResult(res))
}

// pricingUpload accepts a multipart "file" field or a raw workbook body.
func pricingUpload(c *gin.Context) (io.Reader, func(), error) {
	if fh, err := c.FormFile("file"); err == nil {
		if fh.Size > maxPricingFileSize {
			return nil, nil, errors.New("pricing workbook too large")
		}
		f, err := fh.Open()
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil, nil, errors.New("missing pricing workbook")
	}
	return io.LimitReader(c.Request.Body, maxPricingFileSize), func() {}, nil
}

func builderID(c *gin.Context) string {
	b, _ := middleware.CurrentBuilder(c)
	return b.ID
}

func mapBuilderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBuilderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBuilderNotFound):
		return pkg.NewDomainErrorSimple("BUILDER_NOT_FOUND", "Builder not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPricingMode):
		return pkg.NewDomainErrorSimple("INVALID_PRICING_MODE", "Pricing mode must be final or base", http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidPricingItem):
		return pkg.NewDomainError("INVALID_PRICING_ITEM", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSpreadsheet):
		return pkg.NewDomainError("INVALID_SPREADSHEET", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSpreadsheetNotEnabled):
		return pkg.NewDomainErrorSimple("SPREADSHEET_NOT_ENABLED", "Pricing spreadsheets are not available", http.StatusNotImplemented)
	case errors.Is(err, usecase.ErrSurveySlugUnavailable):
		return pkg.NewDomainErrorSimple("SURVEY_SLUG_UNAVAILABLE", "Could not allocate a survey link, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
