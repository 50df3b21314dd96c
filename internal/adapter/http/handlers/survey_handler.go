package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"estimatepro/internal/adapter/http/dto/request"
	"estimatepro/internal/adapter/http/dto/response"
	"estimatepro/internal/usecase"
	"estimatepro/internal/usecase/interfaces"
	"estimatepro/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errMalformedSubmission = errors.New("malformed survey submission")
	errPhotoTooLarge       = errors.New("photo exceeds the upload size limit")
	errPhotoTypeNotAllowed = errors.New("photo type not allowed")
)

// UploadPolicy bounds the photos accepted with a survey submission.
type UploadPolicy struct {
	MaxFileSize  int64
	MaxPhotos    int
	AllowedTypes []string
}

func (p UploadPolicy) allows(filename string) bool {
	if len(p.AllowedTypes) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, t := range p.AllowedTypes {
		if ext == t {
			return true
		}
	}
	return false
}

// SurveyHandler serves the public client survey.
type SurveyHandler struct {
	usecase usecase.ISurveyUseCase
	uploads UploadPolicy
}

func NewSurveyHandler(uc usecase.ISurveyUseCase, uploads UploadPolicy) *SurveyHandler {
	if uploads.MaxPhotos <= 0 {
		uploads.MaxPhotos = usecase.MaxSurveyPhotos
	}
	return &SurveyHandler{usecase: uc, uploads: uploads}
}

// GetSurvey godoc
// @Summary Public survey metadata
// @Tags survey
// @Produce json
// @Param slug path string true "Survey slug"
// @Success 200 {object} response.SurveyMetaResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/surveys/{slug} [get]
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	meta, err := h.usecase.GetSurvey(c.Request.Context(), c.Param("slug"))
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSurveyMeta(meta))
}

// SubmitSurvey godoc
// @Summary Submit a client survey
// @Description Accepts JSON or multipart/form-data with up to 5 "photos" files.
// @Tags survey
// @Accept json,mpfd
// @Produce json
// @Param slug path string true "Survey slug"
// @Param body body request.SurveySubmitRequest false "Survey answers"
// @Success 201 {object} response.SurveySubmitResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/surveys/{slug} [post]
func (h *SurveyHandler) SubmitSurvey(c *gin.Context) {
	slug := c.Param("slug")

	var (
		in  usecase.SubmitSurveyInput
		err error
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") || c.ContentType() == "application/x-www-form-urlencoded" {
		in, err = h.readForm(c)
	} else {
		in, err = readSurveyJSON(c)
	}
	if err != nil {
		zap.S().Warnf("[survey][handler] invalid submission slug=%s err=%v", slug, err)
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Submit(c.Request.Context(), slug, in)
	if err != nil {
		appErr := mapSurveyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	zap.S().Infof("[survey][handler] submit success slug=%s lead_id=%s photos=%d", slug, res.LeadID, len(in.Photos))

	c.JSON(http.StatusCreated, response.FromSubmitResult(res))
}

func readSurveyJSON(c *gin.Context) (usecase.SubmitSurveyInput, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return usecase.SubmitSurveyInput{}, err
	}
	if strings.TrimSpace(string(raw)) == "" {
		raw = []byte("{}")
	}

	var req request.SurveySubmitRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return usecase.SubmitSurveyInput{}, fmt.Errorf("%w: %v", errMalformedSubmission, err)
	}
	answers := map[string]any{}
	if err := json.Unmarshal(raw, &answers); err != nil {
		return usecase.SubmitSurveyInput{}, fmt.Errorf("%w: %v", errMalformedSubmission, err)
	}
	return submitInput(req, answers, nil), nil
}

func (h *SurveyHandler) readForm(c *gin.Context) (usecase.SubmitSurveyInput, error) {
	var (
		values url.Values
		files  []*multipart.FileHeader
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			return usecase.SubmitSurveyInput{}, fmt.Errorf("%w: %v", errMalformedSubmission, err)
		}
		values = url.Values(form.Value)
		files = form.File["photos"]
	} else {
		if err := c.Request.ParseForm(); err != nil {
			return usecase.SubmitSurveyInput{}, fmt.Errorf("%w: %v", errMalformedSubmission, err)
		}
		values = c.Request.PostForm
	}

	if len(files) > h.uploads.MaxPhotos {
		return usecase.SubmitSurveyInput{}, usecase.ErrTooManyPhotos
	}
	photos := make([]interfaces.Photo, 0, len(files))
	for _, fh := range files {
		p, err := h.readPhoto(fh)
		if err != nil {
			return usecase.SubmitSurveyInput{}, err
		}
		photos = append(photos, p)
	}

	return submitInput(request.SurveySubmitFromForm(values), request.FormAnswers(values), photos), nil
}

func (h *SurveyHandler) readPhoto(fh *multipart.FileHeader) (interfaces.Photo, error) {
	if !h.uploads.allows(fh.Filename) {
		return interfaces.Photo{}, fmt.Errorf("%w: %s", errPhotoTypeNotAllowed, fh.Filename)
	}
	if h.uploads.MaxFileSize > 0 && fh.Size > h.uploads.MaxFileSize {
		return interfaces.Photo{}, fmt.Errorf("%w: %s", errPhotoTooLarge, fh.Filename)
	}

	f, err := fh.Open()
	if err != nil {
		return interfaces.Photo{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return interfaces.Photo{}, err
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return interfaces.Photo{Filename: fh.Filename, ContentType: contentType, Data: data}, nil
}

func submitInput(req request.SurveySubmitRequest, answers map[string]any, photos []interfaces.Photo) usecase.SubmitSurveyInput {
	return usecase.SubmitSurveyInput{
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		DesignStyle:     req.DesignStyle,
		HomeAgeCategory: req.HomeAgeCategory,
		Payload:         req.ToPayload(),
		Answers:         answers,
		Photos:          photos,
	}
}

func mapSurveyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, errMalformedSubmission):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSurveyNotFound):
		return pkg.NewDomainErrorSimple("SURVEY_NOT_FOUND", "Survey not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingClientName):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_NAME", "Client name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTooManyPhotos):
		return pkg.NewDomainErrorSimple("TOO_MANY_PHOTOS", "At most 5 photos can be uploaded", http.StatusBadRequest)
	case errors.Is(err, errPhotoTooLarge):
		return pkg.NewDomainErrorSimple("PHOTO_TOO_LARGE", "Photo exceeds the upload size limit", http.StatusRequestEntityTooLarge)
	case errors.Is(err, errPhotoTypeNotAllowed):
		return pkg.NewDomainErrorSimple("PHOTO_TYPE_NOT_ALLOWED", "Photo type not allowed", http.StatusUnsupportedMediaType)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
