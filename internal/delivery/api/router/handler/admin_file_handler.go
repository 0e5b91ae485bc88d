package handler

import (
	"mime"
	"net/http"

	"studyhub/config"
	"studyhub/internal/delivery/api/response"
	deliverycontext "studyhub/internal/delivery/context"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// multipartOverhead is allowed on top of the file limit for boundaries and the other form fields.
const multipartOverhead = 1 << 20

// AdminFileHandlerParams holds dependencies for AdminFileHandler, injected by Fx.
type AdminFileHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Config   *config.Config
}

// AdminFileHandler serves the admin file panel.
type AdminFileHandler struct {
	uploadUC usecase.UploadUsecase
	maxBody  int64
}

// NewAdminFileHandler is the constructor for AdminFileHandler
func NewAdminFileHandler(params AdminFileHandlerParams) *AdminFileHandler {
	maxBody := int64(20 << 20)
	if params.Config.Storage != nil && params.Config.Storage.MaxUploadBytes > 0 {
		maxBody = params.Config.Storage.MaxUploadBytes
	}

	return &AdminFileHandler{
		uploadUC: params.UploadUC,
		maxBody:  maxBody + multipartOverhead,
	}
}

// ListFilesRequest represents the query parameters of the upload listing
type ListFilesRequest struct {
	Kind string `query:"kind"`
}

// Upload stores a PDF sent as multipart fields "file", "kind" and "course_code".
func (h *AdminFileHandler) Upload(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, h.maxBody)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return response.HandleAppError(c, domainerrors.ErrUploadTooLarge)
		}

		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("multipart field \"file\" is required"))
	}

	kind, ok := entity.ParseKind(c.FormValue("kind"))
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("unknown resource kind"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("uploaded file could not be read"))
	}
	defer file.Close()

	upload, err := h.uploadUC.Upload(c.Request().Context(), usecase.UploadInput{
		Kind:       kind,
		CourseCode: c.FormValue("course_code"),
		FileName:   fileHeader.Filename,
		Size:       fileHeader.Size,
		Body:       file,
		UploadedBy: userID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, upload)
}

// List returns uploads newest first, optionally filtered by kind.
func (h *AdminFileHandler) List(c echo.Context) error {
	var req ListFilesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing parameters", nil)
	}

	var kind entity.Kind
	if req.Kind != "" {
		parsed, ok := entity.ParseKind(req.Kind)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("unknown resource kind"))
		}
		kind = parsed
	}

	uploads, err := h.uploadUC.List(c.Request().Context(), kind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, uploads)
}

// Download streams the stored PDF.
func (h *AdminFileHandler) Download(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("invalid upload id"))
	}

	upload, rc, err := h.uploadUC.Open(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer rc.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": upload.FileName}))

	return c.Stream(http.StatusOK, upload.ContentType, rc)
}

// Delete removes the stored object and its metadata.
func (h *AdminFileHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("invalid upload id"))
	}

	if err := h.uploadUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
