package handler

import (
	"net/http"

	"studyhub/internal/delivery/api/response"
	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	FileUC usecase.FileUsecase
}

// FileHandler resolves course archives on the file host.
type FileHandler struct {
	fileUC usecase.FileUsecase
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{fileUC: params.FileUC}
}

// NotesLinkRequest represents the query parameters of a notes lookup
type NotesLinkRequest struct {
	CourseCode string `query:"course_code"`
	Uploader   string `query:"uploader"`
	Redirect   bool   `query:"redirect"`
}

// PyqLinkRequest represents the query parameters of a past-question lookup
type PyqLinkRequest struct {
	CourseCode string `query:"course_code"`
	Redirect   bool   `query:"redirect"`
}

// LinkResponse carries the direct-open link.
type LinkResponse struct {
	URL string `json:"url"`
}

// NotesLink resolves "{uploader}.zip" inside the course folder.
func (h *FileHandler) NotesLink(c echo.Context) error {
	var req NotesLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notes lookup", nil)
	}

	link, err := h.fileUC.ResolveNotesLink(c.Request().Context(), req.CourseCode, req.Uploader)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, link, req.Redirect)
}

// PyqLink resolves "pyq.zip" inside the course folder.
func (h *FileHandler) PyqLink(c echo.Context) error {
	var req PyqLinkRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pyq lookup", nil)
	}

	link, err := h.fileUC.ResolvePyqLink(c.Request().Context(), req.CourseCode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, link, req.Redirect)
}

// respond either returns the link or sends the browser straight to it.
func (h *FileHandler) respond(c echo.Context, link string, redirect bool) error {
	if redirect {
		return c.Redirect(http.StatusFound, link)
	}

	return response.Success(c, http.StatusOK, LinkResponse{URL: link})
}
