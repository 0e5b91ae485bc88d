package handler

import (
	"net/http"

	"studyhub/internal/delivery/api/response"
	"studyhub/internal/domain/entity"
	domainerrors "studyhub/internal/domain/errors"
	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
}

// ShareHandler builds deep links to a record.
type ShareHandler struct {
	shareUC usecase.ShareUsecase
}

// NewShareHandler is the constructor for ShareHandler
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{shareUC: params.ShareUC}
}

// ShareRequest identifies the shared record
type ShareRequest struct {
	Kind         string `param:"kind"`
	ResourceID   string `param:"id"`
	DepartmentID string `query:"dept"`
}

// Link returns the deep link and the copy confirmation notice.
func (h *ShareHandler) Link(c echo.Context) error {
	input, err := bindShare(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.shareUC.Link(input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// QRCode renders the deep link as a PNG.
func (h *ShareHandler) QRCode(c echo.Context) error {
	input, err := bindShare(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.shareUC.QRCode(input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}

func bindShare(c echo.Context) (usecase.ShareInput, error) {
	var req ShareRequest
	if err := c.Bind(&req); err != nil {
		return usecase.ShareInput{}, domainerrors.ErrInvalidInput.WithDetails("invalid share request")
	}

	kind, ok := entity.ParseKind(req.Kind)
	if !ok {
		return usecase.ShareInput{}, domainerrors.ErrInvalidInput.WithDetails("unknown resource kind")
	}

	return usecase.ShareInput{Kind: kind, DepartmentID: req.DepartmentID, ResourceID: req.ResourceID}, nil
}
