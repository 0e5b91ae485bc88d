package handler

import (
	"net/http"

	"studyhub/internal/delivery/api/response"
	"studyhub/internal/domain/entity"
	"studyhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ResourceHandlerParams holds dependencies for ResourceHandler, injected by Fx.
type ResourceHandlerParams struct {
	fx.In

	ResourceUC usecase.ResourceUsecase
}

// ResourceHandler serves resource discovery.
type ResourceHandler struct {
	resourceUC usecase.ResourceUsecase
}

// NewResourceHandler is the constructor for ResourceHandler
func NewResourceHandler(params ResourceHandlerParams) *ResourceHandler {
	return &ResourceHandler{resourceUC: params.ResourceUC}
}

// SearchRequest represents the path and query parameters of a search
type SearchRequest struct {
	Kind         string `param:"kind"`
	DepartmentID string `query:"dept"`
	Term         string `query:"q"`
	SharedID     string `query:"shared"`
}

// Search returns the department's records of one kind, shared record first.
// A failed read still answers 200; the result's notices carry the failure.
func (h *ResourceHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid search parameters", nil)
	}

	kind, ok := entity.ParseKind(req.Kind)
	if !ok {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid input", "unknown resource kind")
	}

	result, err := h.resourceUC.Search(c.Request().Context(), usecase.SearchQuery{
		Kind:         kind,
		DepartmentID: req.DepartmentID,
		Term:         req.Term,
		SharedID:     req.SharedID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
