package handler

import (
	"net/http"

	"studyhub/internal/delivery/api/response"
	"studyhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// DepartmentHandler serves the shared department table.
type DepartmentHandler struct{}

// NewDepartmentHandler is the constructor for DepartmentHandler
func NewDepartmentHandler() *DepartmentHandler {
	return &DepartmentHandler{}
}

// List returns every known department in display order.
func (h *DepartmentHandler) List(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.Departments())
}
