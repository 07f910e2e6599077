package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/core/domain"
	"github.com/99minutos/user-manager/internal/core/ports"
)

// RoleHandler handles HTTP requests for roles.
type RoleHandler struct {
	service ports.RoleService
}

func NewRoleHandler(service ports.RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List handles GET /api/roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   roleResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.service.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	out := make([]roleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/roles/:id.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role ID"
// @Success      200  {object}  roleResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Create handles POST /api/roles.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/roles/"+role.ID)
	return c.JSON(http.StatusCreated, toRoleResponse(role))
}

// Update handles PUT /api/roles/:id.
//
// @Summary      Rename a role
// @Tags         roles
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string       true  "Role ID"
// @Param        body  body  roleRequest  true  "Role"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), req.Name); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/roles/:id.
//
// @Summary      Delete a role
// @Tags         roles
// @Security     BearerAuth
// @Param        id   path  string  true  "Role ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{ID: r.ID, Name: r.Name}
}
