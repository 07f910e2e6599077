package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-manager/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	out := make([]userResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toUserResponse(v))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toUserResponse(*view))
}

// Create handles POST /api/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return toHTTPError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/users/"+view.ID)
	return c.JSON(http.StatusCreated, toUserResponse(*view))
}

// Update handles PUT /api/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string             true  "User ID"
// @Param        body  body  updateUserRequest  true  "User details"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       c.Param("id"),
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toUserResponse(v ports.UserView) userResponse {
	return userResponse{
		ID:        v.ID,
		Username:  v.Username,
		Email:     v.Email,
		RoleID:    v.RoleID,
		RoleName:  v.RoleName,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}
