package handlers

import (
	"strconv"

	"autohub/helper"
	"autohub/models"
	"autohub/services"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the admin user-management surface.
type UserHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(authService services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), h.Helper.GetStatusCode(err), `listUsersFailed`)
		return
	}

	h.Helper.SendSuccess(c, "Users loaded", users)
}

func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.UpdateUserRole(uint(id), req.Role)
	if err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), h.Helper.GetStatusCode(err), `roleUpdateFailed`)
		return
	}

	h.Helper.SendSuccess(c, "Role updated", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.authService.DeleteUser(uint(id)); err != nil {
		h.Helper.SendError(c, err.Error(), h.Helper.EmptyJsonMap(), h.Helper.GetStatusCode(err), `deleteUserFailed`)
		return
	}

	h.Helper.SendSuccess(c, "User deleted", h.Helper.EmptyJsonMap())
}
