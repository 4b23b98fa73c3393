package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/application/user/usecases"
	"github.com/cartonworks/stockline/internal/shared/id"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

type UserHandler struct {
	listUC   usecases.ListUsersExecutor
	getUC    usecases.GetUserExecutor
	updateUC usecases.UpdateUserExecutor
	deleteUC usecases.DeleteUserExecutor
	logger   logger.Interface
}

func NewUserHandler(
	listUC usecases.ListUsersExecutor,
	getUC usecases.GetUserExecutor,
	updateUC usecases.UpdateUserExecutor,
	deleteUC usecases.DeleteUserExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// UpdateUserRequest changes only the fields present in the body.
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
	Role  *string `json:"role" binding:"omitempty,oneof=admin employee"`
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Search:    strings.TrimSpace(c.Query("search")),
		Role:      c.Query("role"),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.TotalCount, result.Page, result.PageSize)
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetUserQuery{SID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		SID:   sid,
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixUser, "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{SID: sid, ActingUserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
