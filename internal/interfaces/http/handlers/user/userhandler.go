package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/user/usecases"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/config"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     int    `json:"role" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UserHandler struct {
	createUserUC     usecases.CreateUserExecutor
	listUsersUC      usecases.ListUsersExecutor
	deactivateUserUC usecases.DeactivateUserExecutor
	authenticateUC   usecases.AuthenticateUserExecutor
	changePasswordUC usecases.ChangePasswordExecutor
	passwordCfg      config.PasswordConfig
	logger           logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	deactivateUserUC usecases.DeactivateUserExecutor,
	authenticateUC usecases.AuthenticateUserExecutor,
	changePasswordUC usecases.ChangePasswordExecutor,
	passwordCfg config.PasswordConfig,
) *UserHandler {
	return &UserHandler{
		createUserUC:     createUserUC,
		listUsersUC:      listUsersUC,
		deactivateUserUC: deactivateUserUC,
		authenticateUC:   authenticateUC,
		changePasswordUC: changePasswordUC,
		passwordCfg:      passwordCfg,
		logger:           logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), usecases.AuthenticateUserCommand{
		Email:          req.Email,
		Password:       req.Password,
		MaxPasswordAge: time.Duration(h.passwordCfg.MaxAgeDays) * 24 * time.Hour,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangePassword handles POST /auth/change-password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, _ := middleware.GetUserID(c)

	if err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// CreateUser handles POST /utilisateurs (admin only)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.User, "User created successfully")
}

// ListUsers handles GET /utilisateurs (admin only)
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}

// DeactivateUser handles POST /utilisateurs/:id/deactivate (admin only)
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	actorID, _ := middleware.GetUserID(c)

	if err := h.deactivateUserUC.Execute(c.Request.Context(), usecases.DeactivateUserCommand{
		UserID:  uint(userID),
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deactivated", nil)
}
