package handlers

import (
	"github.com/gin-gonic/gin"

	"khata/internal/core/apperror"
	"khata/internal/core/id"
	"khata/internal/domain/auth"
	"khata/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(), service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}

// Register creates a new user. Admin only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	role := auth.Role(req.Role)
	if req.Role == "" {
		role = auth.RoleStaff
	}

	user, err := h.service.Register(c.Request.Context(), auth.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Role:     role,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, user.ID.String())
}

// ChangePassword rotates the caller's own password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	userID, err := id.Parse(c.GetString("user_id"))
	if err != nil {
		h.Error(c, apperror.NewUnauthorized("invalid token subject"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		h.Error(c, err)
		return
	}
	h.Success(c, "password changed")
}

// Users lists all users. Admin only.
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.service.Users(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(users, len(users)))
}

// DeleteUser removes a user. Admin only; self-deletion is rejected.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	if c.GetString("user_id") == userID.String() {
		h.Error(c, apperror.NewValidation("cannot delete your own account"))
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), userID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
