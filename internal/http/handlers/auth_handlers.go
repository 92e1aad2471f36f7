package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/domain"
	"github.com/MohamedMedan1/Tasque-Api/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// SignupRequest represents registration input
type SignupRequest struct {
	Name            string `json:"name" binding:"required,min=3,max=20"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=16"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}

// LoginRequest represents login input
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest carries the account email for the reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the replacement password
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8,max=16"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
}

// UpdatePasswordRequest carries a logged-in password change
type UpdatePasswordRequest struct {
	CurrentPassword    string `json:"currentPassword" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8,max=16"`
	NewPasswordConfirm string `json:"newPasswordConfirm" binding:"required,eqfield=NewPassword"`
}

// ChangeRoleRequest carries the new role for an account
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// Signup handles user registration
func (h *AuthHandlers) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.Wrap(domain.KindValidation, err.Error(), err))
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		RenderError(c, err)
		return
	}

	sendToken(c, result)
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.E(domain.KindValidation, "please provide your email and password to log in"))
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RenderError(c, err)
		return
	}

	sendToken(c, result)
}

// Logout expires the jwt cookie. Tokens themselves stay stateless; the server
// keeps no session to tear down.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetCookie("jwt", "", 10, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ForgotPassword generates a reset secret and emails its URL to the account.
func (h *AuthHandlers) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.E(domain.KindValidation, "please provide your email"))
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), req.Email, requestBaseURL(c)); err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Token sent to email!",
	})
}

// ResetPassword consumes a reset secret and sets a new password.
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.E(domain.KindValidation, "please provide new password and password confirm"))
		return
	}

	result, err := h.authSvc.ResetPassword(c.Request.Context(), c.Param("resetToken"), req.Password)
	if err != nil {
		RenderError(c, err)
		return
	}

	sendToken(c, result)
}

// UpdatePassword changes the password of the authenticated user.
func (h *AuthHandlers) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.E(domain.KindValidation, "please provide your old password and the new one and its confirm"))
		return
	}

	user := middleware.CurrentUser(c)
	result, err := h.authSvc.UpdatePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		RenderError(c, err)
		return
	}

	sendToken(c, result)
}

// ChangeUserRole sets the role of another account. Admin only.
func (h *AuthHandlers) ChangeUserRole(c *gin.Context) {
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.E(domain.KindValidation, "please provide the new role of user!"))
		return
	}

	userID, err := paramID(c, "userId")
	if err != nil {
		RenderError(c, err)
		return
	}

	user, err := h.authSvc.ChangeRole(c.Request.Context(), userID, req.Role)
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// DeleteUser removes an account and its tasks. Admin only.
func (h *AuthHandlers) DeleteUser(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		RenderError(c, err)
		return
	}

	if err := h.authSvc.DeleteUser(c.Request.Context(), userID); err != nil {
		RenderError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// sendToken renders the token + user payload shared by signup, login and the
// password mutation flows.
func sendToken(c *gin.Context, result *domain.AuthResult) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  result.Token,
		"user":   result.User,
	})
}

func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, domain.E(domain.KindValidation, "please provide a valid ID")
	}
	return uint(id), nil
}
