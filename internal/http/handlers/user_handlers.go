package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/domain"
	"github.com/MohamedMedan1/Tasque-Api/internal/http/middleware"
)

// UserHandlers handles account profile and admin listing requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// userSummary is the listing projection: never more than name and email.
type userSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateMeRequest accepts the raw body so disallowed fields can be reported
// back instead of silently dropped.
type UpdateMeRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
	Role            string `json:"role"`
	IsActive        *bool  `json:"isActive"`
}

// ListUsers returns all accounts. Admin only.
func (h *UserHandlers) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		RenderError(c, err)
		return
	}
	sendUserList(c, users)
}

// ListActiveUsers returns active accounts only. Admin only.
func (h *UserHandlers) ListActiveUsers(c *gin.Context) {
	users, err := h.userSvc.ListActiveUsers(c.Request.Context())
	if err != nil {
		RenderError(c, err)
		return
	}
	sendUserList(c, users)
}

// UpdateMe updates the caller's own name and email. Anything else in the body
// is refused with a note pointing at the right route.
func (h *UserHandlers) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RenderError(c, domain.Wrap(domain.KindValidation, err.Error(), err))
		return
	}

	var notes []string
	if req.Password != "" || req.PasswordConfirm != "" {
		notes = append(notes, fmt.Sprintf("Password can't be updated here. Use %s/api/v1/users/updatePassword", requestBaseURL(c)))
	}
	if req.Role != "" {
		notes = append(notes, `Field "role" cannot be updated via this route.`)
	}
	if req.IsActive != nil {
		notes = append(notes, `Field "isActive" cannot be updated via this route.`)
	}

	user := middleware.CurrentUser(c)
	updated, err := h.userSvc.UpdateProfile(c.Request.Context(), user.ID, req.Name, req.Email)
	if err != nil {
		RenderError(c, err)
		return
	}

	body := gin.H{"status": "success", "data": gin.H{"user": updated}}
	if len(notes) > 0 {
		body["notes"] = notes
	}
	c.JSON(http.StatusOK, body)
}

// DeleteMe deactivates the caller's account without removing the record.
func (h *UserHandlers) DeleteMe(c *gin.Context) {
	user := middleware.CurrentUser(c)

	updated, err := h.userSvc.Deactivate(c.Request.Context(), user.ID)
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"user": updated},
	})
}

// ActiveRatio reports the activated/deactivated aggregate. Admin only.
func (h *UserHandlers) ActiveRatio(c *gin.Context) {
	ratio, err := h.userSvc.ActiveRatio(c.Request.Context())
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": ratio})
}

// Performance reports per-user task completion counts. Admin only.
func (h *UserHandlers) Performance(c *gin.Context) {
	rows, err := h.userSvc.Performance(c.Request.Context())
	if err != nil {
		RenderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rows})
}

func sendUserList(c *gin.Context, users []domain.User) {
	summaries := make([]userSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, userSummary{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"results": len(summaries),
		"data":    summaries,
	})
}
