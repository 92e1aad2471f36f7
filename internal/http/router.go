package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/domain"
	"github.com/MohamedMedan1/Tasque-Api/internal/http/handlers"
	"github.com/MohamedMedan1/Tasque-Api/internal/http/middleware"
)

// BuildRouter wires the public routes, the protected ones behind the auth
// gate, and the admin group behind the role gate on top of it.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	th *handlers.TaskHandlers,
	tokenSvc domain.TokenService,
	userRepo domain.UserRepository,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	protect := middleware.Protect(tokenSvc, userRepo)

	users := r.Group("/api/v1/users")
	users.POST("/signup", ah.Signup)
	users.POST("/login", ah.Login)
	users.POST("/forgotPassword", ah.ForgotPassword)
	users.PATCH("/resetPassword/:resetToken", ah.ResetPassword)

	usersAuth := users.Group("", protect)
	usersAuth.GET("/logout", ah.Logout)
	usersAuth.PATCH("/updatePassword", ah.UpdatePassword)
	usersAuth.PATCH("/updateMe", uh.UpdateMe)
	usersAuth.PATCH("/deleteMe", uh.DeleteMe)

	usersAdmin := usersAuth.Group("", middleware.RestrictTo(domain.RoleAdmin))
	usersAdmin.GET("/performance", uh.Performance)
	usersAdmin.GET("/activeRatio", uh.ActiveRatio)
	usersAdmin.GET("/active", uh.ListActiveUsers)
	usersAdmin.PATCH("/changeUserRole/:userId", ah.ChangeUserRole)
	usersAdmin.GET("", uh.ListUsers)
	usersAdmin.DELETE("/:id", ah.DeleteUser)

	tasks := r.Group("/api/v1/tasks", protect)
	tasks.PATCH("/completeTask/:taskId", th.Complete)
	tasks.GET("/stats/pro", th.Stats)
	tasks.GET("", th.List)
	tasks.POST("", th.Create)
	tasks.GET("/:id", th.Get)
	tasks.PATCH("/:id", th.Update)
	tasks.DELETE("/:id", th.Delete)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "fail",
			"message": "can't find " + c.Request.URL.Path + " on the server",
		})
	})

	return r
}
