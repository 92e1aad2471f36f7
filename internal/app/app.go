package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MohamedMedan1/Tasque-Api/internal/config"
	httpx "github.com/MohamedMedan1/Tasque-Api/internal/http"
	"github.com/MohamedMedan1/Tasque-Api/internal/http/handlers"
	"github.com/MohamedMedan1/Tasque-Api/internal/infrastructure/auth"
	"github.com/MohamedMedan1/Tasque-Api/internal/infrastructure/database"
	"github.com/MohamedMedan1/Tasque-Api/internal/infrastructure/notifications"
	"github.com/MohamedMedan1/Tasque-Api/internal/infrastructure/repositories"
	"github.com/MohamedMedan1/Tasque-Api/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services. The signing key and hash cost are fixed for
	// the life of the process.
	passwordSvc := auth.NewPasswordService(cfg.BcryptCost)
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	resetSvc := auth.NewResetTokenService(cfg.ResetTTL)
	notificationSvc := notifications.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	taskRepo := repositories.NewTaskRepository(gdb)
	throttle := repositories.NewResetThrottle(rdb, cfg.ResetResendWindow)

	// Services
	authSvc := services.NewAuthService(userRepo, taskRepo, passwordSvc, tokenSvc, resetSvc, notificationSvc, throttle)
	userSvc := services.NewUserService(userRepo)
	taskSvc := services.NewTaskService(taskRepo)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	userH := handlers.NewUserHandlers(userSvc)
	taskH := handlers.NewTaskHandlers(taskSvc)

	r := httpx.BuildRouter(authH, userH, taskH, tokenSvc, userRepo)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
