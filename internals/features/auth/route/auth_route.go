package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "classroom_backend/internals/features/auth/controller"
	"classroom_backend/internals/helpers/logger"
	"classroom_backend/internals/helpers/mailer"
	"classroom_backend/internals/middlewares"
)

// Base: /api/auth
func AuthRoutes(r fiber.Router, db *gorm.DB, log logger.Logger, m mailer.Mailer) {
	ctrl := authController.NewAuthController(db, log, m)

	g := r.Group("/auth")
	g.Post("/register", ctrl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
}
