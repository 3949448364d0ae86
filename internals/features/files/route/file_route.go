package route

import (
	"github.com/gofiber/fiber/v2"

	"classroom_backend/internals/configs"
	fileCtrl "classroom_backend/internals/features/files/controller"
	"classroom_backend/internals/helpers/logger"
)

func FileRoutes(router fiber.Router, log logger.Logger) {
	ctrl := fileCtrl.NewFileController(configs.UploadDir, log)

	g := router.Group("/files")
	g.Post("/upload", ctrl.Upload)
	g.Get("/:filename", ctrl.Serve)
}
