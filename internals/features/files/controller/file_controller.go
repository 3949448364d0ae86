package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "classroom_backend/internals/helpers"
	"classroom_backend/internals/helpers/logger"
)

type FileController struct {
	UploadDir string
	Log       logger.Logger
}

func NewFileController(uploadDir string, log logger.Logger) *FileController {
	return &FileController{UploadDir: uploadDir, Log: log}
}

// POST /upload
// Files are stored under the upload root as <uuid><original ext>.
func (ctrl *FileController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File must not be empty")
	}
	if fileHeader.Size == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "File must not be empty")
	}

	if err := os.MkdirAll(ctrl.UploadDir, 0o755); err != nil {
		ctrl.Log.Error("create upload dir: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not store file")
	}

	ext := filepath.Ext(fileHeader.Filename)
	uniqueName := uuid.NewString() + ext
	dst := filepath.Join(ctrl.UploadDir, uniqueName)

	if err := c.SaveFile(fileHeader, dst); err != nil {
		ctrl.Log.Error("save upload: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not store file: "+err.Error())
	}

	return helper.JsonOK(c, "File uploaded", fiber.Map{
		"url":      "/api/files/" + uniqueName,
		"filename": fileHeader.Filename,
		"size":     fmt.Sprintf("%d", fileHeader.Size),
	})
}

// GET /:filename
// Rejects any resolved path escaping the upload root, the root itself included.
func (ctrl *FileController) Serve(c *fiber.Ctx) error {
	resolved, err := resolveUnderRoot(ctrl.UploadDir, c.Params("filename"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid file access")
	}

	if _, err := os.Stat(resolved); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "File does not exist")
	}

	return c.SendFile(resolved)
}

// resolveUnderRoot maps a client-supplied filename to a path strictly below
// root. "." and ".." tricks resolve to the root or above it and are refused.
func resolveUnderRoot(root, filename string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	resolved := filepath.Clean(filepath.Join(abs, filename))
	if !strings.HasPrefix(resolved, abs+string(os.PathSeparator)) {
		return "", errors.New("path escapes upload root")
	}
	return resolved, nil
}
