package file

import (
	"errors"
	"mime"
	"path/filepath"

	"movieflix/config"
	"movieflix/domain"
	"movieflix/services/storage"
	"movieflix/types"

	"github.com/gofiber/fiber/v2"
)

// Controller serves poster files; posterUrl values produced by the
// catalog resolve here.
type Controller struct {
	files storage.FileService
	cfg   *config.Config
}

func NewFileController(files storage.FileService, cfg *config.Config) *Controller {
	return &Controller{files: files, cfg: cfg}
}

// ServeFile handles GET /file/:filename.
func (fc *Controller) ServeFile(c *fiber.Ctx) error {
	filename := c.Params("filename")

	reader, err := fc.files.GetResourceFile(fc.cfg.PosterDir, filename)
	if err != nil {
		if errors.Is(err, domain.ErrFileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrorResponse{
				Message: "File not found",
				Status:  fiber.StatusNotFound,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Internal server error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(reader)
}
