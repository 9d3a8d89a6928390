package controllers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SanzharBissenali/tazaQala/models"
)

// uploadTimeout is longer than opTimeout: the media host transforms
// the image before answering.
const uploadTimeout = 30 * time.Second

// ImageUploader turns an inline-encoded image into a hosted URL.
// *upload.Cloudinary implements it; nil means hosting is disabled.
type ImageUploader interface {
	Upload(ctx context.Context, image string) (models.UploadResult, error)
}

// UploadHandler serves POST /api/upload. It keeps no record of the
// upload; the returned URL is only persisted if the client includes
// it in a subsequent report submission.
type UploadHandler struct {
	uploader ImageUploader
}

func NewUploadHandler(uploader ImageUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	var p models.UploadPayload
	if err := c.BodyParser(&p); err != nil || strings.TrimSpace(p.Image) == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(models.UploadErrorResp{Error: "No image provided"})
	}

	if h.uploader == nil {
		return uploadErr(c, "image hosting is not configured")
	}

	ctx, cancel := context.WithTimeout(c.Context(), uploadTimeout)
	defer cancel()
	res, err := h.uploader.Upload(ctx, p.Image)
	if err != nil {
		return uploadErr(c, err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func uploadErr(c *fiber.Ctx, details string) error {
	log.Printf("upload: %s", details)
	return c.Status(fiber.StatusInternalServerError).
		JSON(models.UploadErrorResp{Error: "Upload failed", Details: details})
}
