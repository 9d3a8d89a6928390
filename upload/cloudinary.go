package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/SanzharBissenali/tazaQala/config"
	"github.com/SanzharBissenali/tazaQala/models"
)

// transformation bounds stored photos to 800x600 and lets the host
// pick quality and format, matching what the frontend expects back.
const transformation = "c_limit,w_800,h_600/q_auto/f_auto"

// Cloudinary is the image-hosting gateway: a stateless pass-through
// that forwards inline base64 payloads and returns the hosted URL.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinary(cfg config.Config) (*Cloudinary, error) {
	if cfg.CloudinaryCloud == "" || cfg.CloudinaryKey == "" || cfg.CloudinarySecret == "" {
		return nil, errors.New("cloudinary credentials are not set")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld, folder: cfg.UploadFolder}, nil
}

// Upload sends one image to Cloudinary. image is anything the host
// accepts inline, in practice a data URI from the browser.
func (u *Cloudinary) Upload(ctx context.Context, image string) (models.UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:         u.folder,
		Transformation: transformation,
	})
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	// The SDK reports API-level rejections in the body, not in err.
	if resp.Error.Message != "" {
		return models.UploadResult{}, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return models.UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}
