package libs

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"kadima-pos/config"
)

var ErrCloudinaryNotConfigured = errors.New("cloudinary credentials not configured")

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinaryUploader prefers the separate credential variables and falls
// back to CLOUDINARY_URL.
func NewCloudinaryUploader(cfg *config.Config, logger *zap.Logger) (*CloudinaryUploader, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	switch {
	case cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "":
		cld, err = cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case cfg.CloudinaryURL != "":
		cld, err = cloudinary.NewFromURL(cfg.CloudinaryURL)
	default:
		return nil, ErrCloudinaryNotConfigured
	}
	if err != nil {
		return nil, errors.Wrap(err, "init cloudinary")
	}

	return &CloudinaryUploader{cld: cld, logger: logger.Named("cloudinary")}, nil
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (string, string, error) {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(base, " ", "_"))

	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", "", errors.Wrap(err, "upload to cloudinary")
	}
	if resp == nil {
		return "", "", errors.New("cloudinary response is nil")
	}

	url := resp.SecureURL
	if url == "" {
		url = resp.URL
	}
	if url == "" {
		return "", "", errors.New("cloudinary returned no url")
	}

	u.logger.Info("image uploaded", zap.String("public_id", resp.PublicID))
	return url, resp.PublicID, nil
}

func (u *CloudinaryUploader) DeleteImage(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	result, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return errors.Wrap(err, "delete from cloudinary")
	}
	if result.Result != "ok" && result.Result != "not found" {
		return errors.Errorf("cloudinary deletion failed: %s", result.Result)
	}
	return nil
}
