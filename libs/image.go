package libs

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func ValidateImageFile(header *multipart.FileHeader, maxSize int64) error {
	if header == nil {
		return errors.New("file is required")
	}
	if header.Size > maxSize {
		return errors.Errorf("file too large (max %d bytes)", maxSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		return errors.New("invalid file type, only jpg, jpeg, png, gif, webp allowed")
	}
	return nil
}
