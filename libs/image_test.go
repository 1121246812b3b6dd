package libs

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr bool
	}{
		{"png ok", &multipart.FileHeader{Filename: "logo.png", Size: 1024}, false},
		{"upper case ext", &multipart.FileHeader{Filename: "LOGO.JPG", Size: 1024}, false},
		{"too large", &multipart.FileHeader{Filename: "logo.png", Size: 6 << 20}, true},
		{"pdf rejected", &multipart.FileHeader{Filename: "menu.pdf", Size: 10}, true},
		{"missing", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageFile(tt.header, 5<<20)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
