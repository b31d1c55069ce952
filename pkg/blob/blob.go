// Package blob validates and stores user-supplied files in the platform
// blob bucket. Profile pictures arrive either as URLs (stored as-is) or
// base64 payloads (decoded, sniffed and uploaded).
package blob

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	// Registered decoders for format sniffing.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"plek-backend/pkg/firebase"
)

const (
	// MaxImageSize is the profile-image cap, mirrored in storage.rules.
	MaxImageSize = 5 * 1024 * 1024

	maxDimension = 2048
	minDimension = 50
	maxURLLength = 2048
)

var allowedFormats = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// IsURL reports whether the payload is a link rather than encoded bytes.
func IsURL(data string) bool {
	return strings.HasPrefix(data, "http://") || strings.HasPrefix(data, "https://")
}

// decodeBase64 strips an optional data-URI prefix and decodes the payload.
func decodeBase64(data string) ([]byte, error) {
	encoded := data
	if strings.HasPrefix(data, "data:") {
		parts := strings.SplitN(data, ",", 2)
		if len(parts) != 2 {
			return nil, errors.New("invalid data URI")
		}
		encoded = parts[1]
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.New("invalid base64 data")
	}
	return decoded, nil
}

// ValidateImage checks an image payload (URL or base64) against the
// profile-picture constraints. Returns the sniffed format for base64
// payloads, empty string for URLs.
func ValidateImage(imageData string) (string, error) {
	if IsURL(imageData) {
		if len(imageData) > maxURLLength {
			return "", errors.New("URL is too long")
		}
		return "", nil
	}

	decoded, err := decodeBase64(imageData)
	if err != nil {
		return "", errors.New("invalid image data")
	}

	if len(decoded) > MaxImageSize {
		return "", fmt.Errorf("image size exceeds %dMB limit", MaxImageSize/1024/1024)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(decoded))
	if err != nil {
		return "", errors.New("invalid image format or corrupted data")
	}
	if _, ok := allowedFormats[format]; !ok {
		return "", errors.New("invalid image format. Allowed formats: JPEG, PNG, GIF, WEBP")
	}

	if cfg.Width > maxDimension || cfg.Height > maxDimension {
		return "", fmt.Errorf("image dimensions exceed %dx%d pixels", maxDimension, maxDimension)
	}
	if cfg.Width < minDimension || cfg.Height < minDimension {
		return "", fmt.Errorf("image dimensions must be at least %dx%d pixels", minDimension, minDimension)
	}

	return format, nil
}

// Service uploads files to the storage bucket.
type Service struct {
	bucket *firebase.StorageBucket
}

func NewService(bucket *firebase.StorageBucket) *Service {
	return &Service{bucket: bucket}
}

// UploadImage validates a base64 image and writes it under folderPath,
// returning the public URL. URL payloads pass through unchanged.
func (s *Service) UploadImage(ctx context.Context, imageData, fileName, folderPath string) (string, error) {
	if IsURL(imageData) {
		return imageData, nil
	}

	format, err := ValidateImage(imageData)
	if err != nil {
		return "", err
	}

	decoded, err := decodeBase64(imageData)
	if err != nil {
		return "", err
	}

	objectPath := fmt.Sprintf("%s/%s_%s", folderPath, uuid.New().String(), fileName)

	obj := s.bucket.Handle.Object(objectPath)
	w := obj.NewWriter(ctx)
	w.ContentType = allowedFormats[format]
	if _, err := w.Write(decoded); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to upload file to storage: %w", err)
	}

	// Profile images are public-read per the bucket rules.
	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to publish file: %w", err)
	}

	log.Printf("[Blob] File uploaded to %s", objectPath)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket.Name, objectPath), nil
}
