package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// Uploader is the object-store boundary: put bytes under a name, get a
// permanent public URL back.
type Uploader interface {
	UploadBytes(ctx context.Context, data []byte, name, folder string) (string, error)
}

// Transcoder converts a legacy image payload into a browser-friendly
// raster format, returning the new bytes and extension.
type Transcoder interface {
	Transcode(data []byte) ([]byte, string, error)
}

// ImageService is the ingestion pipeline: any image attached to a
// catalog entity passes through here before it is persisted, so only
// durable URLs ever reach the database.
//
//   - absolute URLs pass through unchanged (re-saving a hosted image
//     is a no-op)
//   - data-URL payloads are decoded; HEIC/HEIF payloads are transcoded
//     to JPEG first, falling back to the original bytes if the
//     transcode fails
//   - the resulting bytes are uploaded under a fresh UUID name; upload
//     failures propagate, because an un-persisted image cannot be
//     referenced later
type ImageService struct {
	uploader   Uploader
	transcoder Transcoder
	folder     string
}

func NewImageService(uploader Uploader, transcoder Transcoder, folder string) *ImageService {
	return &ImageService{uploader: uploader, transcoder: transcoder, folder: folder}
}

// Ingest converts one raw image into a durable URL.
func (s *ImageService) Ingest(ctx context.Context, image string) (string, error) {
	if image == "" || strings.HasPrefix(image, "http") {
		return image, nil
	}
	if !strings.HasPrefix(image, "data:image") {
		// Not a data URL — maybe a path or something else.
		return image, nil
	}

	data, ext, err := decodeDataURL(image)
	if err != nil {
		return "", err
	}

	if isLegacyCameraFormat(ext) {
		converted, newExt, err := s.transcoder.Transcode(data)
		if err != nil {
			// Degrade gracefully: store the original payload rather than
			// failing the whole save.
			log.Printf("[image] transcode of .%s payload failed, keeping original: %v", ext, err)
		} else {
			data, ext = converted, newExt
		}
	}

	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	url, err := s.uploader.UploadBytes(ctx, data, name, s.folder)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return url, nil
}

// IngestAll ingests a batch in input order. A transcode failure inside
// one image never blocks the others (it degrades inside Ingest); an
// upload failure fails the batch.
func (s *ImageService) IngestAll(ctx context.Context, images []string) ([]string, error) {
	if len(images) == 0 {
		return []string{}, nil
	}
	out := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.Ingest(ctx, img)
		if err != nil {
			return nil, err
		}
		out = append(out, url)
	}
	return out, nil
}

// decodeDataURL splits "data:image/<ext>;base64,<payload>" into raw
// bytes and the declared extension.
func decodeDataURL(image string) ([]byte, string, error) {
	semi := strings.Index(image, ";base64,")
	if semi < 0 {
		return nil, "", fmt.Errorf("image payload is not base64-encoded")
	}
	ext := strings.TrimPrefix(image[:semi], "data:image/")
	if ext == "" {
		return nil, "", fmt.Errorf("image payload has no media type")
	}

	data, err := base64.StdEncoding.DecodeString(image[semi+len(";base64,"):])
	if err != nil {
		return nil, "", fmt.Errorf("decode image payload: %w", err)
	}
	return data, ext, nil
}

// HEIC/HEIF come from phone cameras and most browsers cannot render
// them.
func isLegacyCameraFormat(ext string) bool {
	switch strings.ToLower(ext) {
	case "heic", "heif":
		return true
	}
	return false
}
