package services

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/jdeng/goheif"
)

// HeifTranscoder converts HEIC/HEIF camera payloads into JPEG.
type HeifTranscoder struct {
	// Quality passed to the JPEG encoder; zero means jpeg.DefaultQuality.
	Quality int
}

func (t *HeifTranscoder) Transcode(data []byte) ([]byte, string, error) {
	img, err := goheif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode heif: %w", err)
	}

	quality := t.Quality
	if quality == 0 {
		quality = jpeg.DefaultQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "jpeg", nil
}
