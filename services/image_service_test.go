package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	err     error
	uploads []string
	lastRaw []byte
}

func (f *fakeUploader) UploadBytes(_ context.Context, data []byte, name, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, name)
	f.lastRaw = data
	return "https://cdn.example.com/" + name, nil
}

type fakeTranscoder struct {
	err   error
	calls int
}

func (f *fakeTranscoder) Transcode(data []byte) ([]byte, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	return append([]byte("jpeg:"), data...), "jpeg", nil
}

func dataURL(mediaType string, payload []byte) string {
	return "data:image/" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestIngestPassthrough(t *testing.T) {
	up := &fakeUploader{}
	svc := NewImageService(up, &fakeTranscoder{}, "test")
	ctx := context.Background()

	for _, image := range []string{
		"",
		"https://cdn.example.com/existing.jpg",
		"http://other.host/img.png",
		"/local/path.jpg",
	} {
		got, err := svc.Ingest(ctx, image)
		require.NoError(t, err)
		assert.Equal(t, image, got, "already-durable references pass through")
	}
	assert.Empty(t, up.uploads, "passthrough never uploads")
}

func TestIngestDecodesAndUploads(t *testing.T) {
	up := &fakeUploader{}
	tr := &fakeTranscoder{}
	svc := NewImageService(up, tr, "test")

	url, err := svc.Ingest(context.Background(), dataURL("png", []byte("rawpng")))
	require.NoError(t, err)

	require.Len(t, up.uploads, 1)
	assert.True(t, strings.HasSuffix(up.uploads[0], ".png"), "extension from media type")
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/"))
	assert.Equal(t, []byte("rawpng"), up.lastRaw)
	assert.Zero(t, tr.calls, "non-HEIC payloads skip the transcoder")
}

func TestIngestTranscodesHeic(t *testing.T) {
	up := &fakeUploader{}
	tr := &fakeTranscoder{}
	svc := NewImageService(up, tr, "test")

	_, err := svc.Ingest(context.Background(), dataURL("heic", []byte("heicdata")))
	require.NoError(t, err)

	assert.Equal(t, 1, tr.calls)
	require.Len(t, up.uploads, 1)
	assert.True(t, strings.HasSuffix(up.uploads[0], ".jpeg"))
	assert.Equal(t, []byte("jpeg:heicdata"), up.lastRaw)
}

func TestIngestTranscodeFailureFallsBack(t *testing.T) {
	up := &fakeUploader{}
	tr := &fakeTranscoder{err: errors.New("corrupt")}
	svc := NewImageService(up, tr, "test")

	_, err := svc.Ingest(context.Background(), dataURL("heic", []byte("heicdata")))
	require.NoError(t, err, "a failed transcode degrades, it does not fail the save")

	require.Len(t, up.uploads, 1)
	assert.True(t, strings.HasSuffix(up.uploads[0], ".heic"), "original payload kept")
	assert.Equal(t, []byte("heicdata"), up.lastRaw)
}

func TestIngestUploadFailurePropagates(t *testing.T) {
	up := &fakeUploader{err: errors.New("storage down")}
	svc := NewImageService(up, &fakeTranscoder{}, "test")

	_, err := svc.Ingest(context.Background(), dataURL("png", []byte("raw")))
	assert.Error(t, err, "an un-persisted image cannot be referenced later")
}

func TestIngestBadPayload(t *testing.T) {
	svc := NewImageService(&fakeUploader{}, &fakeTranscoder{}, "test")
	ctx := context.Background()

	_, err := svc.Ingest(ctx, "data:image/png;base64,%%%not-base64%%%")
	assert.Error(t, err)

	_, err = svc.Ingest(ctx, "data:image/png,plainpayload")
	assert.Error(t, err, "only base64 data URLs are supported")
}

func TestIngestAllPreservesOrder(t *testing.T) {
	up := &fakeUploader{}
	svc := NewImageService(up, &fakeTranscoder{}, "test")

	urls, err := svc.IngestAll(context.Background(), []string{
		"https://cdn.example.com/first.jpg",
		dataURL("png", []byte("second")),
		"https://cdn.example.com/third.jpg",
	})
	require.NoError(t, err)
	require.Len(t, urls, 3)
	assert.Equal(t, "https://cdn.example.com/first.jpg", urls[0])
	assert.True(t, strings.HasPrefix(urls[1], "https://cdn.example.com/"))
	assert.Equal(t, "https://cdn.example.com/third.jpg", urls[2])
}

func TestIngestAllEmpty(t *testing.T) {
	svc := NewImageService(&fakeUploader{}, &fakeTranscoder{}, "test")

	urls, err := svc.IngestAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, urls)
	assert.NotNil(t, urls, "callers persist this straight into a jsonb column")
}

func TestIngestAllUploadFailureFailsBatch(t *testing.T) {
	up := &fakeUploader{err: errors.New("storage down")}
	svc := NewImageService(up, &fakeTranscoder{}, "test")

	_, err := svc.IngestAll(context.Background(), []string{dataURL("png", []byte("x"))})
	assert.Error(t, err)
}
