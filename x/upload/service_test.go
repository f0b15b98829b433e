package upload

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/x/upload/mock"
)

var svgData = []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)

var pngData = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 1024)...)

var config = core.Config{UploadBucket: "campsite", UploadBaseURL: "https://media.example.com/campsite/"}

func TestServiceUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored []byte
	mockRepo := mock_upload.NewMockRepository(ctrl)
	mockRepo.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", int64(len(pngData)), gomock.Any()).DoAndReturn(
		func(_ interface{}, key string, _ string, _ int64, body io.Reader) error {
			assert.True(t, strings.HasPrefix(key, "uploads/"))
			assert.True(t, strings.HasSuffix(key, ".png"))
			stored, _ = io.ReadAll(body)
			return nil
		},
	)

	s := NewService(mockRepo, config)
	result, err := s.Upload(context.Background(), "Key Visual.PNG", "image/png", int64(len(pngData)), bytes.NewReader(pngData))
	if assert.NoError(t, err) {
		assert.Equal(t, "https://media.example.com/campsite/"+result.PublicID, result.URL)
		assert.Len(t, result.PublicID, len("uploads/")+36+len(".png"))
		assert.Equal(t, pngData, stored)
	}
}

func TestServiceUploadRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_upload.NewMockRepository(ctrl)
	s := NewService(mockRepo, config)

	cases := []struct {
		name        string
		contentType string
		size        int64
		body        []byte
	}{
		{"declared text", "text/plain", int64(len(pngData)), pngData},
		{"disguised text", "image/png", 11, []byte("hello world")},
		{"too large", "image/png", MaxFileSize + 1, pngData},
		{"empty", "image/png", 0, nil},
		{"declared svg", "image/svg+xml", int64(len(svgData)), svgData},
		{"svg disguised as png", "image/png", int64(len(svgData)), svgData},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Upload(context.Background(), "a.png", tc.contentType, tc.size, bytes.NewReader(tc.body))
			assert.True(t, errors.As(err, &core.ErrorInvalidInput{}))
		})
	}
}

func TestServiceUploadKeyUsesDetectedType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_upload.NewMockRepository(ctrl)
	mockRepo.EXPECT().Put(gomock.Any(), gomock.Any(), "image/png", int64(len(pngData)), gomock.Any()).Return(nil)

	s := NewService(mockRepo, config)
	result, err := s.Upload(context.Background(), "x.html", "image/png", int64(len(pngData)), bytes.NewReader(pngData))
	if assert.NoError(t, err) {
		assert.True(t, strings.HasSuffix(result.PublicID, ".png"))
		assert.False(t, strings.Contains(result.PublicID, ".html"))
	}
}

func TestIsImage(t *testing.T) {
	assert.True(t, isImage("image/jpeg"))
	assert.True(t, isImage("image/webp"))
	assert.False(t, isImage("image/svg+xml"))
	assert.False(t, isImage("text/html; charset=utf-8"))
	assert.Equal(t, ".png", mimetype.Detect(pngData).Extension())
}
