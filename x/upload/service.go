package upload

import (
	"bytes"
	"context"
	"io"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/campsite/core"
)

var tracer = otel.Tracer("upload")

const (
	MaxFileSize = 10 << 20 // 10 MiB
	keyPrefix   = "uploads/"
	sniffLength = 3072
)

type service struct {
	repository Repository
	baseURL    string
}

// NewService creates a new upload service
func NewService(repository Repository, config core.Config) core.UploadService {
	return &service{
		repository: repository,
		baseURL:    strings.TrimRight(config.UploadBaseURL, "/"),
	}
}

// isImage accepts raster images. svg can carry scripts and is refused.
func isImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if mediaType == "image/svg+xml" {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}

// Upload stores an image and returns where it can be fetched
func (s *service) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (core.UploadResult, error) {
	ctx, span := tracer.Start(ctx, "Upload.Service.Upload")
	defer span.End()

	span.SetAttributes(attribute.String("filename", filename))

	if size <= 0 {
		return core.UploadResult{}, core.NewErrorInvalidInput("file is empty")
	}
	if size > MaxFileSize {
		return core.UploadResult{}, core.NewErrorInvalidInput("file must be at most 10MB")
	}
	if !isImage(contentType) {
		return core.UploadResult{}, core.NewErrorInvalidInput("only images can be uploaded")
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return core.UploadResult{}, err
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !isImage(detected.String()) {
		return core.UploadResult{}, core.NewErrorInvalidInput("only images can be uploaded")
	}

	// the client filename never decides the extension
	key := keyPrefix + uuid.NewString() + detected.Extension()
	err = s.repository.Put(ctx, key, detected.String(), size, io.MultiReader(bytes.NewReader(head), body))
	if err != nil {
		return core.UploadResult{}, err
	}

	return core.UploadResult{
		URL:      s.baseURL + "/" + key,
		PublicID: key,
	}, nil
}
