package instagram

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"gorm.io/datatypes"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

var tracer = otel.Tracer("instagram")

type service struct {
	repository Repository
	enricher   Enricher
}

// NewService creates a new instagram service
func NewService(repository Repository, enricher Enricher) core.InstagramService {
	return &service{repository, enricher}
}

type metadata struct {
	Source     string `json:"source"`
	EnrichedAt string `json:"enrichedAt"`
}

// IsPostURL reports whether raw points at a single post or reel on instagram.com
func IsPostURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Hostname()) {
	case "instagram.com", "www.instagram.com":
	default:
		return false
	}
	return strings.HasPrefix(u.Path, "/p/") || strings.HasPrefix(u.Path, "/reel/")
}

func validatePostURL(raw string) error {
	if err := util.ValidateURL("url", raw); err != nil {
		return err
	}
	if !IsPostURL(raw) {
		return core.NewErrorInvalidInput("url must be an instagram post or reel")
	}
	return nil
}

func normalizeName(name *string) *string {
	if name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *service) enrich(ctx context.Context, post *core.InstagramPost) {
	result := s.enricher.Enrich(ctx, post.URL)
	post.Description = result.Description

	// nothing worked, so there is no source to record
	if result.Source == "" {
		post.Metadata = nil
		return
	}

	meta, err := json.Marshal(metadata{
		Source:     result.Source,
		EnrichedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err == nil {
		post.Metadata = datatypes.JSON(meta)
	}
}

func (s *service) List(ctx context.Context) ([]core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}

// Create validates the url, looks up the caption and stores the post
func (s *service) Create(ctx context.Context, post core.InstagramPost) (core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Service.Create")
	defer span.End()

	post.URL = strings.TrimSpace(post.URL)
	if err := validatePostURL(post.URL); err != nil {
		return core.InstagramPost{}, err
	}

	post.ID = xid.New().String()
	post.Name = normalizeName(post.Name)
	s.enrich(ctx, &post)

	return s.repository.Create(ctx, post)
}

// Update overwrites the supplied fields. a changed url is enriched again.
func (s *service) Update(ctx context.Context, id string, patch core.InstagramPatch) (core.InstagramPost, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Service.Update")
	defer span.End()

	if id == "" {
		return core.InstagramPost{}, core.NewErrorInvalidInput("id is required")
	}

	if patch.URL != nil {
		trimmed := strings.TrimSpace(*patch.URL)
		if err := validatePostURL(trimmed); err != nil {
			return core.InstagramPost{}, err
		}
		patch.URL = &trimmed
	}

	post, err := s.repository.Get(ctx, id)
	if err != nil {
		return core.InstagramPost{}, err
	}

	if patch.Name != nil {
		post.Name = normalizeName(patch.Name)
	}
	if patch.Order != nil {
		post.Order = *patch.Order
	}
	if patch.URL != nil && *patch.URL != post.URL {
		post.URL = *patch.URL
		s.enrich(ctx, &post)
	}

	return s.repository.Update(ctx, post)
}

func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Instagram.Service.Delete")
	defer span.End()

	if id == "" {
		return core.NewErrorInvalidInput("id is required")
	}

	return s.repository.Delete(ctx, id)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Instagram.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
