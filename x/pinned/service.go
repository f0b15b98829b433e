package pinned

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

var tracer = otel.Tracer("pinned")

type service struct {
	repository Repository
}

// NewService creates a new pinned image service
func NewService(repository Repository) core.PinnedService {
	return &service{repository}
}

func validateSlot(slot string) error {
	if slot != core.SlotKeyVisual && slot != core.SlotSchedule {
		return core.NewErrorInvalidInput("unknown slot: " + slot)
	}
	return nil
}

// Get returns the current image of a slot
func (s *service) Get(ctx context.Context, slot string) (core.PinnedImage, error) {
	ctx, span := tracer.Start(ctx, "Pinned.Service.Get")
	defer span.End()

	if err := validateSlot(slot); err != nil {
		return core.PinnedImage{}, err
	}

	return s.repository.Get(ctx, slot)
}

// Replace makes the given image the only image of its slot
func (s *service) Replace(ctx context.Context, image core.PinnedImage) (core.PinnedImage, error) {
	ctx, span := tracer.Start(ctx, "Pinned.Service.Replace")
	defer span.End()

	if err := validateSlot(image.Slot); err != nil {
		return core.PinnedImage{}, err
	}

	image.URL = strings.TrimSpace(image.URL)
	if err := util.ValidateURL("url", image.URL); err != nil {
		return core.PinnedImage{}, err
	}

	return s.repository.Upsert(ctx, image)
}

// Clear removes the image of a slot
func (s *service) Clear(ctx context.Context, slot string) error {
	ctx, span := tracer.Start(ctx, "Pinned.Service.Clear")
	defer span.End()

	if err := validateSlot(slot); err != nil {
		return err
	}

	return s.repository.Delete(ctx, slot)
}
