package questionnaire

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
	"github.com/totegamma/campsite/util"
)

var tracer = otel.Tracer("questionnaire")

type service struct {
	repository Repository
}

// NewService creates a new questionnaire service
func NewService(repository Repository) core.QuestionnaireService {
	return &service{repository}
}

func validateDoorIndex(doorIndex int) error {
	if !core.IsDoorIndex(doorIndex) {
		return core.NewErrorInvalidInput(fmt.Sprintf("doorIndex must be between 0 and %d", core.DoorCount-1))
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]core.QuestionnaireLink, error) {
	ctx, span := tracer.Start(ctx, "Questionnaire.Service.List")
	defer span.End()

	return s.repository.List(ctx)
}

func (s *service) Get(ctx context.Context, doorIndex int) (core.QuestionnaireLink, error) {
	ctx, span := tracer.Start(ctx, "Questionnaire.Service.Get")
	defer span.End()

	if err := validateDoorIndex(doorIndex); err != nil {
		return core.QuestionnaireLink{}, err
	}

	return s.repository.Get(ctx, doorIndex)
}

// Upsert sets the questionnaire url of a door
func (s *service) Upsert(ctx context.Context, link core.QuestionnaireLink) (core.QuestionnaireLink, error) {
	ctx, span := tracer.Start(ctx, "Questionnaire.Service.Upsert")
	defer span.End()

	if err := validateDoorIndex(link.DoorIndex); err != nil {
		return core.QuestionnaireLink{}, err
	}

	link.URL = strings.TrimSpace(link.URL)
	if err := util.ValidateURL("url", link.URL); err != nil {
		return core.QuestionnaireLink{}, err
	}

	return s.repository.Upsert(ctx, link)
}
