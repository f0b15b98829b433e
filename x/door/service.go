package door

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/campsite/core"
)

var tracer = otel.Tracer("door")

type service struct {
	schedule      Schedule
	questionnaire core.QuestionnaireService
}

// NewService creates a new door service
func NewService(config core.Config, questionnaire core.QuestionnaireService) core.DoorService {
	return &service{
		schedule:      Schedule(config.Doors),
		questionnaire: questionnaire,
	}
}

// Status reports every door at now. only the open door carries its questionnaire url.
func (s *service) Status(ctx context.Context, now time.Time) (core.DoorStatus, error) {
	ctx, span := tracer.Start(ctx, "Door.Service.Status")
	defer span.End()

	status := core.DoorStatus{
		Now:   now.Format(time.RFC3339),
		Doors: make([]core.DoorState, len(s.schedule)),
	}

	active, open := s.schedule.Active(now)
	for i, window := range s.schedule {
		status.Doors[i] = core.DoorState{
			Index: i,
			Start: window.Start.Format(time.RFC3339),
			End:   window.End.Format(time.RFC3339),
			Open:  open && i == active,
		}
	}

	if !open {
		return status, nil
	}

	status.ActiveIndex = &active

	link, err := s.questionnaire.Get(ctx, active)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return status, nil
		}
		return core.DoorStatus{}, err
	}
	status.Doors[active].URL = link.URL

	return status, nil
}
