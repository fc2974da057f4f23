package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"capgeticket/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService returns the record service. Every repository call is bounded by timeout.
func NewEventService(eventRepo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) FindAll(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	s.logger.InfoContext(ctx, "events found", "count", len(events))
	return events, nil
}

func (s *eventService) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFoundf(domain.MsgEventNotFoundByID, id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) FindByName(ctx context.Context, name string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.FindByNameContaining(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find events by name: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.NotFoundf("No existen eventos con el nombre: %s", name)
	}
	return events, nil
}

func (s *eventService) FindByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.FindByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("find events by city: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.NotFoundf("No se encontraron eventos en la ciudad %s", city)
	}
	return events, nil
}

func (s *eventService) FindByGenre(ctx context.Context, genre string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.FindByGenre(ctx, genre)
	if err != nil {
		return nil, fmt.Errorf("find events by genre: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.NotFoundf("No existen eventos con el género: %s", genre)
	}
	return events, nil
}

func (s *eventService) Add(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, domain.InvalidArgument(domain.MsgNilEvent)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	created := *event
	created.ID = 0
	if err := s.eventRepo.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.logger.InfoContext(ctx, "event created", "id", created.ID)
	return &created, nil
}

func (s *eventService) Edit(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, domain.InvalidArgument(domain.MsgNilEvent)
	}
	if event.ID == 0 {
		return nil, domain.NotFoundf(domain.MsgEventNotFound)
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	updated, err := s.eventRepo.Update(ctx, event)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "event to edit does not exist", "id", event.ID)
			return nil, domain.NotFoundf(domain.MsgEventNotFound)
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	s.logger.InfoContext(ctx, "event edited", "id", updated.ID)
	return updated, nil
}

// DeleteByID hides the event and reports whether it existed. A missing event is not an error.
func (s *eventService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	deleted, err := s.eventRepo.SoftDelete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		s.logger.WarnContext(ctx, "event to delete does not exist", "id", id)
		return false, nil
	}
	s.logger.InfoContext(ctx, "event deleted", "id", id)
	return true, nil
}
