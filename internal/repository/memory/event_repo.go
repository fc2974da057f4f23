// Package memory provides an event repository that holds its records in-memory.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"capgeticket/internal/domain"
)

// EventRepository stores events in a map guarded by a mutex. Returned events are copies.
type EventRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*domain.Event
	nextID int64
}

// NewEventRepository returns an empty repository whose first generated id is 1.
func NewEventRepository() *EventRepository {
	return &EventRepository{
		byID:   make(map[int64]*domain.Event),
		nextID: 1,
	}
}

func (r *EventRepository) FindAll(ctx context.Context) ([]*domain.Event, error) {
	return r.filter(func(*domain.Event) bool { return true }), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok || !e.Visible {
		return nil, domain.ErrNotFound
	}
	c := *e
	return &c, nil
}

func (r *EventRepository) FindByNameContaining(ctx context.Context, text string) ([]*domain.Event, error) {
	needle := strings.ToLower(text)
	return r.filter(func(e *domain.Event) bool {
		return strings.Contains(strings.ToLower(e.Name), needle)
	}), nil
}

func (r *EventRepository) FindByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool { return e.City == city }), nil
}

func (r *EventRepository) FindByGenre(ctx context.Context, genre string) ([]*domain.Event, error) {
	return r.filter(func(e *domain.Event) bool { return e.Genre == genre }), nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	c := *e
	r.byID[e.ID] = &c
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[e.ID]
	if !ok || !current.Visible {
		return nil, domain.ErrNotFound
	}
	c := *e
	r.byID[e.ID] = &c
	out := c
	return &out, nil
}

func (r *EventRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	if !ok || !e.Visible {
		return false, nil
	}
	e.Visible = false
	return true, nil
}

// filter returns copies of the visible events matching keep, ordered by id.
func (r *EventRepository) filter(keep func(*domain.Event) bool) []*domain.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Event, 0)
	for _, e := range r.byID {
		if e.Visible && keep(e) {
			c := *e
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
