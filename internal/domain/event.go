package domain

import (
	"context"
)

// Event represents a scheduled event with a price range, venue and genre.
// swagger:model Event
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Date        Date   `json:"fechaEvento"`
	MinPrice    Price  `json:"precioMinimo"`
	MaxPrice    Price  `json:"precioMaximo"`
	City        string `json:"localidad"`
	Venue       string `json:"nombreDelRecinto"`
	Genre       string `json:"genero"`
	Visible     bool   `json:"mostrar"`
}

// NewEvent returns a new visible Event with the given fields. ID is set by the repository on create.
func NewEvent(name, description string, date Date, minPrice, maxPrice Price, city, venue, genre string) *Event {
	return &Event{
		Name:        name,
		Description: description,
		Date:        date,
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		City:        city,
		Venue:       venue,
		Genre:       genre,
		Visible:     true,
	}
}

// EventRepository defines the interface for event storage.
// Only visible events are returned by lookups; SoftDelete hides an event instead of removing it.
type EventRepository interface {
	FindAll(ctx context.Context) ([]*Event, error)
	FindByID(ctx context.Context, id int64) (*Event, error)
	FindByNameContaining(ctx context.Context, text string) ([]*Event, error)
	FindByCity(ctx context.Context, city string) ([]*Event, error)
	FindByGenre(ctx context.Context, genre string) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	// Update replaces every mutable field of the visible event with event.ID.
	// Returns ErrNotFound when no such event exists.
	Update(ctx context.Context, event *Event) (*Event, error)
	// SoftDelete hides the visible event with the given id and reports whether one was hidden.
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// EventService defines the record lifecycle operations exposed to the HTTP layer.
type EventService interface {
	FindAll(ctx context.Context) ([]*Event, error)
	FindByID(ctx context.Context, id int64) (*Event, error)
	FindByName(ctx context.Context, name string) ([]*Event, error)
	FindByCity(ctx context.Context, city string) ([]*Event, error)
	FindByGenre(ctx context.Context, genre string) ([]*Event, error)
	Add(ctx context.Context, event *Event) (*Event, error)
	Edit(ctx context.Context, event *Event) (*Event, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
