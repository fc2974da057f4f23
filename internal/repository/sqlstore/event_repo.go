package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"capgeticket/internal/domain"
)

const eventColumns = `id, nombre, descripcion, fechaevento, preciominimo, preciomaximo, localidad, nombredelrecinto, genero, mostrar`

// eventRow is one row of the evento table.
type eventRow struct {
	ID          int64        `db:"id"`
	Name        string       `db:"nombre"`
	Description string       `db:"descripcion"`
	Date        domain.Date  `db:"fechaevento"`
	MinPrice    domain.Price `db:"preciominimo"`
	MaxPrice    domain.Price `db:"preciomaximo"`
	City        string       `db:"localidad"`
	Venue       string       `db:"nombredelrecinto"`
	Genre       string       `db:"genero"`
	Visible     bool         `db:"mostrar"`
}

func (r *eventRow) toEntity() *domain.Event {
	return &domain.Event{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		City:        r.City,
		Venue:       r.Venue,
		Genre:       r.Genre,
		Visible:     r.Visible,
	}
}

type eventRepository struct {
	DB *sqlx.DB
}

// NewEventRepository returns an EventRepository backed by db. Queries are written with
// '?' placeholders and rebound for the driver db was opened with.
func NewEventRepository(db *sqlx.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) FindAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM evento
		WHERE mostrar = TRUE
		ORDER BY id
	`
	return r.list(ctx, query)
}

func (r *eventRepository) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM evento
		WHERE id = ? AND mostrar = TRUE
	`
	var row eventRow
	if err := r.DB.GetContext(ctx, &row, r.DB.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *eventRepository) FindByNameContaining(ctx context.Context, text string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM evento
		WHERE mostrar = TRUE AND LOWER(nombre) LIKE ? ESCAPE '\'
		ORDER BY id
	`
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	return r.list(ctx, query, pattern)
}

func (r *eventRepository) FindByCity(ctx context.Context, city string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM evento
		WHERE mostrar = TRUE AND localidad = ?
		ORDER BY id
	`
	return r.list(ctx, query, city)
}

func (r *eventRepository) FindByGenre(ctx context.Context, genre string) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM evento
		WHERE mostrar = TRUE AND genero = ?
		ORDER BY id
	`
	return r.list(ctx, query, genre)
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO evento (nombre, descripcion, fechaevento, preciominimo, preciomaximo, localidad, nombredelrecinto, genero, mostrar)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.DB.QueryRowxContext(ctx, r.DB.Rebind(query),
		e.Name, e.Description, e.Date, e.MinPrice, e.MaxPrice, e.City, e.Venue, e.Genre, e.Visible,
	).Scan(&e.ID)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	query := `
		UPDATE evento
		SET nombre = ?, descripcion = ?, fechaevento = ?, preciominimo = ?, preciomaximo = ?,
			localidad = ?, nombredelrecinto = ?, genero = ?, mostrar = ?
		WHERE id = ? AND mostrar = TRUE
		RETURNING ` + eventColumns
	var row eventRow
	err := r.DB.GetContext(ctx, &row, r.DB.Rebind(query),
		e.Name, e.Description, e.Date, e.MinPrice, e.MaxPrice, e.City, e.Venue, e.Genre, e.Visible,
		e.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity(), nil
}

func (r *eventRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE evento SET mostrar = FALSE WHERE id = ? AND mostrar = TRUE`
	result, err := r.DB.ExecContext(ctx, r.DB.Rebind(query), id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	var rows []eventRow
	if err := r.DB.SelectContext(ctx, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	events := make([]*domain.Event, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].toEntity())
	}
	return events, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
