package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"capgeticket/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumnNames = []string{"id", "nombre", "descripcion", "fechaevento", "preciominimo", "preciomaximo", "localidad", "nombredelrecinto", "genero", "mostrar"}

func newMockRepo(t *testing.T) (domain.EventRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEventRepository(sqlx.NewDb(db, DriverPostgres)), mock
}

func concertRow(rows *sqlmock.Rows, id int64, name, city, genre string) *sqlmock.Rows {
	return rows.AddRow(id, name, "Concierto de música clásica", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		"10.00", "50.00", city, "Palacio de Deportes", genre, true)
}

func TestEventRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		mock      func(mock sqlmock.Sqlmock)
		wantNames []string
		wantErr   bool
	}{
		{
			name: "only visible rows",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumnNames)
				concertRow(rows, 1, "Concierto", "Madrid", "Música")
				concertRow(rows, 2, "Teatro", "Sevilla", "Teatro")
				mock.ExpectQuery(`SELECT id, nombre, .* FROM evento\s+WHERE mostrar = TRUE\s+ORDER BY id`).
					WillReturnRows(rows)
			},
			wantNames: []string{"Concierto", "Teatro"},
		},
		{
			name: "empty table",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM evento`).WillReturnRows(sqlmock.NewRows(eventColumnNames))
			},
			wantNames: []string{},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM evento`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.mock(mock)

			got, err := repo.FindAll(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE id = \$1 AND mostrar = TRUE`).
			WithArgs(int64(7)).
			WillReturnRows(concertRow(sqlmock.NewRows(eventColumnNames), 7, "Concierto", "Madrid", "Música"))

		got, err := repo.FindByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "Concierto", got.Name)
		assert.Equal(t, "2024-12-01", got.Date.String())
		assert.Equal(t, "10.00", got.MinPrice.StringFixed(2))
		assert.Equal(t, "50.00", got.MaxPrice.StringFixed(2))
		assert.Equal(t, "Madrid", got.City)
		assert.True(t, got.Visible)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error is passed through", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`WHERE id = \$1`).WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByID(ctx, 1)
		require.ErrorIs(t, err, sql.ErrConnDone)
		require.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestEventRepository_Searches(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(repo domain.EventRepository) ([]*domain.Event, error)
		query   string
		wantArg string
	}{
		{
			name:    "name is lowercased and wrapped in wildcards",
			call:    func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.FindByNameContaining(ctx, "ConCierto") },
			query:   `LOWER\(nombre\) LIKE \$1 ESCAPE`,
			wantArg: "%concierto%",
		},
		{
			name:    "name wildcards are escaped",
			call:    func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.FindByNameContaining(ctx, "50%_off") },
			query:   `LOWER\(nombre\) LIKE \$1`,
			wantArg: `%50\%\_off%`,
		},
		{
			name:    "city is matched verbatim",
			call:    func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.FindByCity(ctx, "Madrid ") },
			query:   `localidad = \$1`,
			wantArg: "Madrid ",
		},
		{
			name:    "genre is matched verbatim",
			call:    func(repo domain.EventRepository) ([]*domain.Event, error) { return repo.FindByGenre(ctx, "Música") },
			query:   `genero = \$1`,
			wantArg: "Música",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery(tt.query).
				WithArgs(tt.wantArg).
				WillReturnRows(concertRow(sqlmock.NewRows(eventColumnNames), 1, "Concierto", "Madrid", "Música"))

			got, err := tt.call(repo)
			require.NoError(t, err)
			require.Len(t, got, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO evento \(nombre, descripcion, fechaevento, preciominimo, preciomaximo, localidad, nombredelrecinto, genero, mostrar\)`).
					WithArgs("Concierto", "Concierto de música clásica", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						"Madrid", "Palacio de Deportes", "Música", true).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
			},
			wantID: 42,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO evento`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.mock(mock)
			event := domain.NewEvent("Concierto", "Concierto de música clásica", domain.NewDate(2024, time.December, 1),
				domain.MustPrice("10.00"), domain.MustPrice("50.00"), "Madrid", "Palacio de Deportes", "Música")

			err := repo.Create(ctx, event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	event := domain.NewEvent("Concierto Editado", "Concierto editado", domain.NewDate(2024, time.December, 1),
		domain.MustPrice("10.00"), domain.MustPrice("50.00"), "Madrid", "Palacio de Deportes", "Música")
	event.ID = 1

	t.Run("success returns the stored row", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`UPDATE evento\s+SET nombre = \$1, .* WHERE id = \$10 AND mostrar = TRUE\s+RETURNING id`).
			WithArgs("Concierto Editado", "Concierto editado", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				"Madrid", "Palacio de Deportes", "Música", true, int64(1)).
			WillReturnRows(concertRow(sqlmock.NewRows(eventColumnNames), 1, "Concierto Editado", "Madrid", "Música"))

		got, err := repo.Update(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "Concierto Editado", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(`UPDATE evento`).WillReturnRows(sqlmock.NewRows(eventColumnNames))

		got, err := repo.Update(ctx, event)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "visible row hidden",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE evento SET mostrar = FALSE WHERE id = \$1 AND mostrar = TRUE`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "no visible row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE evento SET mostrar = FALSE`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE evento SET mostrar = FALSE`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.mock(mock)

			got, err := repo.SoftDelete(ctx, 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "rock", escapeLike("rock"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
