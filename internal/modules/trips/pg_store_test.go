package trips

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []string{"id", "owner_id", "title", "itinerary", "booking", "created_at"}

func newMockStore(t *testing.T) (*PGStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPGStore(mock), mock
}

func TestPGStore_EnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS trips").WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_Create(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO trips").
		WithArgs("trip_1", "u1", "Goa trip", pgxmock.AnyArg(), pgxmock.AnyArg(), created).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Create(context.Background(), &Trip{
		ID:        "trip_1",
		OwnerID:   "u1",
		Title:     "Goa trip",
		Itinerary: goaItinerary(),
		CreatedAt: created,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_Get(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	itin, err := json.Marshal(goaItinerary())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM trips WHERE id = \$1`).
		WithArgs("trip_1").
		WillReturnRows(pgxmock.NewRows(testColumns).AddRow("trip_1", "u1", "Goa trip", itin, []byte("null"), created))

	got, err := store.Get(context.Background(), "trip_1")

	require.NoError(t, err)
	assert.Equal(t, "Goa trip", got.Title)
	require.NotNil(t, got.Itinerary)
	assert.Equal(t, "Goa", got.Itinerary.Meta.Destination)
	assert.Nil(t, got.Booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_GetNotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT (.+) FROM trips WHERE id = \$1`).
		WithArgs("trip_missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := store.Get(context.Background(), "trip_missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_List(t *testing.T) {
	store, mock := newMockStore(t)
	itin, err := json.Marshal(goaItinerary())
	require.NoError(t, err)
	newer := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	mock.ExpectQuery(`SELECT (.+) FROM trips ORDER BY created_at DESC, id DESC LIMIT 2`).
		WillReturnRows(pgxmock.NewRows(testColumns).
			AddRow("trip_2", "", "Second", itin, []byte("null"), newer).
			AddRow("trip_1", "u1", "First", itin, []byte("null"), older))

	got, err := store.List(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "trip_2", got[0].ID)
	assert.Equal(t, "trip_1", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
