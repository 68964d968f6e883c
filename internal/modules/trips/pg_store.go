package trips

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS trips (
    id         TEXT PRIMARY KEY,
    owner_id   TEXT NOT NULL DEFAULT '',
    title      TEXT NOT NULL,
    itinerary  JSONB NOT NULL,
    booking    JSONB,
    created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS trips_created_at_idx ON trips (created_at DESC);`

var tripColumns = []string{"id", "owner_id", "title", "itinerary", "booking", "created_at"}

// DB is the subset of pgxpool.Pool the store needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGStore struct {
	db   DB
	psql sq.StatementBuilderType
}

func NewPGStore(db DB) *PGStore {
	return &PGStore{db: db, psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schema)
	return errors.Wrap(err, "create trips schema")
}

func (s *PGStore) Create(ctx context.Context, t *Trip) error {
	itin, err := json.Marshal(t.Itinerary)
	if err != nil {
		return errors.Wrap(err, "marshal itinerary")
	}
	var bk []byte
	if t.Booking != nil {
		if bk, err = json.Marshal(t.Booking); err != nil {
			return errors.Wrap(err, "marshal booking")
		}
	}

	query, args, err := s.psql.Insert("trips").
		Columns(tripColumns...).
		Values(t.ID, t.OwnerID, t.Title, itin, bk, t.CreatedAt).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build insert")
	}
	_, err = s.db.Exec(ctx, query, args...)
	return errors.Wrap(err, "insert trip")
}

func (s *PGStore) Get(ctx context.Context, id string) (*Trip, error) {
	query, args, err := s.psql.Select(tripColumns...).
		From("trips").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build select")
	}

	t, err := scanTrip(s.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *PGStore) List(ctx context.Context, limit int) ([]*Trip, error) {
	query, args, err := s.psql.Select(tripColumns...).
		From("trips").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list")
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list trips")
	}
	defer rows.Close()

	out := make([]*Trip, 0, limit)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, errors.Wrap(rows.Err(), "iterate trips")
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var (
		t        Trip
		itin, bk []byte
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &itin, &bk, &t.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itin, &t.Itinerary); err != nil {
		return nil, errors.Wrapf(err, "decode itinerary of %s", t.ID)
	}
	if len(bk) > 0 {
		if err := json.Unmarshal(bk, &t.Booking); err != nil {
			return nil, errors.Wrapf(err, "decode booking of %s", t.ID)
		}
	}
	return &t, nil
}
