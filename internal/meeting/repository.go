package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, m *Meeting) error
	GetByID(ctx context.Context, id string) (*Meeting, error)
	List(ctx context.Context, filter Filter) ([]*Meeting, int, error)

	// ListAll returns the full meeting snapshot the engine computes over.
	ListAll(ctx context.Context) ([]*Meeting, error)

	// ListByDate returns every meeting on the date, any participant.
	ListByDate(ctx context.Context, date string) ([]*Meeting, error)

	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const meetingColumns = "id, organizer_id, participant_id, date, start_hour, end_hour, title, created_at"

func scanMeeting(row pgx.Row) (*Meeting, error) {
	var m Meeting
	if err := row.Scan(
		&m.ID, &m.OrganizerID, &m.ParticipantID, &m.Date,
		&m.StartHour, &m.EndHour, &m.Title, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *pgxRepository) Create(ctx context.Context, m *Meeting) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.meetings").
		Columns("id", "organizer_id", "participant_id", "date", "start_hour", "end_hour", "title").
		Values(m.ID, m.OrganizerID, m.ParticipantID, m.Date, m.StartHour, m.EndHour, m.Title).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create meeting query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&m.CreatedAt); err != nil {
		// The meetings table carries per-participant overlap exclusion
		// constraints; a violation here means another booking won the race
		// between the service's conflict scan and this insert.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return ErrTimeConflict
		}
		return fmt.Errorf("create meeting failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Meeting, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(meetingColumns).
		From("public.meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get meeting query failed: %w", err)
	}

	m, err := scanMeeting(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get meeting failed: %w", err)
	}
	return m, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Meeting, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "organizer_id", "participant_id", "date", "start_hour", "end_hour", "title", "created_at",
		"count(*) OVER() AS total_count",
	).From("public.meetings")

	if filter.UserID != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"organizer_id": filter.UserID},
			squirrel.Eq{"participant_id": filter.UserID},
		})
	}
	if filter.Date != "" {
		query = query.Where(squirrel.Eq{"date": filter.Date})
	}

	query = query.OrderBy("date ASC", "start_hour ASC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list meetings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list meetings failed: %w", err)
	}
	defer rows.Close()

	var meetings []*Meeting
	var total int
	for rows.Next() {
		var m Meeting
		if err := rows.Scan(
			&m.ID, &m.OrganizerID, &m.ParticipantID, &m.Date,
			&m.StartHour, &m.EndHour, &m.Title, &m.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan meeting failed: %w", err)
		}
		meetings = append(meetings, &m)
	}
	return meetings, total, rows.Err()
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Meeting, error) {
	return r.listWhere(ctx, nil)
}

func (r *pgxRepository) ListByDate(ctx context.Context, date string) ([]*Meeting, error) {
	return r.listWhere(ctx, squirrel.Eq{"date": date})
}

func (r *pgxRepository) listWhere(ctx context.Context, pred any) ([]*Meeting, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(meetingColumns).
		From("public.meetings").
		OrderBy("date ASC", "start_hour ASC")
	if pred != nil {
		query = query.Where(pred)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list meetings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list meetings failed: %w", err)
	}
	defer rows.Close()

	var meetings []*Meeting
	for rows.Next() {
		var m Meeting
		if err := rows.Scan(
			&m.ID, &m.OrganizerID, &m.ParticipantID, &m.Date,
			&m.StartHour, &m.EndHour, &m.Title, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan meeting failed: %w", err)
		}
		meetings = append(meetings, &m)
	}
	return meetings, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.meetings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete meeting query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete meeting failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
