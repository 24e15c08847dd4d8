package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

// Repository persists per-user availability slots.
type Repository interface {
	ListAll(ctx context.Context) ([]*Availability, error)
	GetSlots(ctx context.Context, userID string) ([]schedule.TimeSlot, error)

	// ReplaceSlots swaps the user's entire slot list in one transaction.
	// The store never patches; callers always submit the full merged list.
	ReplaceSlots(ctx context.Context, userID string, slots []schedule.TimeSlot) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Availability, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("user_id", "date", "start_hour", "end_hour").
		From("public.availability_slots").
		OrderBy("user_id ASC", "date ASC", "start_hour ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list availabilities query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list availabilities failed: %w", err)
	}
	defer rows.Close()

	byUser := make(map[string]*Availability)
	var order []string
	for rows.Next() {
		var userID string
		var slot schedule.TimeSlot
		if err := rows.Scan(&userID, &slot.Date, &slot.StartHour, &slot.EndHour); err != nil {
			return nil, fmt.Errorf("scan availability slot failed: %w", err)
		}
		a, ok := byUser[userID]
		if !ok {
			a = &Availability{UserID: userID}
			byUser[userID] = a
			order = append(order, userID)
		}
		a.Slots = append(a.Slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]*Availability, 0, len(order))
	for _, userID := range order {
		out = append(out, byUser[userID])
	}
	return out, nil
}

func (r *pgxRepository) GetSlots(ctx context.Context, userID string) ([]schedule.TimeSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("date", "start_hour", "end_hour").
		From("public.availability_slots").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date ASC", "start_hour ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get availability query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get availability failed: %w", err)
	}
	defer rows.Close()

	slots := []schedule.TimeSlot{}
	for rows.Next() {
		var slot schedule.TimeSlot
		if err := rows.Scan(&slot.Date, &slot.StartHour, &slot.EndHour); err != nil {
			return nil, fmt.Errorf("scan availability slot failed: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *pgxRepository) ReplaceSlots(ctx context.Context, userID string, slots []schedule.TimeSlot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace slots tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Delete("public.availability_slots").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete slots query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete slots failed: %w", err)
	}

	if len(slots) > 0 {
		insert := psql.Insert("public.availability_slots").
			Columns("user_id", "date", "start_hour", "end_hour")
		for _, s := range slots {
			insert = insert.Values(userID, s.Date, s.StartHour, s.EndHour)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert slots query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert slots failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}
