package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Delete(ctx context.Context, id string) error

	// ListByResource returns every booking for the resource. It feeds the
	// conflict check, which compares candidates against stored rows.
	ListByResource(ctx context.Context, resourceID string) ([]*Booking, error)

	// ListForWindow returns bookings whose repeat span could intersect the
	// [windowStart, windowEnd] date range, ordered by creation time. An
	// empty resourceID matches all resources.
	ListForWindow(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]*Booking, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// bookingColumns lists the columns every booking select scans, joining the
// resource and user names. Resources are LEFT JOINed so a booking whose
// resource row is gone still comes back, with an empty name.
func bookingColumns() []string {
	return []string{
		"b.id", "b.resource_id", "r.name",
		"b.user_id", "COALESCE(u.display_name, u.email, '')",
		"b.booking_date", "b.start_time", "b.end_time",
		"b.repeat_option", "b.end_repeat_date", "b.days_to_repeat_on",
		"b.created_at", "b.updated_at",
	}
}

func baseSelect() squirrel.SelectBuilder {
	return psql.Select(bookingColumns()...).
		From("public.bookings b").
		LeftJoin("public.resources r ON b.resource_id = r.id").
		LeftJoin("public.users u ON b.user_id = u.id")
}

// pgTime converts a TimeOfDay to the pgtype value for a TIME column.
func pgTime(t TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t) * 60 * 1_000_000, Valid: true}
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var (
		b            Booking
		resourceName *string
		start, end   pgtype.Time
	)
	if err := row.Scan(
		&b.ID, &b.ResourceID, &resourceName,
		&b.UserID, &b.UserName,
		&b.BookingDate, &start, &end,
		&b.RepeatOption, &b.EndRepeatDate, &b.DaysToRepeatOn,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if resourceName != nil {
		b.ResourceName = *resourceName
	}
	b.StartTime = TimeOfDay(start.Microseconds / (60 * 1_000_000))
	b.EndTime = TimeOfDay(end.Microseconds / (60 * 1_000_000))
	b.BookingDate = DateOnly(b.BookingDate)
	if b.EndRepeatDate != nil {
		d := DateOnly(*b.EndRepeatDate)
		b.EndRepeatDate = &d
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"resource_id", "user_id", "booking_date", "start_time", "end_time",
			"repeat_option", "end_repeat_date", "days_to_repeat_on",
		).
		Values(
			b.ResourceID, b.UserID, b.BookingDate, pgTime(b.StartTime), pgTime(b.EndTime),
			b.RepeatOption, b.EndRepeatDate, b.DaysToRepeatOn,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := baseSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	cols := append(bookingColumns(), "count(*) OVER() as total_count")
	query := psql.Select(cols...).
		From("public.bookings b").
		LeftJoin("public.resources r ON b.resource_id = r.id").
		LeftJoin("public.users u ON b.user_id = u.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"b.resource_id": filter.ResourceID})
	}
	if filter.DateFrom != nil {
		query = query.Where(squirrel.GtOrEq{"COALESCE(b.end_repeat_date, b.booking_date)": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		query = query.Where(squirrel.LtOrEq{"b.booking_date": *filter.DateTo})
	}

	query = query.OrderBy("b.booking_date ASC", "b.start_time ASC")

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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var (
			b            Booking
			resourceName *string
			start, end   pgtype.Time
		)
		if err := rows.Scan(
			&b.ID, &b.ResourceID, &resourceName,
			&b.UserID, &b.UserName,
			&b.BookingDate, &start, &end,
			&b.RepeatOption, &b.EndRepeatDate, &b.DaysToRepeatOn,
			&b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		if resourceName != nil {
			b.ResourceName = *resourceName
		}
		b.StartTime = TimeOfDay(start.Microseconds / (60 * 1_000_000))
		b.EndTime = TimeOfDay(end.Microseconds / (60 * 1_000_000))
		b.BookingDate = DateOnly(b.BookingDate)
		if b.EndRepeatDate != nil {
			d := DateOnly(*b.EndRepeatDate)
			b.EndRepeatDate = &d
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByResource(ctx context.Context, resourceID string) ([]*Booking, error) {
	query, args, err := baseSelect().
		Where(squirrel.Eq{"b.resource_id": resourceID}).
		OrderBy("b.booking_date ASC", "b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by resource query failed: %w", err)
	}

	return r.queryBookings(ctx, query, args)
}

func (r *pgxRepository) ListForWindow(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]*Booking, error) {
	query := baseSelect().
		Where(squirrel.LtOrEq{"b.booking_date": DateOnly(windowEnd)}).
		Where(squirrel.GtOrEq{"COALESCE(b.end_repeat_date, b.booking_date)": DateOnly(windowStart)}).
		OrderBy("b.created_at ASC")

	if resourceID != "" {
		query = query.Where(squirrel.Eq{"b.resource_id": resourceID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list for window query failed: %w", err)
	}

	return r.queryBookings(ctx, sql, args)
}

func (r *pgxRepository) queryBookings(ctx context.Context, sql string, args []any) ([]*Booking, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
