package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rusunawa-id/booking-service/internal/domain"
	"github.com/rusunawa-id/booking-service/pkg/dbmetrics"
	"github.com/rusunawa-id/booking-service/pkg/psqlbuilder"
)

// Repository репозиторий комнат, типов аренды и закрытых дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает комнату вместе с тарифом
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"building_id",
		"floor_id",
		"capacity",
		"rental_type_id",
		"rate",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.BuildingID,
		&room.FloorID,
		&room.Capacity,
		&room.RentalTypeID,
		&room.Rate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// GetRentalTypes получает справочник типов аренды
func (r *Repository) GetRentalTypes(ctx context.Context) ([]domain.RentalType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("rental_types").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRentalTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRentalTypes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]domain.RentalType, 0)
	for rows.Next() {
		var rt domain.RentalType
		var name string
		if err := rows.Scan(&rt.ID, &name); err != nil {
			return nil, fmt.Errorf("%w: GetRentalTypes - scan row: %v", ErrScanRow, err)
		}
		rt.Name = domain.RentalTypeName(name)
		types = append(types, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRentalTypes - rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// GetRentalTypeByID получает тип аренды по ID
func (r *Repository) GetRentalTypeByID(ctx context.Context, id int64) (*domain.RentalType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("rental_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRentalTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var rt domain.RentalType
	var name string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rt.ID, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRentalTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRentalTypeByID - scan rental type: %v", ErrScanRow, err)
	}
	rt.Name = domain.RentalTypeName(name)

	return &rt, nil
}

// GetUnavailableDates получает закрытые администрацией даты комнаты в периоде [start, end)
func (r *Repository) GetUnavailableDates(ctx context.Context, roomID int64, start, end time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From("room_unavailability").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(start)}).
		Where(squirrel.Lt{"date": domain.DateOnly(end)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnavailableDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnavailableDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: GetUnavailableDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, domain.DateOnly(d))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetUnavailableDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}
