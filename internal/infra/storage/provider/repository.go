package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const (
	providersTable = "providers"
	intervalsTable = "provider_work_intervals"

	// foreignKeyViolation код ошибки PostgreSQL для нарушения внешнего ключа
	foreignKeyViolation = "23503"
)

var intervalColumns = []string{
	"provider_id",
	"position",
	"day_of_week",
	"start_time",
	"end_time",
	"category",
}

// Repository справочник барберов (Provider Directory)
//
// Расписание хранится в отдельной таблице, столбец position сохраняет порядок заведения интервалов.
// Create и Update пишут в две таблицы, поэтому вызываются внутри транзакции (txmanager).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет барбера вместе с расписанием
func (r *Repository) Create(ctx context.Context, provider *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(providersTable).
		Columns("id", "name", "available_days").
		Values(provider.ID, provider.Name, pq.Array(daysToInts(provider.AvailableDays))).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.insertIntervals(ctx, executor, provider.ID, provider.WorkIntervals); err != nil {
		return nil, err
	}

	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return provider, nil
}

// GetByID получает барбера с расписанием
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "available_days", "created_at", "updated_at").
		From(providersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	provider, err := scanProvider(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan provider: %v", ErrScanRow, err)
	}

	intervals, err := r.listIntervals(ctx, executor, []string{id})
	if err != nil {
		return nil, err
	}
	provider.WorkIntervals = intervals[id]
	if provider.WorkIntervals == nil {
		provider.WorkIntervals = []domain.WorkInterval{}
	}

	return provider, nil
}

// List получает всех барберов, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "available_days", "created_at", "updated_at").
		From(providersTable).
		OrderBy("name ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	ids := make([]string, 0)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		providers = append(providers, provider)
		ids = append(ids, provider.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return providers, nil
	}

	intervals, err := r.listIntervals(ctx, executor, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		p.WorkIntervals = intervals[p.ID]
		if p.WorkIntervals == nil {
			p.WorkIntervals = []domain.WorkInterval{}
		}
	}

	return providers, nil
}

// Update заменяет имя, рабочие дни и расписание барбера
func (r *Repository) Update(ctx context.Context, provider *domain.Provider) (*domain.Provider, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(providersTable).
		Set("name", provider.Name).
		Set("available_days", pq.Array(daysToInts(provider.AvailableDays))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": provider.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(intervalsTable).
		Where(squirrel.Eq{"provider_id": provider.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build delete intervals query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - delete intervals: %v", ErrExecQuery, err)
	}

	if err := r.insertIntervals(ctx, executor, provider.ID, provider.WorkIntervals); err != nil {
		return nil, err
	}

	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return provider, nil
}

// Delete удаляет барбера вместе с расписанием.
// Барбера, на которого есть записи (в том числе отмененные), удалить нельзя: ErrProviderHasAppointments
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(providersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return ErrProviderHasAppointments
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProviderNotFound
	}

	return nil
}

func (r *Repository) insertIntervals(ctx context.Context, executor DBExecutor, providerID string, intervals []domain.WorkInterval) error {
	if len(intervals) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(intervalsTable).Columns(intervalColumns...)
	for i, interval := range intervals {
		insertBuilder = insertBuilder.Values(
			providerID,
			i,
			int(interval.DayOfWeek),
			interval.Start,
			interval.End,
			string(interval.Category),
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertIntervals - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertIntervals - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// listIntervals получает расписания барберов, сгруппированные по ID, в порядке заведения
func (r *Repository) listIntervals(ctx context.Context, executor DBExecutor, providerIDs []string) (map[string][]domain.WorkInterval, error) {
	query, args, err := psqlbuilder.Select(intervalColumns...).
		From(intervalsTable).
		Where(squirrel.Eq{"provider_id": providerIDs}).
		OrderBy("provider_id ASC", "position ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[string][]domain.WorkInterval, len(providerIDs))
	for rows.Next() {
		var (
			providerID string
			position   int
			day        int
			category   string
			interval   domain.WorkInterval
		)
		if err := rows.Scan(&providerID, &position, &day, &interval.Start, &interval.End, &category); err != nil {
			return nil, fmt.Errorf("%w: listIntervals - scan row: %v", ErrScanRow, err)
		}
		interval.DayOfWeek = domain.DayOfWeek(day)
		interval.Category = domain.IntervalCategory(category)
		result[providerID] = append(result[providerID], interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listIntervals - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProvider(row rowScanner) (*domain.Provider, error) {
	var provider domain.Provider
	var days []int64
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&provider.ID, &provider.Name, pq.Array(&days), &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	provider.AvailableDays = make([]domain.DayOfWeek, 0, len(days))
	for _, d := range days {
		provider.AvailableDays = append(provider.AvailableDays, domain.DayOfWeek(d))
	}
	provider.CreatedAt = createdAt.Time
	provider.UpdatedAt = updatedAt.Time

	return &provider, nil
}

func daysToInts(days []domain.DayOfWeek) []int64 {
	result := make([]int64, len(days))
	for i, d := range days {
		result[i] = int64(d)
	}
	return result
}
