package tutor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	"github.com/m04kA/TWS-LessonService/pkg/dbmetrics"
	"github.com/m04kA/TWS-LessonService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов к БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий справочника тьюторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тьюторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает тьютора по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.TutorInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"email",
		"name",
		"calendar_id",
		"created_at",
	).
		From("tutors").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.TutorInfo
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.ID,
		&info.Email,
		&info.Name,
		&info.CalendarID,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTutorNotFound
		}
		return nil, fmt.Errorf("%w: GetByEmail - scan: %v", ErrScanRow, err)
	}

	info.CreatedAt = createdAt.Time

	return &info, nil
}
