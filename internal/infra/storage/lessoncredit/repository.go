package lessoncredit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TWS-LessonService/internal/domain"
	"github.com/m04kA/TWS-LessonService/pkg/dbmetrics"
	"github.com/m04kA/TWS-LessonService/pkg/psqlbuilder"
)

var creditColumns = []string{
	"id",
	"email",
	"name",
	"available_lessons",
	"all_paid_lessons",
	"used_trial",
	"last_booking_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с кредитами уроков студентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кредитов уроков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает запись о кредитах студента по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.LessonCredit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(creditColumns...).
		From("lesson_credits").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	credit, err := scanCredit(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCreditNotFound
		}
		return nil, fmt.Errorf("%w: GetByEmail - scan: %v", ErrScanRow, err)
	}

	return credit, nil
}

// MarkTrialUsed идемпотентно отмечает использование пробного урока.
// Если записи о студенте еще нет, она создается с нулевыми кредитами.
func (r *Repository) MarkTrialUsed(ctx context.Context, email, name string, bookedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lesson_credits").
		Columns("email", "name", "available_lessons", "all_paid_lessons", "used_trial", "last_booking_date").
		Values(email, name, 0, 0, true, bookedAt).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET used_trial = TRUE,
			    name = EXCLUDED.name,
			    last_booking_date = EXCLUDED.last_booking_date,
			    updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkTrialUsed - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkTrialUsed - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// ConsumeLesson атомарно списывает один доступный урок.
// Условие available_lessons >= 1 входит в сам UPDATE, поэтому конкурентные
// запросы на один email не могут увести баланс в минус.
func (r *Repository) ConsumeLesson(ctx context.Context, email string, bookedAt time.Time) (*domain.LessonCredit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("lesson_credits").
		Set("available_lessons", squirrel.Expr("available_lessons - 1")).
		Set("last_booking_date", bookedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"email": email}).
		Where(squirrel.GtOrEq{"available_lessons": 1}).
		Suffix("RETURNING " + joinColumns(creditColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ConsumeLesson - build update query: %v", ErrBuildQuery, err)
	}

	credit, err := scanCredit(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Либо записи нет, либо кредиты кончились - различаем отдельным чтением
			if _, getErr := r.GetByEmail(ctx, email); getErr != nil {
				return nil, getErr
			}
			return nil, ErrNoAvailableLessons
		}
		return nil, fmt.Errorf("%w: ConsumeLesson - scan: %v", ErrScanRow, err)
	}

	return credit, nil
}

// CreditLessons начисляет оплаченные уроки.
// Для нового студента создается запись с used_trial = false.
func (r *Repository) CreditLessons(ctx context.Context, email string, quantity int) (*domain.LessonCredit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("lesson_credits").
		Columns("email", "name", "available_lessons", "all_paid_lessons", "used_trial").
		Values(email, "", quantity, quantity, false).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET available_lessons = lesson_credits.available_lessons + EXCLUDED.available_lessons,
			    all_paid_lessons = lesson_credits.all_paid_lessons + EXCLUDED.all_paid_lessons,
			    updated_at = NOW()
			RETURNING ` + joinColumns(creditColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreditLessons - build upsert query: %v", ErrBuildQuery, err)
	}

	credit, err := scanCredit(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: CreditLessons - execute upsert: %v", ErrExecQuery, err)
	}

	return credit, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanCredit сканирует полную строку lesson_credits
func scanCredit(row rowScanner) (*domain.LessonCredit, error) {
	var credit domain.LessonCredit
	var lastBookingDate, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&credit.ID,
		&credit.Email,
		&credit.Name,
		&credit.AvailableLessons,
		&credit.AllPaidLessons,
		&credit.UsedTrial,
		&lastBookingDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastBookingDate.Valid {
		credit.LastBookingDate = &lastBookingDate.Time
	}
	credit.CreatedAt = createdAt.Time
	credit.UpdatedAt = updatedAt.Time

	return &credit, nil
}

// joinColumns собирает список колонок для RETURNING
func joinColumns(columns []string) string {
	result := ""
	for i, col := range columns {
		if i > 0 {
			result += ", "
		}
		result += col
	}
	return result
}
