package paymentcredential

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

// Repository репозиторий учетных данных платежного провайдера
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учетных данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTutorEmail получает учетные данные тьютора
func (r *Repository) GetByTutorEmail(ctx context.Context, tutorEmail string) (*domain.PaymentCredentials, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tutor_email",
		"client_id",
		"client_secret",
		"payment_id",
		"created_at",
		"updated_at",
	).
		From("payment_credentials").
		Where(squirrel.Eq{"tutor_email": tutorEmail}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTutorEmail - build select query: %v", ErrBuildQuery, err)
	}

	var creds domain.PaymentCredentials
	var paymentID sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&creds.ID,
		&creds.TutorEmail,
		&creds.ClientID,
		&creds.ClientSecret,
		&paymentID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCredentialsNotFound
		}
		return nil, fmt.Errorf("%w: GetByTutorEmail - scan: %v", ErrScanRow, err)
	}

	if paymentID.Valid {
		creds.PaymentID = &paymentID.String
	}
	creds.CreatedAt = createdAt.Time
	creds.UpdatedAt = updatedAt.Time

	return &creds, nil
}

// SetLastPaymentID записывает id последнего исполненного платежа тьютора
func (r *Repository) SetLastPaymentID(ctx context.Context, tutorEmail, paymentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payment_credentials").
		Set("payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tutor_email": tutorEmail}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetLastPaymentID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetLastPaymentID - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetLastPaymentID - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCredentialsNotFound
	}

	return nil
}
