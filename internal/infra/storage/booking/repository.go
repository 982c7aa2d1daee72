package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/dbmetrics"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки postgres при нарушении уникального ограничения
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"user_ref",
	"package_id",
	"booking_date",
	"start_time",
	"status",
	"full_name",
	"email",
	"mobile",
	"lat",
	"lng",
	"razorpay_order_id",
	"razorpay_payment_id",
	"razorpay_signature",
	"rejection_reason",
	"rejected_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в статусе pending
// Гонку за слот ловит частичный уникальный индекс по (booking_date, start_time)
// для статусов pending/paid - в этом случае возвращается ErrSlotTaken
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_ref",
			"package_id",
			"booking_date",
			"start_time",
			"status",
			"full_name",
			"email",
			"mobile",
			"lat",
			"lng",
		).
		Values(
			booking.ID,
			booking.UserRef,
			booking.PackageID,
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
			booking.FullName,
			booking.Email,
			booking.Mobile,
			booking.Location.Lat,
			booking.Location.Lng,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserRef получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserRef(ctx context.Context, userRef string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_ref": userRef}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserRef - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserRef - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByDateRange получает бронирования в диапазоне дат с указанными статусами
// Основной запрос снимка занятости: статусы pending/paid на видимый месяц
//
// Если вызов идет внутри транзакции и диапазон сужен до одного дня,
// добавляется FOR UPDATE - так create-flow блокирует день от параллельных вставок
func (r *Repository) GetByDateRange(ctx context.Context, start, end time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": start}).
		Where(squirrel.LtOrEq{"booking_date": end}).
		Where(squirrel.Eq{"status": statusStrings}).
		OrderBy("booking_date ASC, start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && start.Equal(end) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetWithFilter получает бронирования по фильтру администратора
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AdminBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("booking_date DESC, start_time DESC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// SetOrder записывает ID платежного ордера на pending-бронирование
func (r *Repository) SetOrder(ctx context.Context, id string, orderID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("razorpay_order_id", orderID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetOrder - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOrder - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOrder - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

// MarkPaid переводит бронирование pending -> paid с записью платежных реквизитов
// Условие status = 'pending' в WHERE - защита от повторной обработки callback:
// повторный вызов не затронет ни одной строки и вернет ErrNotPending
func (r *Repository) MarkPaid(ctx context.Context, id string, paymentID string, signature string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusPaid).
		Set("razorpay_payment_id", paymentID).
		Set("razorpay_signature", signature).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotPending
	}

	return nil
}

// Reject снимает бронирование с указанием причины
func (r *Repository) Reject(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusRejected).
		Set("rejection_reason", reason).
		Set("rejected_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reject - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Reject - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reject - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ExpirePendingBefore снимает pending-бронирования, созданные раньше deadline
// Возвращает снятые бронирования - по ним рассылаются уведомления
// и инвалидируется снимок занятости
func (r *Repository) ExpirePendingBefore(ctx context.Context, deadline time.Time, reason string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusRejected).
		Set("rejection_reason", reason).
		Set("rejected_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.Lt{"created_at": deadline}).
		Suffix("RETURNING " + joinColumns(bookingColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ExpirePendingBefore - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExpirePendingBefore - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserRef,
		&booking.PackageID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.Status,
		&booking.FullName,
		&booking.Email,
		&booking.Mobile,
		&booking.Location.Lat,
		&booking.Location.Lng,
		&booking.RazorpayOrderID,
		&booking.RazorpayPaymentID,
		&booking.RazorpaySignature,
		&booking.RejectionReason,
		&booking.RejectedAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func joinColumns(columns []string) string {
	result := ""
	for i, c := range columns {
		if i > 0 {
			result += ", "
		}
		result += c
	}
	return result
}
