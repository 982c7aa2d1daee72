package submit_booking

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserRef   string           // Идентификатор пользователя из заголовка
	PackageID string           // ID пакета фотосессии
	Date      time.Time        // Дата съемки (без времени)
	StartTime types.TimeString // Время начала, должно входить в сетку слотов
	FullName  string
	Email     string
	Mobile    string
	Location  domain.GeoPoint // Точка съемки
}

// Response модель ответа на создание бронирования
// Ордер платежного шлюза уходит клиенту для открытия формы оплаты
type Response struct {
	BookingID   string
	Status      string
	OrderID     string
	AmountPaise int64
	Currency    string
	Date        time.Time
	StartTime   types.TimeString
}
