package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
)

// newBookingReference генерирует клиентский номер бронирования
// Формат: EJ-YYYYMMDD-XXXXXXXX, где суффикс - 8 hex-символов из случайного UUID.
// Номер генерируется только на сервере; клиент никогда не синтезирует
// номер сам - это означало бы "подтверждение" без записи в хранилище.
func newBookingReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", domain.BookingReferencePrefix, now.Format("20060102"), suffix)
}
