package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
)

const calendarDateLayout = "20060102T150405Z"

// Notifier собирает текст подтверждения и ссылки передачи бронирования
// бизнесу через WhatsApp. Сервис ничего не отправляет сам: результат -
// ссылка, по которой клиент открывает WhatsApp с уже заполненным сообщением
type Notifier struct {
	number   string
	location string
}

// New создает Notifier с номером бизнеса и адресом точки сбора
func New(number, location string) *Notifier {
	return &Notifier{
		number:   number,
		location: location,
	}
}

// ConfirmationMessage строит текст подтверждения бронирования
// Опциональные строки (экстренный контакт, особые требования) включаются
// только при наличии значений
func (n *Notifier) ConfirmationMessage(b *createBooking.Response, createdAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("🌊 *New Booking - Elite Jetskis AE* 🌊\n\n")

	sb.WriteString("📋 *Booking Details:*\n")
	fmt.Fprintf(&sb, "• Reference: %s\n", b.BookingReference)
	fmt.Fprintf(&sb, "• Package: %s\n", b.PackageName)
	fmt.Fprintf(&sb, "• Duration: %d minutes\n", b.DurationMinutes)
	fmt.Fprintf(&sb, "• Price: %g AED\n\n", b.TotalPrice)

	sb.WriteString("📅 *Date & Time:*\n")
	fmt.Fprintf(&sb, "• Date: %s (%s)\n", b.BookingDate.Format("January 2, 2006"), b.BookingDate.Weekday())
	fmt.Fprintf(&sb, "• Time: %s\n\n", b.StartTime)

	sb.WriteString("👤 *Customer Information:*\n")
	fmt.Fprintf(&sb, "• Name: %s\n", b.CustomerName)
	fmt.Fprintf(&sb, "• Phone: %s\n", b.CustomerPhone)
	fmt.Fprintf(&sb, "• Email: %s\n", b.CustomerEmail)
	fmt.Fprintf(&sb, "• Participants: %d\n", b.NumParticipants)

	if b.EmergencyContact != nil && *b.EmergencyContact != "" {
		fmt.Fprintf(&sb, "\n🚨 *Emergency Contact:* %s", *b.EmergencyContact)
	}
	if b.SpecialRequirements != nil && *b.SpecialRequirements != "" {
		fmt.Fprintf(&sb, "\n📝 *Special Requirements:* %s", *b.SpecialRequirements)
	}

	sb.WriteString("\n\n💰 *Payment:* Please share payment options (bank transfer or cash on arrival)\n")
	fmt.Fprintf(&sb, "📍 *Location:* %s\n\n", n.location)

	fmt.Fprintf(&sb, "_Booking created: %s_", createdAt.Format("02/01/2006, 15:04:05"))

	return sb.String()
}

// HandoffURL строит ссылку wa.me с предзаполненным сообщением
func (n *Notifier) HandoffURL(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", n.number, url.QueryEscape(message))
}

// ContactURL строит ссылку wa.me без сообщения (кнопка "WhatsApp Us")
func (n *Notifier) ContactURL() string {
	return fmt.Sprintf("https://wa.me/%s", n.number)
}

// CalendarURL строит ссылку добавления бронирования в Google Calendar
// Интервал события - слот бронирования длиной в продолжительность пакета
func (n *Notifier) CalendarURL(b *createBooking.Response) (string, error) {
	startLocal, err := b.StartTime.At(b.BookingDate)
	if err != nil {
		return "", fmt.Errorf("whatsapp: CalendarURL - invalid booking time: %w", err)
	}

	start := startLocal.UTC()
	end := start.Add(time.Duration(b.DurationMinutes) * time.Minute)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", b.PackageName)
	params.Set("dates", start.Format(calendarDateLayout)+"/"+end.Format(calendarDateLayout))
	params.Set("location", n.location)
	params.Set("details", fmt.Sprintf("Booking Reference: %s", b.BookingReference))

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}
