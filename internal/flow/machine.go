package flow

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/elitejetskis/EJS-BookingService/internal/domain"
	createBooking "github.com/elitejetskis/EJS-BookingService/internal/usecase/create_booking"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+971|00971|0)?[0-9]{9}$`)
)

// Machine однопоточная машина состояний потока бронирования
//
// package-selection → datetime-selection → customer-details →
// summary-confirmation → confirmed
//
// Переходы только через именованные действия; каждое действие проверяет
// предусловие своего шага. Back откатывает ровно один шаг, не стирая уже
// введенные данные. Состояние confirmed терминально.
//
// Машина не потокобезопасна: поток бронирования - это кооперативная
// последовательность взаимодействий одного клиента.
type Machine struct {
	step      Step
	draft     Draft
	reference string
	inFlight  bool

	writer ReservationWriter
	logger Logger
}

// NewMachine создает новый поток бронирования на шаге выбора пакета
func NewMachine(writer ReservationWriter, logger Logger) *Machine {
	return &Machine{
		step:   StepPackageSelection,
		writer: writer,
		logger: logger,
	}
}

// Step возвращает текущий шаг потока
func (m *Machine) Step() Step {
	return m.step
}

// Draft возвращает копию текущего черновика
func (m *Machine) Draft() Draft {
	return m.draft
}

// Reference возвращает номер бронирования (непустой только на шаге confirmed)
func (m *Machine) Reference() string {
	return m.reference
}

// SelectPackage выбирает пакет тура и переводит поток к выбору даты и времени
func (m *Machine) SelectPackage(pkg *domain.Package) error {
	if m.step == StepConfirmed {
		return ErrFlowFinished
	}
	if m.step != StepPackageSelection {
		return fmt.Errorf("%w: SelectPackage at step %s", ErrInvalidTransition, m.step)
	}
	if pkg == nil || !pkg.IsActive {
		return ErrPackageInactive
	}

	m.draft.Package = pkg
	m.step = StepDateTimeSelection

	m.logger.Info("Flow: package %s selected", pkg.ID)
	return nil
}

// SelectSlot выбирает дату и слот и переводит поток к вводу данных клиента
// Дата и время выбираются атомарно: смена даты не переносит ранее
// выбранное время, классифицированное по другой дате
func (m *Machine) SelectSlot(date time.Time, slot domain.Slot) error {
	if m.step == StepConfirmed {
		return ErrFlowFinished
	}
	if m.step != StepDateTimeSelection {
		return fmt.Errorf("%w: SelectSlot at step %s", ErrInvalidTransition, m.step)
	}
	if !slot.IsSelectable() {
		return fmt.Errorf("%w: slot %s is %s", ErrSlotNotSelectable, slot.StartTime, slot.Status)
	}

	m.draft.Date = date
	m.draft.StartTime = slot.StartTime
	m.step = StepCustomerDetails

	m.logger.Info("Flow: slot %s %s selected", date.Format(domain.DateFormat), slot.StartTime)
	return nil
}

// SubmitDetails принимает данные клиента и переводит поток к подтверждению
// Валидация полностью повторяет серверные предусловия createBooking,
// чтобы поток не подошел к подтверждению с данными, которые сервер отклонит
func (m *Machine) SubmitDetails(details CustomerDetails) error {
	if m.step == StepConfirmed {
		return ErrFlowFinished
	}
	if m.step != StepCustomerDetails {
		return fmt.Errorf("%w: SubmitDetails at step %s", ErrInvalidTransition, m.step)
	}

	if err := m.validateDetails(details); err != nil {
		return err
	}

	m.draft.Details = details
	m.step = StepSummaryConfirmation

	m.logger.Info("Flow: customer details accepted for %s", details.CustomerEmail)
	return nil
}

// SetPromoCode сохраняет промокод в черновике (шаг подтверждения)
// Код персистится вместе с бронированием, скидка не рассчитывается
func (m *Machine) SetPromoCode(code string) error {
	if m.step != StepSummaryConfirmation {
		return fmt.Errorf("%w: SetPromoCode at step %s", ErrInvalidTransition, m.step)
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		m.draft.PromoCode = nil
		return nil
	}
	m.draft.PromoCode = &code
	return nil
}

// Confirm выполняет запись бронирования и переводит поток в confirmed
//
// Пока запрос не завершился, повторное подтверждение блокируется флагом
// inFlight - один клиент не может отправить дубль. При конфликте слота поток
// возвращается к выбору времени, сохраняя пакет и данные клиента. При любой
// другой ошибке поток остается на подтверждении и допускает повтор без
// повторного ввода данных.
func (m *Machine) Confirm(ctx context.Context) (string, error) {
	if m.step == StepConfirmed {
		return "", ErrFlowFinished
	}
	if m.step != StepSummaryConfirmation {
		return "", fmt.Errorf("%w: Confirm at step %s", ErrInvalidTransition, m.step)
	}
	if m.inFlight {
		return "", ErrRequestInFlight
	}

	m.inFlight = true
	defer func() { m.inFlight = false }()

	req := &createBooking.Request{
		PackageID:           m.draft.Package.ID,
		Date:                m.draft.Date,
		StartTime:           m.draft.StartTime,
		CustomerName:        m.draft.Details.CustomerName,
		CustomerEmail:       m.draft.Details.CustomerEmail,
		CustomerPhone:       m.draft.Details.CustomerPhone,
		NumParticipants:     m.draft.Details.NumParticipants,
		EmergencyContact:    m.draft.Details.EmergencyContact,
		SpecialRequirements: m.draft.Details.SpecialRequirements,
		TotalPrice:          m.draft.Package.PriceAED,
		PromoCode:           m.draft.PromoCode,
	}

	resp, err := m.writer.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, createBooking.ErrSlotConflict) {
			// Слот перехвачен другим клиентом - возвращаемся к выбору времени,
			// пакет и данные клиента сохраняются
			m.draft.StartTime = ""
			m.step = StepDateTimeSelection
			m.logger.Warn("Flow: slot conflict, returning to datetime selection")
			return "", err
		}

		m.logger.Error("Flow: confirmation failed: %v", err)
		return "", err
	}

	// Подтверждение засчитывается только с номером, выданным хранилищем
	if resp == nil || resp.BookingReference == "" {
		m.logger.Error("Flow: booking created without reference")
		return "", ErrMissingReference
	}

	m.reference = resp.BookingReference
	m.step = StepConfirmed

	m.logger.Info("Flow: booking confirmed, reference=%s", m.reference)
	return m.reference, nil
}

// Back откатывает поток ровно на один шаг
// Данные, введенные на других шагах, сохраняются в черновике
func (m *Machine) Back() error {
	if m.inFlight {
		return ErrRequestInFlight
	}

	switch m.step {
	case StepDateTimeSelection:
		m.step = StepPackageSelection
	case StepCustomerDetails:
		m.step = StepDateTimeSelection
	case StepSummaryConfirmation:
		m.step = StepCustomerDetails
	case StepConfirmed:
		return ErrFlowFinished
	default:
		return fmt.Errorf("%w: Back at step %s", ErrInvalidTransition, m.step)
	}

	return nil
}

func (m *Machine) validateDetails(details CustomerDetails) error {
	if strings.TrimSpace(details.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidDetails)
	}
	if !emailPattern.MatchString(details.CustomerEmail) {
		return fmt.Errorf("%w: customerEmail is not a valid email address", ErrInvalidDetails)
	}
	if !phonePattern.MatchString(strings.ReplaceAll(details.CustomerPhone, " ", "")) {
		return fmt.Errorf("%w: customerPhone is not a valid UAE phone number", ErrInvalidDetails)
	}
	if details.NumParticipants < domain.MinParticipants {
		return fmt.Errorf("%w: numParticipants must be at least %d", ErrInvalidDetails, domain.MinParticipants)
	}
	if m.draft.Package.MaxParticipants > 0 && details.NumParticipants > m.draft.Package.MaxParticipants {
		return fmt.Errorf("%w: numParticipants exceeds package limit of %d",
			ErrInvalidDetails, m.draft.Package.MaxParticipants)
	}
	if !details.AcceptedTerms {
		return ErrTermsNotAccepted
	}
	return nil
}
