package flow

import "errors"

var (
	// ErrInvalidTransition возвращается при действии, недопустимом на текущем шаге
	// Шаги не пропускаются: каждое действие разрешено ровно на одном шаге
	ErrInvalidTransition = errors.New("flow: action is not allowed at current step")

	// ErrSlotNotSelectable возвращается при выборе занятого или прошедшего слота
	ErrSlotNotSelectable = errors.New("flow: slot is not selectable")

	// ErrPackageInactive возвращается при выборе неактивного пакета
	ErrPackageInactive = errors.New("flow: package is not active")

	// ErrInvalidDetails возвращается при непройденной валидации данных клиента
	// Текст ошибки называет поле
	ErrInvalidDetails = errors.New("flow: invalid customer details")

	// ErrTermsNotAccepted возвращается, когда условия не приняты
	ErrTermsNotAccepted = errors.New("flow: terms and conditions must be accepted")

	// ErrRequestInFlight возвращается при повторном подтверждении,
	// пока предыдущий запрос не завершился
	ErrRequestInFlight = errors.New("flow: confirmation request is already in flight")

	// ErrFlowFinished возвращается при действиях над завершённым потоком
	// Новое бронирование требует нового экземпляра машины
	ErrFlowFinished = errors.New("flow: booking flow is finished")

	// ErrMissingReference возвращается, если запись прошла без номера бронирования
	// Подтверждение без номера из хранилища - ошибка корректности, не fallback
	ErrMissingReference = errors.New("flow: store did not return a booking reference")
)
