package get_available_time_slots

import (
	"context"
	"fmt"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	"github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
)

// UseCase use case для получения свободных часовых слотов на дату
type UseCase struct {
	availability AvailabilityProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityProvider, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения свободных слотов
//
// Сетка слотов фиксированная и не зависит от данных. Слот попадает в ответ,
// только если в его окне есть хотя бы одно доступное место. Порядок меток
// в ответе совпадает с порядком сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimeSlots: spirit=%d, date=%s",
		req.SpiritID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimeSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		SpiritID: req.SpiritID,
		Date:     req.Date,
		Slots:    []string{},
	}

	// 2. Текущее время в часовом поясе заведения:
	// "сегодня" и "прошлое" определяются по календарю заведения
	now := uc.timeProvider.Now()
	venueNow := now.In(domain.VenueLocation())

	// 3. Прошедшая дата - пустой список, не ошибка
	if isDateInPast(req.Date, venueNow) {
		uc.logger.Info("GetAvailableTimeSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	today := isSameDay(req.Date, venueNow)

	// 4. Проходим сетку по порядку, для каждого слота считаем доступность
	for _, label := range domain.TimeSlots {
		slotStart, slotEnd, err := slotWindow(req.Date, label)
		if err != nil {
			uc.logger.Error("GetAvailableTimeSlots: bad slot label %q: %v", label, err)
			return nil, fmt.Errorf("%w: bad slot label %q: %v", ErrInternal, label, err)
		}

		// Для сегодняшней даты пропускаем слоты, чье окно уже закончилось
		if today && !slotEnd.After(now) {
			continue
		}

		availability, err := uc.availability.Execute(ctx, &list_available_seats.Request{
			SpiritID:  req.SpiritID,
			StartTime: slotStart,
		})
		if err != nil {
			uc.logger.Error("GetAvailableTimeSlots: availability check failed for slot %s: %v", label, err)
			return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if availability.HasFreeSeat() {
			resp.Slots = append(resp.Slots, label)
		}
	}

	uc.logger.Info("GetAvailableTimeSlots: spirit=%d, date=%s, %d free slots",
		req.SpiritID, req.Date.Format(domain.DateFormat), len(resp.Slots))

	return resp, nil
}
