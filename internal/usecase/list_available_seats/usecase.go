package list_available_seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	spiritRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/spirit"
)

// UseCase use case расчета доступности мест банкетного зала
// для конкретного духа на конкретный момент времени
type UseCase struct {
	banquetRepo     BanquetRepository
	reservationRepo ReservationRepository
	spiritRepo      SpiritRepository
	relations       RelationResolver
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	banquetRepo BanquetRepository,
	reservationRepo ReservationRepository,
	spiritRepo SpiritRepository,
	relations RelationResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		banquetRepo:     banquetRepo,
		reservationRepo: reservationRepo,
		spiritRepo:      spiritRepo,
		relations:       relations,
		logger:          logger,
	}
}

// Execute выполняет расчет доступности
//
// Порядок шагов фиксированный: тип запрашивающего духа → топология залов →
// один пакетный запрос пересечений по всем местам сразу (все столы видят
// один и тот же снимок броней) → попарный проход совместимости по каждому
// столу. Операция только читает, никаких записей не происходит
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAvailableSeats: spirit=%d, start=%s", req.SpiritID, req.StartTime.Format("2006-01-02T15:04:05Z07:00"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListAvailableSeats: validation failed: %v", err)
		return nil, err
	}

	windowStart := req.StartTime
	windowEnd := windowStart.Add(domain.SlotDuration)

	resp := &Response{
		SpiritID:  req.SpiritID,
		StartTime: windowStart,
		EndTime:   windowEnd,
		Tables:    []TableAvailability{},
	}

	// 1. Тип запрашивающего духа. Неизвестный дух - не ошибка:
	// возвращаем пустой результат ("нет информации")
	requester, err := uc.spiritRepo.GetByID(ctx, req.SpiritID)
	if err != nil {
		if errors.Is(err, spiritRepo.ErrSpiritNotFound) {
			uc.logger.Warn("ListAvailableSeats: spirit id=%d not found, returning empty result", req.SpiritID)
			return resp, nil
		}
		uc.logger.Error("ListAvailableSeats: failed to get spirit id=%d: %v", req.SpiritID, err)
		return nil, fmt.Errorf("%w: failed to get spirit: %v", ErrInternal, err)
	}

	// 2. Топология: все столы с местами
	tables, err := uc.banquetRepo.ListWithSeats(ctx)
	if err != nil {
		uc.logger.Error("ListAvailableSeats: failed to list tables: %v", err)
		return nil, fmt.Errorf("%w: failed to list tables: %v", ErrInternal, err)
	}

	// 3. Один пакетный запрос пересечений для всех мест всех столов
	seatIDs := collectSeatIDs(tables)
	occupancy, err := uc.reservationRepo.FindOverlapping(ctx, seatIDs, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("ListAvailableSeats: failed to find overlapping reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to find overlapping reservations: %v", ErrInternal, err)
	}

	// 4. Проход совместимости по каждому столу
	resp.Tables = make([]TableAvailability, 0, len(tables))
	for _, t := range tables {
		ta, err := uc.buildTableAvailability(ctx, requester.TypeID, t, occupancy)
		if err != nil {
			return nil, err
		}
		resp.Tables = append(resp.Tables, *ta)
	}

	uc.logger.Info("ListAvailableSeats: spirit=%d, %d tables, %d occupied seats",
		req.SpiritID, len(resp.Tables), len(occupancy))

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.SpiritID <= 0 {
		return fmt.Errorf("%w: spiritID must be positive", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	return nil
}

func collectSeatIDs(tables []*domain.BanquetTable) []int64 {
	ids := make([]int64, 0)
	for _, t := range tables {
		for _, s := range t.Seats {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
