package banquet

import (
	"context"
	"errors"
	"fmt"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	banquetRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/banquet"
	"github.com/tak4ma/VMS-BanquetService/internal/service/banquet/models"
)

// Service сервис столов и мест банкетного зала
type Service struct {
	banquetRepo BanquetRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса банкетного зала
func NewService(banquetRepo BanquetRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		banquetRepo: banquetRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ListTables возвращает все столы с местами
func (s *Service) ListTables(ctx context.Context) (*models.TableListResponse, error) {
	tables, err := s.banquetRepo.ListWithSeats(ctx)
	if err != nil {
		s.logger.Error("ListTables: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTables - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTableList(tables), nil
}

// CreateTable создает стол и автоматически места 1..capacity
// Вставка стола и мест выполняется в одной транзакции
func (s *Service) CreateTable(ctx context.Context, req *models.CreateTableRequest) (*models.TableResponse, error) {
	capacity := domain.DefaultTableCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	state := true
	if req.State != nil {
		state = *req.State
	}

	if capacity < domain.MinTableCapacity || capacity > domain.MaxTableCapacity {
		s.logger.Warn("CreateTable: capacity %d out of range", capacity)
		return nil, fmt.Errorf("%w: capacity must be between %d and %d",
			ErrInvalidInput, domain.MinTableCapacity, domain.MaxTableCapacity)
	}

	s.logger.Info("CreateTable: creating table with capacity=%d, state=%v", capacity, state)

	var created *domain.BanquetTable
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.banquetRepo.Create(txCtx, capacity, state)
		return err
	})
	if err != nil {
		s.logger.Error("CreateTable: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTable: table id=%d created with %d seats", created.ID, len(created.Seats))
	return models.FromDomainTable(created), nil
}

// GetTable получает стол по ID
func (s *Service) GetTable(ctx context.Context, id int64) (*models.TableResponse, error) {
	table, err := s.banquetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, banquetRepo.ErrTableNotFound) {
			s.logger.Warn("GetTable: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("GetTable: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetTable - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTable(table), nil
}

// UpdateTable обновляет состояние стола
func (s *Service) UpdateTable(ctx context.Context, id int64, req *models.UpdateTableRequest) (*models.TableResponse, error) {
	if req.State == nil {
		s.logger.Warn("UpdateTable: empty update for table id=%d", id)
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}

	s.logger.Info("UpdateTable: updating table id=%d, state=%v", id, *req.State)

	if err := s.banquetRepo.UpdateState(ctx, id, *req.State); err != nil {
		if errors.Is(err, banquetRepo.ErrTableNotFound) {
			s.logger.Warn("UpdateTable: table id=%d not found", id)
			return nil, ErrTableNotFound
		}
		s.logger.Error("UpdateTable: repository error for table id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateTable - repository error: %v", ErrInternal, err)
	}

	return s.GetTable(ctx, id)
}

// DeleteTable удаляет стол вместе с местами (в одной транзакции)
func (s *Service) DeleteTable(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTable: deleting table id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.banquetRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, banquetRepo.ErrTableNotFound) {
			s.logger.Warn("DeleteTable: table id=%d not found", id)
			return ErrTableNotFound
		}
		s.logger.Error("DeleteTable: repository error for table id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteTable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTable: table id=%d deleted", id)
	return nil
}

// ListSeats возвращает места, опционально для одного стола
func (s *Service) ListSeats(ctx context.Context, tableID *int64) (*models.SeatListResponse, error) {
	seats, err := s.banquetRepo.ListSeats(ctx, tableID)
	if err != nil {
		s.logger.Error("ListSeats: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSeats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSeatList(seats), nil
}

// GetSeat получает место по ID
func (s *Service) GetSeat(ctx context.Context, id int64) (*models.SeatResponse, error) {
	seat, err := s.banquetRepo.GetSeatByID(ctx, id)
	if err != nil {
		if errors.Is(err, banquetRepo.ErrSeatNotFound) {
			s.logger.Warn("GetSeat: seat id=%d not found", id)
			return nil, ErrSeatNotFound
		}
		s.logger.Error("GetSeat: repository error for seat id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSeat - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSeat(seat)
	return &resp, nil
}
