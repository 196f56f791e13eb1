package typerelation

import (
	"context"
	"errors"
	"fmt"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	relationRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/typerelation"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

// Service сервис правил совместимости типов духов
// Помимо CRUD отвечает за симметричный поиск правила между двумя типами
// с дефолтом allow при отсутствии настроенного правила
type Service struct {
	relationRepo TypeRelationRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса правил совместимости
func NewService(relationRepo TypeRelationRepository, logger Logger) *Service {
	return &Service{
		relationRepo: relationRepo,
		logger:       logger,
	}
}

// List возвращает все правила совместимости
func (s *Service) List(ctx context.Context) (*models.TypeRelationListResponse, error) {
	relations, err := s.relationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTypeRelationList(relations), nil
}

// Create создает правило совместимости
func (s *Service) Create(ctx context.Context, req *models.CreateTypeRelationRequest) (*models.TypeRelationResponse, error) {
	s.logger.Info("Create: relation %s between types %d and %d", req.Relation, req.SourceTypeID, req.TargetTypeID)

	if req.SourceTypeID <= 0 || req.TargetTypeID <= 0 {
		return nil, fmt.Errorf("%w: type ids must be positive", ErrInvalidInput)
	}

	relation, err := domain.ParseRelationType(req.Relation)
	if err != nil {
		s.logger.Warn("Create: invalid relation value %q", req.Relation)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rel := &domain.TypeRelation{
		SourceTypeID: req.SourceTypeID,
		TargetTypeID: req.TargetTypeID,
		Relation:     relation,
	}

	created, err := s.relationRepo.Create(ctx, rel)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: relation id=%d created", created.ID)
	return models.FromDomainTypeRelation(created), nil
}

// GetByID получает правило совместимости по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TypeRelationResponse, error) {
	rel, err := s.relationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, relationRepo.ErrRelationNotFound) {
			s.logger.Warn("GetByID: relation id=%d not found", id)
			return nil, ErrRelationNotFound
		}
		s.logger.Error("GetByID: repository error for relation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTypeRelation(rel), nil
}

// Update обновляет правило совместимости (частичное обновление)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTypeRelationRequest) (*models.TypeRelationResponse, error) {
	s.logger.Info("Update: updating relation id=%d", id)

	rel, err := s.relationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, relationRepo.ErrRelationNotFound) {
			s.logger.Warn("Update: relation id=%d not found", id)
			return nil, ErrRelationNotFound
		}
		s.logger.Error("Update: repository error for relation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.SourceTypeID != nil {
		if *req.SourceTypeID <= 0 {
			return nil, fmt.Errorf("%w: sourceTypeId must be positive", ErrInvalidInput)
		}
		rel.SourceTypeID = *req.SourceTypeID
	}
	if req.TargetTypeID != nil {
		if *req.TargetTypeID <= 0 {
			return nil, fmt.Errorf("%w: targetTypeId must be positive", ErrInvalidInput)
		}
		rel.TargetTypeID = *req.TargetTypeID
	}
	if req.Relation != nil {
		relation, err := domain.ParseRelationType(*req.Relation)
		if err != nil {
			s.logger.Warn("Update: invalid relation value %q for id=%d", *req.Relation, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rel.Relation = relation
	}

	if err := s.relationRepo.Update(ctx, rel); err != nil {
		if errors.Is(err, relationRepo.ErrRelationNotFound) {
			return nil, ErrRelationNotFound
		}
		s.logger.Error("Update: repository error for relation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: relation id=%d updated", id)
	return models.FromDomainTypeRelation(rel), nil
}

// Delete удаляет правило совместимости
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting relation id=%d", id)

	if err := s.relationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, relationRepo.ErrRelationNotFound) {
			s.logger.Warn("Delete: relation id=%d not found", id)
			return ErrRelationNotFound
		}
		s.logger.Error("Delete: repository error for relation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// RelationBetween возвращает класс совместимости между двумя типами
// Поиск симметричный: сначала пара (a, b), затем (b, a); результат не
// зависит от порядка аргументов. Отсутствие настроенного правила не
// ошибка, возвращается allow
func (s *Service) RelationBetween(ctx context.Context, typeA, typeB int64) (domain.RelationType, error) {
	rel, err := s.relationRepo.GetBetween(ctx, typeA, typeB)
	if err != nil {
		if errors.Is(err, relationRepo.ErrRelationNotFound) {
			return domain.RelationAllow, nil
		}
		s.logger.Error("RelationBetween: repository error for types (%d, %d): %v", typeA, typeB, err)
		return "", fmt.Errorf("%w: RelationBetween - repository error: %v", ErrInternal, err)
	}

	return rel.Relation, nil
}
