package typerelation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	relationRepo "github.com/tak4ma/VMS-BanquetService/internal/infra/storage/typerelation"
	"github.com/tak4ma/VMS-BanquetService/internal/service/typerelation/models"
)

type pair struct {
	source int64
	target int64
}

// fakeRelationRepo хранит правила в map с точным совпадением направления,
// как и реальный репозиторий: симметрию обеспечивает GetBetween
type fakeRelationRepo struct {
	rules map[pair]domain.RelationType
	err   error
}

func (f *fakeRelationRepo) Create(_ context.Context, rel *domain.TypeRelation) (*domain.TypeRelation, error) {
	return rel, nil
}

func (f *fakeRelationRepo) List(_ context.Context) ([]*domain.TypeRelation, error) {
	return nil, nil
}

func (f *fakeRelationRepo) GetByID(_ context.Context, _ int64) (*domain.TypeRelation, error) {
	return nil, relationRepo.ErrRelationNotFound
}

func (f *fakeRelationRepo) Update(_ context.Context, _ *domain.TypeRelation) error {
	return nil
}

func (f *fakeRelationRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeRelationRepo) GetBetween(_ context.Context, sourceTypeID, targetTypeID int64) (*domain.TypeRelation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if rel, ok := f.rules[pair{sourceTypeID, targetTypeID}]; ok {
		return &domain.TypeRelation{SourceTypeID: sourceTypeID, TargetTypeID: targetTypeID, Relation: rel}, nil
	}
	if rel, ok := f.rules[pair{targetTypeID, sourceTypeID}]; ok {
		return &domain.TypeRelation{SourceTypeID: targetTypeID, TargetTypeID: sourceTypeID, Relation: rel}, nil
	}
	return nil, relationRepo.ErrRelationNotFound
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestRelationBetween_SymmetricLookup(t *testing.T) {
	repo := &fakeRelationRepo{rules: map[pair]domain.RelationType{
		{1, 2}: domain.RelationSeparation,
	}}
	svc := NewService(repo, noopLogger{})

	direct, err := svc.RelationBetween(context.Background(), 1, 2)
	require.NoError(t, err)

	inverse, err := svc.RelationBetween(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Equal(t, domain.RelationSeparation, direct)
	assert.Equal(t, direct, inverse)
}

func TestRelationBetween_DefaultsToAllow(t *testing.T) {
	svc := NewService(&fakeRelationRepo{rules: map[pair]domain.RelationType{}}, noopLogger{})

	rel, err := svc.RelationBetween(context.Background(), 7, 8)
	require.NoError(t, err)
	assert.Equal(t, domain.RelationAllow, rel)
}

func TestRelationBetween_RepositoryErrorPropagates(t *testing.T) {
	svc := NewService(&fakeRelationRepo{err: errors.New("connection refused")}, noopLogger{})

	_, err := svc.RelationBetween(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCreate_RejectsUnknownRelation(t *testing.T) {
	svc := NewService(&fakeRelationRepo{}, noopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateTypeRelationRequest{
		SourceTypeID: 1,
		TargetTypeID: 2,
		Relation:     "friendly",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
