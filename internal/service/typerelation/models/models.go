package models

import (
	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// TypeRelationResponse модель правила совместимости для API
type TypeRelationResponse struct {
	ID           int64  `json:"id"`
	SourceTypeID int64  `json:"sourceTypeId"`
	TargetTypeID int64  `json:"targetTypeId"`
	Relation     string `json:"relation"`
}

// TypeRelationListResponse список правил совместимости
type TypeRelationListResponse struct {
	Relations []TypeRelationResponse `json:"relations"`
	Total     int                    `json:"total"`
}

// CreateTypeRelationRequest запрос на создание правила
type CreateTypeRelationRequest struct {
	SourceTypeID int64  `json:"sourceTypeId"`
	TargetTypeID int64  `json:"targetTypeId"`
	Relation     string `json:"relation"`
}

// UpdateTypeRelationRequest запрос на обновление правила (частичный)
type UpdateTypeRelationRequest struct {
	SourceTypeID *int64  `json:"sourceTypeId,omitempty"`
	TargetTypeID *int64  `json:"targetTypeId,omitempty"`
	Relation     *string `json:"relation,omitempty"`
}

// FromDomainTypeRelation конвертирует domain модель в API модель
func FromDomainTypeRelation(rel *domain.TypeRelation) *TypeRelationResponse {
	return &TypeRelationResponse{
		ID:           rel.ID,
		SourceTypeID: rel.SourceTypeID,
		TargetTypeID: rel.TargetTypeID,
		Relation:     string(rel.Relation),
	}
}

// FromDomainTypeRelationList конвертирует список domain моделей
func FromDomainTypeRelationList(relations []*domain.TypeRelation) *TypeRelationListResponse {
	out := make([]TypeRelationResponse, len(relations))
	for i, rel := range relations {
		out[i] = *FromDomainTypeRelation(rel)
	}
	return &TypeRelationListResponse{
		Relations: out,
		Total:     len(out),
	}
}
