package models

import (
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
)

// TableResponse модель стола для API
type TableResponse struct {
	ID             int64          `json:"id"`
	Capacity       int            `json:"capacity"`
	State          bool           `json:"state"`
	AvailableSeats []SeatResponse `json:"availableSeats"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TableListResponse список столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
	Total  int             `json:"total"`
}

// SeatResponse модель места для API
type SeatResponse struct {
	ID         int64 `json:"id"`
	TableID    int64 `json:"tableId"`
	SeatNumber int   `json:"seatNumber"`
}

// SeatListResponse список мест
type SeatListResponse struct {
	Seats []SeatResponse `json:"seats"`
	Total int            `json:"total"`
}

// CreateTableRequest запрос на создание стола
// Capacity по умолчанию 6, State по умолчанию true
type CreateTableRequest struct {
	Capacity *int  `json:"capacity,omitempty"`
	State    *bool `json:"state,omitempty"`
}

// UpdateTableRequest запрос на обновление стола
type UpdateTableRequest struct {
	State *bool `json:"state,omitempty"`
}

// FromDomainTable конвертирует domain модель стола в API модель
func FromDomainTable(t *domain.BanquetTable) *TableResponse {
	seats := make([]SeatResponse, len(t.Seats))
	for i, s := range t.Seats {
		seats[i] = FromDomainSeat(&s)
	}
	return &TableResponse{
		ID:             t.ID,
		Capacity:       t.Capacity,
		State:          t.State,
		AvailableSeats: seats,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// FromDomainTableList конвертирует список столов
func FromDomainTableList(tables []*domain.BanquetTable) *TableListResponse {
	out := make([]TableResponse, len(tables))
	for i, t := range tables {
		out[i] = *FromDomainTable(t)
	}
	return &TableListResponse{
		Tables: out,
		Total:  len(out),
	}
}

// FromDomainSeat конвертирует domain модель места в API модель
func FromDomainSeat(s *domain.BanquetSeat) SeatResponse {
	return SeatResponse{
		ID:         s.ID,
		TableID:    s.TableID,
		SeatNumber: s.SeatNumber,
	}
}

// FromDomainSeatList конвертирует список мест
func FromDomainSeatList(seats []*domain.BanquetSeat) *SeatListResponse {
	out := make([]SeatResponse, len(seats))
	for i, s := range seats {
		out[i] = FromDomainSeat(s)
	}
	return &SeatListResponse{
		Seats: out,
		Total: len(out),
	}
}
