package list_available_seats

import (
	"time"

	"github.com/tak4ma/VMS-BanquetService/internal/domain"
	listAvailableSeats "github.com/tak4ma/VMS-BanquetService/internal/usecase/list_available_seats"
)

// AvailableSeatsRequest HTTP request model
// Datetime принимает полную метку времени (RFC3339) либо дату без времени,
// дата без времени трактуется как полночь UTC
type AvailableSeatsRequest struct {
	Datetime string `json:"datetime"`
}

// AvailableSeatsResponse HTTP response model
type AvailableSeatsResponse struct {
	SpiritID  int64               `json:"spiritId"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	Tables    []TableAvailability `json:"tables"`
}

// TableAvailability доступность одного стола
type TableAvailability struct {
	ID        int64              `json:"id"`
	Capacity  int                `json:"capacity"`
	State     bool               `json:"state"`
	Available bool               `json:"available"`
	Seats     []SeatAvailability `json:"seats"`
	Occupies  []Occupant         `json:"occupies"`
}

// SeatAvailability доступность одного места
type SeatAvailability struct {
	ID            int64  `json:"id"`
	SeatNumber    int    `json:"seatNumber"`
	Available     bool   `json:"available"`
	ReservationID *int64 `json:"reservationId,omitempty"`
}

// Occupant гость, сидящий за столом в окне запроса
type Occupant struct {
	SpiritID   int64  `json:"spiritId"`
	SpiritName string `json:"spiritName"`
	TypeID     *int64 `json:"typeId,omitempty"`
	TypeName   string `json:"typeName,omitempty"`
}

// ParseDatetime разбирает поле datetime запроса
func (r *AvailableSeatsRequest) ParseDatetime() (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, r.Datetime); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, r.Datetime)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailableSeats.Response) *AvailableSeatsResponse {
	tables := make([]TableAvailability, len(resp.Tables))
	for i, t := range resp.Tables {
		seats := make([]SeatAvailability, len(t.Seats))
		for j, s := range t.Seats {
			seats[j] = SeatAvailability{
				ID:            s.ID,
				SeatNumber:    s.SeatNumber,
				Available:     s.Available,
				ReservationID: s.ReservationID,
			}
		}

		occupies := make([]Occupant, len(t.Occupies))
		for j, o := range t.Occupies {
			occupant := Occupant{
				SpiritID:   o.Spirit.ID,
				SpiritName: o.Spirit.Name,
			}
			if o.Type != nil {
				occupant.TypeID = &t.Occupies[j].Type.ID
				occupant.TypeName = o.Type.Name
			}
			occupies[j] = occupant
		}

		tables[i] = TableAvailability{
			ID:        t.ID,
			Capacity:  t.Capacity,
			State:     t.State,
			Available: t.Available,
			Seats:     seats,
			Occupies:  occupies,
		}
	}

	return &AvailableSeatsResponse{
		SpiritID:  resp.SpiritID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Tables:    tables,
	}
}
